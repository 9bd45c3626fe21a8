package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/townhold/config"
	"github.com/lixenwraith/townhold/event"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		want Cue
	}{
		{"placed", event.GameEvent{Type: event.EventStructurePlaced}, CuePlace},
		{"collected", event.GameEvent{Type: event.EventResourcesCollected}, CueCollect},
		{"destroyed", event.GameEvent{Type: event.EventStructureDestroyed}, CueDestroy},
		{"breached", event.GameEvent{Type: event.EventTownHallBreached}, CueGameOver},
		{"rejected", event.GameEvent{
			Type:    event.EventPlacementRejected,
			Payload: &event.PlacementRejectedPayload{Reason: event.RejectUnaffordable},
		}, CueReject},
		{"rejected after game over", event.GameEvent{
			Type:    event.EventPlacementRejected,
			Payload: &event.PlacementRejectedPayload{Reason: event.RejectMatchOver},
		}, CueNone},
		{"hit", event.GameEvent{Type: event.EventStructureHit}, CueNone},
		{"spawned", event.GameEvent{Type: event.EventEnemySpawned}, CueNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CueFor(tt.ev); got != tt.want {
				t.Errorf("CueFor = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestDisabledPlayer verifies a disabled player never opens the device
func TestDisabledPlayer(t *testing.T) {
	p := NewPlayer(config.Audio{Enabled: false, Volume: 0.5})

	if err := p.Initialize(); err != nil {
		t.Fatalf("disabled Initialize returned %v", err)
	}
	if p.Active() {
		t.Fatal("disabled player reports active")
	}

	p.HandleEvents([]event.GameEvent{{Type: event.EventStructurePlaced}})
	p.Play(CueGameOver)
	p.Close()
}

func TestToneLength(t *testing.T) {
	for cue, spec := range cueSpecs {
		s, err := tone(cue)
		if err != nil {
			t.Fatalf("cue %d: %v", cue, err)
		}

		want := sampleRate.N(spec.duration)
		if cue == CueGameOver {
			want *= 2
		}

		total := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				if math.Abs(buf[i][0]) > 1 || math.Abs(buf[i][1]) > 1 {
					t.Fatalf("cue %d: sample %f out of range", cue, buf[i][0])
				}
			}
			total += n
			if !ok || n == 0 {
				break
			}
		}
		if total != want {
			t.Errorf("cue %d streamed %d samples, want %d", cue, total, want)
		}
	}
}

func TestToneUnknownCue(t *testing.T) {
	if _, err := tone(CueNone); err == nil {
		t.Error("expected error for silent cue")
	}
}

func TestEnvelopeGain(t *testing.T) {
	e := newEnvelope(nil, 100)
	if g := e.gain(); g != 0 {
		t.Errorf("gain at start = %f", g)
	}
	e.pos = e.attack
	if g := e.gain(); g != 1 {
		t.Errorf("gain after attack = %f", g)
	}
	e.pos = 100
	if g := e.gain(); g != 0 {
		t.Errorf("gain at end = %f", g)
	}
}
