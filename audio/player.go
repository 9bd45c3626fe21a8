package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/townhold/config"
	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player turns game events into short tones on the speaker
// A player that is disabled or failed to initialize ignores every call
type Player struct {
	mu          sync.Mutex
	enabled     bool
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player from the audio config section
func NewPlayer(cfg config.Audio) *Player {
	return &Player{
		enabled: cfg.Enabled,
		volume:  cfg.Volume,
		mixer:   &beep.Mixer{},
	}
}

// Initialize opens the speaker; a disabled player returns nil without touching the device
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferTime)); err != nil {
		p.enabled = false
		return fmt.Errorf("audio init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Active reports whether cues reach the speaker
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// HandleEvents plays the cue for each event in order
func (p *Player) HandleEvents(events []event.GameEvent) {
	for _, ev := range events {
		if cue := CueFor(ev); cue != CueNone {
			p.Play(cue)
		}
	}
}

// Play queues one cue on the mixer
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := p.voice(cue)
	if err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// voice builds the finite, volume-scaled streamer for a cue
func (p *Player) voice(cue Cue) (beep.Streamer, error) {
	s, err := tone(cue)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(p.volume, 1e-3)),
		Silent:   p.volume <= 0,
	}, nil
}

// tone returns the enveloped oscillator for a cue
func tone(cue Cue) (beep.Streamer, error) {
	spec, ok := cueSpecs[cue]
	if !ok {
		return nil, fmt.Errorf("no tone for cue %d", cue)
	}

	var (
		osc beep.Streamer
		err error
	)
	switch spec.wave {
	case WaveSquare:
		osc, err = generators.SquareTone(sampleRate, spec.freq)
	default:
		osc, err = generators.SineTone(sampleRate, spec.freq)
	}
	if err != nil {
		return nil, err
	}

	n := sampleRate.N(spec.duration)
	s := newEnvelope(beep.Take(n, osc), n)
	if cue == CueGameOver {
		// Descending pair
		low, err := generators.SquareTone(sampleRate, spec.freq/2)
		if err != nil {
			return nil, err
		}
		return beep.Seq(s, newEnvelope(beep.Take(n, low), n)), nil
	}
	return s, nil
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
