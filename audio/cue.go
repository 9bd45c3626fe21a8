package audio

import (
	"time"

	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/parameter"
)

// Cue identifies a sound effect
type Cue uint8

const (
	CueNone Cue = iota
	CuePlace
	CueCollect
	CueDestroy
	CueGameOver
	CueReject
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

type cueSpec struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

var cueSpecs = map[Cue]cueSpec{
	CuePlace:    {parameter.CuePlaceFreq, parameter.CuePlaceDuration, WaveSine},
	CueCollect:  {parameter.CueCollectFreq, parameter.CueCollectDuration, WaveSine},
	CueDestroy:  {parameter.CueDestroyFreq, parameter.CueDestroyDuration, WaveSquare},
	CueGameOver: {parameter.CueGameOverFreq, parameter.CueGameOverDuration, WaveSquare},
	CueReject:   {parameter.CueRejectFreq, parameter.CueRejectDuration, WaveSquare},
}

// CueFor maps a game event to its sound, CueNone when silent
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventStructurePlaced:
		return CuePlace
	case event.EventResourcesCollected:
		return CueCollect
	case event.EventStructureDestroyed:
		return CueDestroy
	case event.EventTownHallBreached:
		return CueGameOver
	case event.EventPlacementRejected:
		if p, ok := ev.Payload.(*event.PlacementRejectedPayload); ok && p.Reason == event.RejectMatchOver {
			return CueNone
		}
		return CueReject
	default:
		return CueNone
	}
}
