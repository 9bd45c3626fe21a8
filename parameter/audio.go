package parameter

import "time"

// Audio cues
const (
	AudioSampleRate = 44100
	AudioBufferTime = 100 * time.Millisecond
	AudioVolume     = 0.5

	CuePlaceFreq     = 660.0
	CuePlaceDuration = 60 * time.Millisecond

	CueCollectFreq     = 990.0
	CueCollectDuration = 90 * time.Millisecond

	CueDestroyFreq     = 180.0
	CueDestroyDuration = 150 * time.Millisecond

	CueGameOverFreq     = 110.0
	CueGameOverDuration = 600 * time.Millisecond

	CueRejectFreq     = 120.0
	CueRejectDuration = 40 * time.Millisecond
)
