package parameter

import "time"

// Loop timing
const (
	// FrameDelay is the pause after each rendered frame
	FrameDelay = 100 * time.Millisecond

	// GameOverLinger is how long the game over banner stays before exit
	GameOverLinger = 2 * time.Second
)

// Event queue
const (
	// EventQueueSize must be a power of 2
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
