package parameter

// Board geometry
const (
	// BoardWidth is the total grid width including the side panel and borders
	BoardWidth = 147

	// BoardHeight is the total grid height including borders
	BoardHeight = 33

	// BoardMargin is the side panel width; the playfield starts right of it
	BoardMargin = 30
)

// Town hall placement
const (
	TownHallX = 80
	TownHallY = BoardHeight / 2
)

// Match pacing
const (
	// SpawnInterval is ticks between enemy spawns
	SpawnInterval = 30
)
