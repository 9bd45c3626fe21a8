package parameter

// Player
const (
	StartGold   = 400
	StartElixir = 400

	// PlayerStartX is the first playfield column the player may stand on
	PlayerStartX = BoardMargin + 2
	PlayerStartY = BoardHeight / 2

	// PlayerStepX is the horizontal move distance; glyphs are two cells wide
	PlayerStepX = 2
	PlayerStepY = 1
)
