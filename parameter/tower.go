package parameter

// Structure catalogue
const (
	WallWidth        = 1
	WallHeight       = 1
	WallCostGold     = 10
	WallCostElixir   = 0
	WallHitPoints    = 100
	WallMaxInstances = 200

	GoldMineWidth        = 5
	GoldMineHeight       = 5
	GoldMineCostGold     = 0
	GoldMineCostElixir   = 100
	GoldMineHitPoints    = 100
	GoldMineMaxInstances = 3

	ElixirCollectorWidth        = 5
	ElixirCollectorHeight       = 5
	ElixirCollectorCostGold     = 100
	ElixirCollectorCostElixir   = 0
	ElixirCollectorHitPoints    = 100
	ElixirCollectorMaxInstances = 3

	TownHallWidth     = 5
	TownHallHeight    = 5
	TownHallHitPoints = 500
)

// Generator
const (
	// GeneratorCapacity is the accumulated amount at which a generator is full and collectable
	GeneratorCapacity = 100

	// GeneratorPerTickGain is the amount accumulated each tick
	GeneratorPerTickGain = 5
)
