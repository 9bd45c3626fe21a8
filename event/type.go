package event

// EventType represents the type of game event
type EventType int

const (
	// EventEnemySpawned fires when an enemy enters the board
	// Trigger: SpawnSystem | Payload: *EnemySpawnedPayload
	EventEnemySpawned EventType = iota + 1

	// EventStructurePlaced fires after a successful placement
	// Trigger: World.Place | Payload: *StructurePayload
	EventStructurePlaced

	// EventPlacementRejected fires when a placement check fails
	// Trigger: World.Place | Payload: *PlacementRejectedPayload
	EventPlacementRejected

	// EventStructureHit fires every time an enemy damages a structure
	// Trigger: EnemySystem | Payload: *StructureHitPayload
	EventStructureHit

	// EventStructureDestroyed fires when a structure is removed by cull
	// Trigger: CullSystem | Payload: *StructurePayload
	EventStructureDestroyed

	// EventResourcesCollected fires when a generator is drained
	// Trigger: World.Collect | Payload: *CollectedPayload
	EventResourcesCollected

	// EventTownHallBreached fires once, ending the match
	// Trigger: EnemySystem | Payload: *BreachPayload
	EventTownHallBreached
)

var typeNames = map[EventType]string{
	EventEnemySpawned:       "EnemySpawned",
	EventStructurePlaced:    "StructurePlaced",
	EventPlacementRejected:  "PlacementRejected",
	EventStructureHit:       "StructureHit",
	EventStructureDestroyed: "StructureDestroyed",
	EventResourcesCollected: "ResourcesCollected",
	EventTownHallBreached:   "TownHallBreached",
}

// String returns the event name for logs
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single notification tagged with the tick it happened on
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}
