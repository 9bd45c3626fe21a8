package event

import "github.com/lixenwraith/townhold/core"

// EnemySpawnedPayload carries the new enemy handle and cell
type EnemySpawnedPayload struct {
	Enemy core.Entity
	Pos   core.Point
}

// StructurePayload identifies a structure by handle and kind
type StructurePayload struct {
	Structure core.Entity
	Kind      core.Kind
	Area      core.Area
}

// RejectReason explains a failed placement
type RejectReason uint8

const (
	RejectCollision RejectReason = iota + 1
	RejectCapReached
	RejectUnaffordable
	RejectMatchOver
)

func (r RejectReason) String() string {
	switch r {
	case RejectCollision:
		return "collision"
	case RejectCapReached:
		return "cap reached"
	case RejectUnaffordable:
		return "unaffordable"
	case RejectMatchOver:
		return "match over"
	default:
		return "unknown"
	}
}

// PlacementRejectedPayload describes why a placement failed
type PlacementRejectedPayload struct {
	Kind   core.Kind
	Area   core.Area
	Reason RejectReason
}

// StructureHitPayload reports one enemy attack
type StructureHitPayload struct {
	Enemy     core.Entity
	Structure core.Entity
	Kind      core.Kind
	Damage    int
	HitPoints int // Remaining after the hit
}

// CollectedPayload reports a generator drain
type CollectedPayload struct {
	Structure core.Entity
	Resource  core.Resource
	Amount    int
}

// BreachPayload reports the enemy that reached the town hall
type BreachPayload struct {
	Enemy core.Entity
	Pos   core.Point
}
