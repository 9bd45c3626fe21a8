package status

import "sync/atomic"

// Match statistic keys
const (
	EnemiesSpawned      = "enemy.spawned"
	EnemyAttacks        = "enemy.attacks"
	StructuresPlaced    = "structure.placed"
	StructuresDestroyed = "structure.destroyed"
	PlacementsRejected  = "structure.rejected"
	GoldCollected       = "resource.gold_collected"
	ElixirCollected     = "resource.elixir_collected"
	TicksRun            = "match.ticks"
	MatchOver           = "match.over"
)

// Registry is the central metrics facade
// Systems cache pointers at construction and write atomics directly
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// Snapshot copies all integer metrics
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}
