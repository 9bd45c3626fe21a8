package system

import (
	"sync/atomic"

	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/engine"
	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/parameter"
	"github.com/lixenwraith/townhold/status"
)

// CullSystem removes destroyed structures
// It runs after the enemy pass so hits landed this tick are settled first
type CullSystem struct {
	world *engine.World

	// Reused between ticks
	dead []deadStructure

	statDestroyed *atomic.Int64
}

type deadStructure struct {
	id   core.Entity
	kind core.Kind
	area core.Area
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) *CullSystem {
	return &CullSystem{
		world:         world,
		statDestroyed: world.Status.Ints.Get(status.StructuresDestroyed),
	}
}

func (s *CullSystem) Name() string { return "cull" }

func (s *CullSystem) Priority() int { return parameter.PriorityCull }

// Update collects every destroyed structure and removes it, the town hall excluded
func (s *CullSystem) Update() {
	s.dead = s.dead[:0]
	for _, kind := range core.TargetOrder {
		if kind == core.KindTownHall {
			continue
		}
		for _, st := range s.world.Structures(kind) {
			if !st.Alive() {
				s.dead = append(s.dead, deadStructure{id: st.ID, kind: st.Kind, area: st.Area})
			}
		}
	}

	for _, d := range s.dead {
		if !s.world.RemoveStructure(d.id) {
			continue
		}
		s.statDestroyed.Add(1)
		s.world.PushEvent(event.EventStructureDestroyed, &event.StructurePayload{
			Structure: d.id,
			Kind:      d.kind,
			Area:      d.area,
		})
	}
}
