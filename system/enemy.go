package system

import (
	"sync/atomic"

	"github.com/lixenwraith/townhold/component"
	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/engine"
	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/parameter"
	"github.com/lixenwraith/townhold/status"
	"github.com/lixenwraith/townhold/vmath"
)

// EnemySystem runs the melee agent for every enemy
// Precedence per action: town hall breach, sticky target, new target under foot, step
type EnemySystem struct {
	world *engine.World

	statAttacks *atomic.Int64
}

// NewEnemySystem creates the enemy agent system
func NewEnemySystem(world *engine.World) *EnemySystem {
	return &EnemySystem{
		world:       world,
		statAttacks: world.Status.Ints.Get(status.EnemyAttacks),
	}
}

func (s *EnemySystem) Name() string { return "enemy" }

func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

// Update acts for each enemy whose throttle counter has elapsed
func (s *EnemySystem) Update() {
	for _, e := range s.world.Enemies() {
		if !e.Advance() {
			continue
		}
		if s.act(e) {
			return
		}
	}
}

// act performs one action and reports whether it ended the match
func (s *EnemySystem) act(e *component.EnemyComponent) bool {
	hall := s.world.TownHall()
	if hall.Contains(e.Pos) {
		s.world.EndMatch()
		s.world.PushEvent(event.EventTownHallBreached, &event.BreachPayload{
			Enemy: e.ID,
			Pos:   e.Pos,
		})
		return true
	}

	if target, ok := s.world.Structure(e.Target); ok && target.Alive() {
		s.hit(e, target)
		return false
	}

	if target := s.structureUnder(e.Pos); target != nil {
		e.Target = target.ID
		s.hit(e, target)
		return false
	}

	e.Pos = vmath.StepToward(e.Pos, hall.Position())
	return false
}

// structureUnder returns the first live structure covering p in target order
func (s *EnemySystem) structureUnder(p core.Point) *component.Structure {
	for _, kind := range core.TargetOrder {
		for _, st := range s.world.Structures(kind) {
			if st.Alive() && st.Contains(p) {
				return st
			}
		}
	}
	return nil
}

func (s *EnemySystem) hit(e *component.EnemyComponent, target *component.Structure) {
	if target.TakeDamage(e.Damage) {
		e.ClearTarget()
	}
	s.statAttacks.Add(1)
	s.world.PushEvent(event.EventStructureHit, &event.StructureHitPayload{
		Enemy:     e.ID,
		Structure: target.ID,
		Kind:      target.Kind,
		Damage:    e.Damage,
		HitPoints: target.HitPoints,
	})
}
