package component

import "github.com/lixenwraith/townhold/core"

// EnemyComponent is a melee attacker walking toward the town hall
type EnemyComponent struct {
	ID  core.Entity
	Pos core.Point

	Damage       int
	MovesPerStep int

	// counter accumulates ticks, the enemy acts when it reaches MovesPerStep
	counter int

	// Target is a world handle, core.None when not attacking
	// Resolved through the world every action, never dereferenced directly
	Target core.Entity
}

// NewEnemy creates an untargeted enemy at pos
func NewEnemy(id core.Entity, pos core.Point, damage, movesPerStep int) *EnemyComponent {
	return &EnemyComponent{
		ID:           id,
		Pos:          pos,
		Damage:       damage,
		MovesPerStep: movesPerStep,
	}
}

// Advance counts one tick and reports whether the enemy acts this tick
func (e *EnemyComponent) Advance() bool {
	e.counter++
	if e.counter < e.MovesPerStep {
		return false
	}
	e.counter = 0
	return true
}

// ClearTarget drops the current attack target
func (e *EnemyComponent) ClearTarget() {
	e.Target = core.None
}
