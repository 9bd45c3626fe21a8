package system

import (
	"sync/atomic"

	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/engine"
	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/parameter"
	"github.com/lixenwraith/townhold/status"
	"github.com/lixenwraith/townhold/vmath"
)

// SpawnSystem drops one enemy on a playfield edge every spawn interval
type SpawnSystem struct {
	world *engine.World
	rng   *vmath.FastRand

	interval int
	counter  int

	statSpawned *atomic.Int64
}

// NewSpawnSystem creates a spawn system drawing positions from rng
func NewSpawnSystem(world *engine.World, rng *vmath.FastRand) *SpawnSystem {
	return &SpawnSystem{
		world:       world,
		rng:         rng,
		interval:    world.Config().SpawnInterval,
		statSpawned: world.Status.Ints.Get(status.EnemiesSpawned),
	}
}

func (s *SpawnSystem) Name() string { return "spawn" }

func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

// Update advances the spawn counter and spawns when it reaches the interval
func (s *SpawnSystem) Update() {
	s.counter++
	if s.counter < s.interval {
		return
	}
	s.counter = 0

	pos := s.spawnPoint()
	e := s.world.AddEnemy(pos)
	s.statSpawned.Add(1)
	s.world.PushEvent(event.EventEnemySpawned, &event.EnemySpawnedPayload{
		Enemy: e.ID,
		Pos:   pos,
	})
}

// spawnPoint picks a random row and either the left or right playfield edge
func (s *SpawnSystem) spawnPoint() core.Point {
	b := s.world.Config().Board
	y := s.rng.IntRange(1, b.Height-2)
	x := b.Width - 2
	if s.rng.Bool() {
		x = b.Margin + 1
	}
	return core.Point{X: x, Y: y}
}
