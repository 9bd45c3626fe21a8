package system

import (
	"github.com/lixenwraith/townhold/engine"
	"github.com/lixenwraith/townhold/vmath"
)

// RegisterAll adds the standard match systems to world
func RegisterAll(world *engine.World, rng *vmath.FastRand) {
	world.AddSystem(NewSpawnSystem(world, rng))
	world.AddSystem(NewEnemySystem(world))
	world.AddSystem(NewCullSystem(world))
	world.AddSystem(NewGeneratorSystem(world))
}
