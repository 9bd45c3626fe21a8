package system

import (
	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/engine"
	"github.com/lixenwraith/townhold/parameter"
)

// GeneratorSystem accumulates yield in every gold mine and elixir collector
type GeneratorSystem struct {
	world *engine.World
}

// NewGeneratorSystem creates a generator system
func NewGeneratorSystem(world *engine.World) *GeneratorSystem {
	return &GeneratorSystem{world: world}
}

func (s *GeneratorSystem) Name() string { return "generator" }

func (s *GeneratorSystem) Priority() int { return parameter.PriorityGenerator }

func (s *GeneratorSystem) Update() {
	for _, kind := range [...]core.Kind{core.KindGoldMine, core.KindElixirCollector} {
		for _, st := range s.world.Structures(kind) {
			st.Generator.Tick()
		}
	}
}
