package component

import (
	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/vmath"
)

// Structure is a placed building, one record shape for every kind
// Generator is non-nil only for gold mines and elixir collectors
type Structure struct {
	ID   core.Entity
	Kind core.Kind
	Area core.Area
	Cost core.Cost

	// MaxInstances is the per-kind placement cap recorded at build time
	MaxInstances int

	// Bordered structures render as a box, others as a bare icon
	Bordered bool

	CombatComponent
	Generator *GeneratorComponent
}

// Position returns the footprint origin
func (s *Structure) Position() core.Point {
	return s.Area.Origin()
}

// Contains reports whether the footprint covers p
func (s *Structure) Contains(p core.Point) bool {
	return vmath.AreaContainsPoint(s.Area, p)
}

// Yield returns the resource a generator produces
func (s *Structure) Yield() (core.Resource, bool) {
	switch s.Kind {
	case core.KindGoldMine:
		return core.Gold, true
	case core.KindElixirCollector:
		return core.Elixir, true
	default:
		return 0, false
	}
}
