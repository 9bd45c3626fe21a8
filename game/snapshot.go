package game

import (
	"github.com/lixenwraith/townhold/config"
	"github.com/lixenwraith/townhold/core"
)

// StructureView is a structure as drawn
type StructureView struct {
	Kind      core.Kind
	Area      core.Area
	HitPoints int
	Bordered  bool
	Full      bool
}

// Snapshot is a read-only copy of the match state for one frame
type Snapshot struct {
	Board config.Board
	Tick  int64
	Over  bool

	Player core.Point
	Gold   int
	Elixir int

	Counts [core.KindCount]int
	Caps   [core.KindCount]int

	TownHallHP int

	Structures []StructureView
	Enemies    []core.Point

	Stats map[string]int64
}

// Snapshot copies the current state
func (m *Match) Snapshot() Snapshot {
	w := m.world
	cfg := w.Config()

	snap := Snapshot{
		Board:      cfg.Board,
		Tick:       w.TickNumber(),
		Over:       w.Over(),
		Player:     w.Player.Pos,
		Gold:       w.Player.Resources.Gold,
		Elixir:     w.Player.Resources.Elixir,
		TownHallHP: w.TownHall().HitPoints,
		Stats:      w.Status.Snapshot(),
	}

	for _, kind := range core.TargetOrder {
		snap.Counts[kind] = w.Count(kind)
		snap.Caps[kind] = cfg.Spec(kind).MaxInstances
		for _, s := range w.Structures(kind) {
			snap.Structures = append(snap.Structures, StructureView{
				Kind:      s.Kind,
				Area:      s.Area,
				HitPoints: s.HitPoints,
				Bordered:  s.Bordered,
				Full:      s.Generator != nil && s.Generator.Full,
			})
		}
	}

	enemies := w.Enemies()
	snap.Enemies = make([]core.Point, len(enemies))
	for i, e := range enemies {
		snap.Enemies[i] = e.Pos
	}

	return snap
}
