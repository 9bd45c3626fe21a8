package engine

import (
	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/parameter"
	"github.com/lixenwraith/townhold/status"
)

// WallAt reports whether any wall covers p
func (w *World) WallAt(p core.Point) bool {
	for _, s := range w.structures[core.KindWall] {
		if s.Contains(p) {
			return true
		}
	}
	return false
}

// MovePlayer steps the player one row or two columns, staying inside the
// playfield and off walls; reports whether the player moved
func (w *World) MovePlayer(dir core.Direction) bool {
	if w.over {
		return false
	}

	b := w.cfg.Board
	pos := w.Player.Pos
	switch dir {
	case core.DirUp:
		if pos.Y > 1 {
			pos.Y -= parameter.PlayerStepY
		}
	case core.DirDown:
		if pos.Y < b.Height-2 {
			pos.Y += parameter.PlayerStepY
		}
	case core.DirLeft:
		if pos.X > b.Margin+2 {
			pos.X -= parameter.PlayerStepX
		}
	case core.DirRight:
		if pos.X < b.Width-4 {
			pos.X += parameter.PlayerStepX
		}
	default:
		return false
	}

	if pos == w.Player.Pos || w.WallAt(pos) {
		return false
	}
	w.Player.Pos = pos
	return true
}

// Collect drains full generators under the player
// At most one gold mine and one elixir collector pay out per call
func (w *World) Collect() int {
	if w.over {
		return 0
	}

	total := 0
	for _, kind := range [...]core.Kind{core.KindGoldMine, core.KindElixirCollector} {
		for _, s := range w.structures[kind] {
			if !s.Contains(w.Player.Pos) {
				continue
			}
			amount := s.Generator.Collect()
			if amount == 0 {
				continue
			}

			res, _ := s.Yield()
			w.Player.Resources.Credit(res, amount)
			total += amount

			key := status.GoldCollected
			if res == core.Elixir {
				key = status.ElixirCollected
			}
			w.Status.Ints.Get(key).Add(int64(amount))
			w.PushEvent(event.EventResourcesCollected, &event.CollectedPayload{
				Structure: s.ID,
				Resource:  res,
				Amount:    amount,
			})
			break
		}
	}
	return total
}
