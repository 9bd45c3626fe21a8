package engine

import (
	"github.com/lixenwraith/townhold/component"
	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/status"
	"github.com/lixenwraith/townhold/vmath"
)

// Footprint returns the area a structure of kind would occupy when built at p
// Single-cell structures sit on p, larger ones are centered on it
func (w *World) Footprint(kind core.Kind, p core.Point) core.Area {
	spec := w.cfg.Spec(kind)
	if spec.Width == 1 && spec.Height == 1 {
		return core.Area{X: p.X, Y: p.Y, Width: 1, Height: 1}
	}
	if kind == core.KindTownHall {
		// Configured by its top-left corner
		return core.Area{X: p.X, Y: p.Y, Width: spec.Width, Height: spec.Height}
	}
	return vmath.AreaCenteredOn(p, spec.Width, spec.Height)
}

// CanPlace reports whether area is free of every structure, skipping except
// Pass core.None to check against all structures
func (w *World) CanPlace(area core.Area, except core.Entity) bool {
	for _, kind := range core.TargetOrder {
		for _, s := range w.structures[kind] {
			if s.ID == except {
				continue
			}
			if vmath.AreaOverlap(area, s.Area) {
				return false
			}
		}
	}
	return true
}

// Place builds a structure of kind at p, paying its recorded cost
// Either every check passes and both debit and insert happen, or nothing changes
func (w *World) Place(kind core.Kind, p core.Point) (core.Entity, bool) {
	area := w.Footprint(kind, p)

	if reason := w.checkPlacement(kind, area); reason != 0 {
		w.rejectPlacement(kind, area, reason)
		return core.None, false
	}

	s := w.newStructure(kind, area)
	if !w.commit(s) {
		w.rejectPlacement(kind, area, event.RejectUnaffordable)
		return core.None, false
	}

	w.Status.Ints.Get(status.StructuresPlaced).Add(1)
	w.PushEvent(event.EventStructurePlaced, &event.StructurePayload{
		Structure: s.ID,
		Kind:      kind,
		Area:      area,
	})
	return s.ID, true
}

// checkPlacement returns the first failing rule in collision, cap, cost order
func (w *World) checkPlacement(kind core.Kind, area core.Area) event.RejectReason {
	if w.over {
		return event.RejectMatchOver
	}
	if !w.CanPlace(area, core.None) {
		return event.RejectCollision
	}
	spec := w.cfg.Spec(kind)
	if w.Count(kind) >= spec.MaxInstances {
		return event.RejectCapReached
	}
	if !w.Player.Resources.CanAfford(spec.Cost) {
		return event.RejectUnaffordable
	}
	return 0
}

// commit debits the structure's recorded cost and inserts it, or does neither
func (w *World) commit(s *component.Structure) bool {
	if !w.Player.Resources.SpendCost(s.Cost) {
		return false
	}
	w.insert(s)
	return true
}

func (w *World) rejectPlacement(kind core.Kind, area core.Area, reason event.RejectReason) {
	w.Status.Ints.Get(status.PlacementsRejected).Add(1)
	w.PushEvent(event.EventPlacementRejected, &event.PlacementRejectedPayload{
		Kind:   kind,
		Area:   area,
		Reason: reason,
	})
}
