package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/townhold/component"
	"github.com/lixenwraith/townhold/config"
	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/status"
)

// World is the arena: it exclusively owns structures, enemies, and the player
// Enemies refer to structures by handle only; RemoveStructure invalidates those handles
type World struct {
	cfg    *config.Config
	nextID core.Entity

	// Per-kind structure lists in placement order, scanned in that order by enemies
	structures [core.KindCount][]*component.Structure
	index      map[core.Entity]*component.Structure
	townHall   *component.Structure

	enemies []*component.EnemyComponent

	Player component.PlayerComponent

	Events *event.EventQueue
	Status *status.Registry

	systems []System
	tick    int64
	over    bool

	statTicks *atomic.Int64
}

// NewWorld creates a world with the town hall and player placed
func NewWorld(cfg *config.Config) *World {
	w := &World{
		cfg:    cfg,
		nextID: 1,
		index:  make(map[core.Entity]*component.Structure),
		Events: event.NewEventQueue(),
		Status: status.NewRegistry(),
	}
	w.statTicks = w.Status.Ints.Get(status.TicksRun)

	w.Player = component.PlayerComponent{
		Pos: cfg.PlayerStart.Core(),
		Resources: component.Resources{
			Gold:   cfg.StartGold,
			Elixir: cfg.StartElixir,
		},
	}

	w.townHall = w.newStructure(core.KindTownHall, w.Footprint(core.KindTownHall, cfg.TownHall.Core()))
	w.insert(w.townHall)

	return w
}

// Config returns the configuration the world was built from
func (w *World) Config() *config.Config {
	return w.cfg
}

// CreateEntity reserves a new handle
func (w *World) CreateEntity() core.Entity {
	id := w.nextID
	w.nextID++
	return id
}

// TownHall returns the singleton town hall
func (w *World) TownHall() *component.Structure {
	return w.townHall
}

// Structure resolves a handle, false once the structure has been removed
func (w *World) Structure(id core.Entity) (*component.Structure, bool) {
	if id == core.None {
		return nil, false
	}
	s, ok := w.index[id]
	return s, ok
}

// Structures returns the live list for a kind in placement order
// The slice is owned by the world and must not be modified
func (w *World) Structures(kind core.Kind) []*component.Structure {
	return w.structures[kind]
}

// Count returns the number of structures of a kind
func (w *World) Count(kind core.Kind) int {
	return len(w.structures[kind])
}

// Enemies returns the active enemies in spawn order
// The slice is owned by the world and must not be modified
func (w *World) Enemies() []*component.EnemyComponent {
	return w.enemies
}

// AddEnemy creates an enemy at pos using configured strength
func (w *World) AddEnemy(pos core.Point) *component.EnemyComponent {
	e := component.NewEnemy(w.CreateEntity(), pos, w.cfg.Enemy.Damage, w.cfg.Enemy.MovesPerStep)
	w.enemies = append(w.enemies, e)
	return e
}

// RemoveStructure deletes a structure and clears every enemy target pointing at it
// The town hall is never removed
func (w *World) RemoveStructure(id core.Entity) bool {
	s, ok := w.index[id]
	if !ok || s.Kind == core.KindTownHall {
		return false
	}
	delete(w.index, id)

	list := w.structures[s.Kind]
	for i, other := range list {
		if other.ID == id {
			w.structures[s.Kind] = append(list[:i], list[i+1:]...)
			break
		}
	}

	for _, e := range w.enemies {
		if e.Target == id {
			e.ClearTarget()
		}
	}
	return true
}

// AddSystem adds a system and keeps systems sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion sort, small N, stable for equal priorities
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Tick runs every system once in priority order
// No-op once the match is over; a system ending the match stops the remaining ones
func (w *World) Tick() {
	if w.over {
		return
	}
	w.tick++
	w.statTicks.Add(1)

	for _, system := range w.systems {
		system.Update()
		if w.over {
			return
		}
	}
}

// TickNumber returns the number of ticks run
func (w *World) TickNumber() int64 {
	return w.tick
}

// Over reports whether the match has ended
func (w *World) Over() bool {
	return w.over
}

// EndMatch marks the match over, razing the town hall
func (w *World) EndMatch() {
	if w.over {
		return
	}
	w.over = true
	if w.townHall.HitPoints > 0 {
		w.townHall.HitPoints = 0
	}
	w.Status.Bools.Get(status.MatchOver).Store(true)
}

// PushEvent emits a game event stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Events.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    w.tick,
	})
}

func (w *World) newStructure(kind core.Kind, area core.Area) *component.Structure {
	spec := w.cfg.Spec(kind)
	s := &component.Structure{
		ID:              w.CreateEntity(),
		Kind:            kind,
		Area:            area,
		Cost:            spec.Cost,
		MaxInstances:    spec.MaxInstances,
		Bordered:        spec.Width > 1 || spec.Height > 1,
		CombatComponent: component.NewCombat(spec.HitPoints),
	}
	if kind.IsGenerator() {
		s.Generator = component.NewGenerator(w.cfg.Generator.Capacity, w.cfg.Generator.PerTickGain)
	}
	return s
}

func (w *World) insert(s *component.Structure) {
	w.structures[s.Kind] = append(w.structures[s.Kind], s)
	w.index[s.ID] = s
}
