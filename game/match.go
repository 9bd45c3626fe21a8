// Package game drives one match: it applies a player command, advances the
// world one tick and exposes a read-only snapshot for drawing.
package game

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/townhold/config"
	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/engine"
	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/input"
	"github.com/lixenwraith/townhold/system"
	"github.com/lixenwraith/townhold/vmath"
)

// Match owns the world for a single game
type Match struct {
	ID   string
	Seed uint64

	world  *engine.World
	logger *log.Logger

	quit   bool
	logged bool // match end written to the log
}

// NewMatch creates a match with all systems registered
// A zero cfg.Seed draws one from the clock
func NewMatch(cfg *config.Config) *Match {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	id := uuid.New().String()
	world := engine.NewWorld(cfg)
	system.RegisterAll(world, vmath.NewFastRand(seed))

	m := &Match{
		ID:     id,
		Seed:   seed,
		world:  world,
		logger: log.New(log.Writer(), "["+id[:8]+"] ", log.Flags()),
	}
	m.logger.Printf("match started: seed=%d board=%dx%d", seed, cfg.Board.Width, cfg.Board.Height)
	return m
}

// World exposes the underlying world
func (m *Match) World() *engine.World {
	return m.world
}

// Over reports whether the town hall has fallen
func (m *Match) Over() bool {
	return m.world.Over()
}

// Quit reports whether the player asked to leave
func (m *Match) Quit() bool {
	return m.quit
}

// Step applies cmd then runs exactly one tick, returning the events produced
// Quit short-circuits without ticking
func (m *Match) Step(cmd input.Command) []event.GameEvent {
	if cmd == input.CommandQuit {
		m.quit = true
		m.logger.Printf("player quit at tick %d", m.world.TickNumber())
		return nil
	}

	if !m.world.Over() {
		m.apply(cmd)
	}
	m.world.Tick()

	events := m.world.Events.Consume()
	m.logEvents(events)

	if m.world.Over() && !m.logged {
		m.logged = true
		m.logger.Printf("match over at tick %d, %d stats", m.world.TickNumber(), m.world.Status.TotalCount())
		m.world.Status.Ints.Range(func(key string, v *atomic.Int64) {
			m.logger.Printf("stat %s=%d", key, v.Load())
		})
	}
	return events
}

func (m *Match) apply(cmd input.Command) {
	switch cmd {
	case input.CommandMoveUp:
		m.Move(core.DirUp)
	case input.CommandMoveDown:
		m.Move(core.DirDown)
	case input.CommandMoveLeft:
		m.Move(core.DirLeft)
	case input.CommandMoveRight:
		m.Move(core.DirRight)
	case input.CommandPlaceWall:
		m.PlaceWall()
	case input.CommandPlaceGoldMine:
		m.PlaceGoldMine()
	case input.CommandPlaceElixirCollector:
		m.PlaceElixirCollector()
	case input.CommandCollect:
		m.Collect()
	}
}

// Move steps the player, false when blocked
func (m *Match) Move(dir core.Direction) bool {
	return m.world.MovePlayer(dir)
}

// PlaceWall builds a wall on the player cell
func (m *Match) PlaceWall() bool {
	_, ok := m.world.Place(core.KindWall, m.world.Player.Pos)
	return ok
}

// PlaceGoldMine builds a gold mine centered on the player
func (m *Match) PlaceGoldMine() bool {
	_, ok := m.world.Place(core.KindGoldMine, m.world.Player.Pos)
	return ok
}

// PlaceElixirCollector builds an elixir collector centered on the player
func (m *Match) PlaceElixirCollector() bool {
	_, ok := m.world.Place(core.KindElixirCollector, m.world.Player.Pos)
	return ok
}

// Collect drains full generators under the player
func (m *Match) Collect() int {
	return m.world.Collect()
}

func (m *Match) logEvents(events []event.GameEvent) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case *event.StructurePayload:
			m.logger.Printf("tick %d: %s %s at %d,%d", ev.Tick, ev.Type, p.Kind, p.Area.X, p.Area.Y)
		case *event.BreachPayload:
			m.logger.Printf("tick %d: town hall breached by enemy %d at %d,%d", ev.Tick, p.Enemy, p.Pos.X, p.Pos.Y)
		}
	}
}
