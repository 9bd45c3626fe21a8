package game

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lixenwraith/townhold/config"
	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/event"
	"github.com/lixenwraith/townhold/input"
)

func newMatch(t *testing.T, seed uint64) *Match {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = seed
	return NewMatch(cfg)
}

func TestNewMatch(t *testing.T) {
	m := newMatch(t, 5)
	if _, err := uuid.Parse(m.ID); err != nil {
		t.Errorf("match id %q is not a uuid: %v", m.ID, err)
	}
	if m.Seed != 5 {
		t.Errorf("seed = %d", m.Seed)
	}
	if len(m.World().Systems()) != 4 {
		t.Errorf("systems = %d", len(m.World().Systems()))
	}

	other := newMatch(t, 5)
	if other.ID == m.ID {
		t.Error("match ids should be unique")
	}

	if newMatch(t, 0).Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestStepAppliesThenTicks(t *testing.T) {
	m := newMatch(t, 1)

	events := m.Step(input.CommandPlaceWall)
	if m.World().TickNumber() != 1 {
		t.Errorf("tick = %d, want 1", m.World().TickNumber())
	}
	if m.World().Count(core.KindWall) != 1 {
		t.Fatal("wall not placed")
	}

	var placed bool
	for _, ev := range events {
		if ev.Type == event.EventStructurePlaced {
			placed = true
		}
	}
	if !placed {
		t.Error("placement event not returned")
	}

	m.Step(input.CommandNone)
	if m.World().TickNumber() != 2 {
		t.Errorf("idle step did not tick")
	}
}

func TestStepMovement(t *testing.T) {
	m := newMatch(t, 1)
	start := m.World().Player.Pos

	m.Step(input.CommandMoveRight)
	m.Step(input.CommandMoveDown)
	want := start.Add(2, 1)
	if m.World().Player.Pos != want {
		t.Errorf("player at %v, want %v", m.World().Player.Pos, want)
	}

	// Wall on the player cell blocks returning onto it
	m.Step(input.CommandPlaceWall)
	m.Step(input.CommandMoveRight)
	m.Step(input.CommandMoveLeft)
	if m.World().Player.Pos != want.Add(2, 0) {
		t.Errorf("player walked onto wall: %v", m.World().Player.Pos)
	}
}

func TestQuitDoesNotTick(t *testing.T) {
	m := newMatch(t, 1)
	if events := m.Step(input.CommandQuit); events != nil {
		t.Errorf("quit returned events: %v", events)
	}
	if !m.Quit() {
		t.Error("quit not recorded")
	}
	if m.World().TickNumber() != 0 {
		t.Error("quit ticked the world")
	}
}

func TestCommandsIgnoredWhenOver(t *testing.T) {
	m := newMatch(t, 1)
	m.World().EndMatch()

	pos := m.World().Player.Pos
	m.Step(input.CommandPlaceWall)
	m.Step(input.CommandMoveRight)

	if m.World().Count(core.KindWall) != 0 {
		t.Error("placement accepted after game over")
	}
	if m.World().Player.Pos != pos {
		t.Error("player moved after game over")
	}
	if m.World().TickNumber() != 0 {
		t.Error("world ticked after game over")
	}

	m.Step(input.CommandQuit)
	if !m.Quit() {
		t.Error("quit must still work after game over")
	}
}

func TestMatchEndLoggedOnce(t *testing.T) {
	m := newMatch(t, 1)
	var buf bytes.Buffer
	m.logger = log.New(&buf, "", 0)

	m.World().EndMatch()
	m.Step(input.CommandNone)
	m.Step(input.CommandNone)

	out := buf.String()
	header := fmt.Sprintf("match over at tick 0, %d stats", m.World().Status.TotalCount())
	if n := strings.Count(out, "match over"); n != 1 {
		t.Fatalf("end logged %d times:\n%s", n, out)
	}
	if !strings.Contains(out, header) {
		t.Errorf("missing %q in:\n%s", header, out)
	}
}

func TestSameSeedSameMatch(t *testing.T) {
	a, b := newMatch(t, 1234), newMatch(t, 1234)
	for i := 0; i < 200; i++ {
		a.Step(input.CommandNone)
		b.Step(input.CommandNone)
	}

	ea, eb := a.Snapshot().Enemies, b.Snapshot().Enemies
	if len(ea) == 0 || len(ea) != len(eb) {
		t.Fatalf("enemy counts %d and %d", len(ea), len(eb))
	}
	for i := range ea {
		if ea[i] != eb[i] {
			t.Errorf("enemy %d: %v vs %v", i, ea[i], eb[i])
		}
	}
}

func TestSnapshot(t *testing.T) {
	m := newMatch(t, 1)
	m.World().Player.Pos = core.Point{X: 50, Y: 10}
	m.Step(input.CommandPlaceGoldMine)

	snap := m.Snapshot()
	if snap.Tick != 1 || snap.Over {
		t.Errorf("tick=%d over=%v", snap.Tick, snap.Over)
	}
	if snap.Gold != 400 || snap.Elixir != 300 {
		t.Errorf("resources %d/%d", snap.Gold, snap.Elixir)
	}
	if snap.Counts[core.KindGoldMine] != 1 || snap.Caps[core.KindGoldMine] != 3 {
		t.Errorf("mine count/cap = %d/%d", snap.Counts[core.KindGoldMine], snap.Caps[core.KindGoldMine])
	}
	if snap.Caps[core.KindWall] != 200 {
		t.Errorf("wall cap = %d", snap.Caps[core.KindWall])
	}
	if snap.TownHallHP != 500 {
		t.Errorf("town hall hp = %d", snap.TownHallHP)
	}
	if len(snap.Structures) != 2 {
		t.Fatalf("structures = %d", len(snap.Structures))
	}
	// Target order puts the mine ahead of the town hall
	if snap.Structures[0].Kind != core.KindGoldMine || !snap.Structures[0].Bordered {
		t.Errorf("first structure = %+v", snap.Structures[0])
	}
	if snap.Stats["structure.placed"] != 1 {
		t.Errorf("stats = %v", snap.Stats)
	}

	// Mutating the copy leaves the match untouched
	snap.Structures[0].HitPoints = 0
	if s := m.World().Structures(core.KindGoldMine)[0]; s.HitPoints != 100 {
		t.Error("snapshot aliases world state")
	}
}
