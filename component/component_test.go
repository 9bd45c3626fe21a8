package component

import (
	"testing"

	"github.com/lixenwraith/townhold/core"
)

func TestResourcesSpend(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		amount  int
		wantOK  bool
		wantBal int
	}{
		{"insufficient", 50, 100, false, 50},
		{"sufficient", 150, 100, true, 50},
		{"exact", 100, 100, true, 0},
		{"zero", 0, 0, true, 0},
		{"negative amount", 10, -5, false, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resources{Gold: tt.balance, Elixir: tt.balance}
			if got := r.Spend(core.Gold, tt.amount); got != tt.wantOK {
				t.Errorf("Spend(gold) = %v, want %v", got, tt.wantOK)
			}
			if r.Gold != tt.wantBal {
				t.Errorf("gold = %d, want %d", r.Gold, tt.wantBal)
			}
			if r.Elixir != tt.balance {
				t.Errorf("elixir changed to %d", r.Elixir)
			}
		})
	}
}

func TestResourcesCredit(t *testing.T) {
	r := Resources{}
	r.Credit(core.Elixir, 100)
	r.Credit(core.Elixir, 100)
	r.Credit(core.Gold, -10)

	if r.Elixir != 200 {
		t.Errorf("elixir = %d, want 200", r.Elixir)
	}
	if r.Gold != 0 {
		t.Errorf("negative credit changed gold to %d", r.Gold)
	}
	if r.Balance(core.Elixir) != 200 {
		t.Errorf("Balance(elixir) = %d", r.Balance(core.Elixir))
	}
}

func TestResourcesSpendCostAtomic(t *testing.T) {
	r := Resources{Gold: 100, Elixir: 5}

	if r.SpendCost(core.Cost{Gold: 50, Elixir: 10}) {
		t.Fatal("expected failure when elixir is short")
	}
	if r.Gold != 100 || r.Elixir != 5 {
		t.Errorf("partial debit: %+v", r)
	}

	if !r.SpendCost(core.Cost{Gold: 50, Elixir: 5}) {
		t.Fatal("expected success")
	}
	if r.Gold != 50 || r.Elixir != 0 {
		t.Errorf("after spend: %+v", r)
	}
}

func TestGeneratorCycle(t *testing.T) {
	g := NewGenerator(100, 5)

	for i := 0; i < 19; i++ {
		g.Tick()
	}
	if g.Full || g.Accumulated != 95 {
		t.Fatalf("after 19 ticks: %+v", g)
	}
	if got := g.Collect(); got != 0 {
		t.Errorf("collect before full = %d, want 0", got)
	}
	if g.Accumulated != 95 {
		t.Errorf("early collect changed accumulated to %d", g.Accumulated)
	}

	g.Tick()
	if g.Accumulated != 100 || !g.Full {
		t.Fatalf("after 20 ticks: %+v", g)
	}

	g.Tick()
	if g.Accumulated != 100 {
		t.Errorf("accumulated past capacity: %d", g.Accumulated)
	}

	if got := g.Collect(); got != 100 {
		t.Errorf("collect = %d, want 100", got)
	}
	if g.Accumulated != 0 || g.Full {
		t.Errorf("after collect: %+v", g)
	}
	if got := g.Collect(); got != 0 {
		t.Errorf("second collect = %d, want 0", got)
	}
}

func TestGeneratorClampsUnevenGain(t *testing.T) {
	g := NewGenerator(100, 30)
	for i := 0; i < 4; i++ {
		g.Tick()
	}
	if g.Accumulated != 100 {
		t.Errorf("accumulated = %d, want clamp at 100", g.Accumulated)
	}
}

func TestCombatTakeDamage(t *testing.T) {
	c := NewCombat(20)

	if c.TakeDamage(10) {
		t.Error("first hit should not destroy")
	}
	if !c.TakeDamage(10) {
		t.Error("second hit should destroy")
	}
	if c.Alive() {
		t.Error("expected dead")
	}
	if c.TakeDamage(10) {
		t.Error("hitting a destroyed target should not report destruction again")
	}
}

func TestEnemyAdvanceThrottle(t *testing.T) {
	e := NewEnemy(1, core.Point{X: 5, Y: 5}, 10, 3)

	var acted []int
	for tick := 1; tick <= 9; tick++ {
		if e.Advance() {
			acted = append(acted, tick)
		}
	}

	want := []int{3, 6, 9}
	if len(acted) != len(want) {
		t.Fatalf("acted on %v, want %v", acted, want)
	}
	for i := range want {
		if acted[i] != want[i] {
			t.Errorf("acted on %v, want %v", acted, want)
		}
	}
}

func TestStructureContainsAndYield(t *testing.T) {
	s := Structure{
		Kind:            core.KindGoldMine,
		Area:            core.Area{X: 10, Y: 10, Width: 5, Height: 5},
		CombatComponent: NewCombat(100),
		Generator:       NewGenerator(100, 5),
	}

	if !s.Contains(core.Point{X: 12, Y: 14}) {
		t.Error("expected containment")
	}
	if s.Contains(core.Point{X: 15, Y: 12}) {
		t.Error("right edge is exclusive")
	}
	if r, ok := s.Yield(); !ok || r != core.Gold {
		t.Errorf("Yield = %v, %v", r, ok)
	}

	wall := Structure{Kind: core.KindWall}
	if _, ok := wall.Yield(); ok {
		t.Error("wall should not yield")
	}
}
