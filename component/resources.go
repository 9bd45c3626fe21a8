package component

import "github.com/lixenwraith/townhold/core"

// Resources is the player's ledger, balances never go negative
type Resources struct {
	Gold   int
	Elixir int
}

// Balance returns the current amount of a resource
func (r *Resources) Balance(kind core.Resource) int {
	switch kind {
	case core.Gold:
		return r.Gold
	case core.Elixir:
		return r.Elixir
	default:
		return 0
	}
}

// Spend debits amount if the balance covers it, otherwise nothing changes
func (r *Resources) Spend(kind core.Resource, amount int) bool {
	if amount < 0 {
		return false
	}
	bal := r.balance(kind)
	if bal == nil || *bal < amount {
		return false
	}
	*bal -= amount
	return true
}

// Credit adds amount without cap
func (r *Resources) Credit(kind core.Resource, amount int) {
	if amount <= 0 {
		return
	}
	if bal := r.balance(kind); bal != nil {
		*bal += amount
	}
}

// CanAfford reports whether both parts of cost are covered
func (r *Resources) CanAfford(cost core.Cost) bool {
	return r.Gold >= cost.Gold && r.Elixir >= cost.Elixir
}

// SpendCost debits both parts of cost or neither
func (r *Resources) SpendCost(cost core.Cost) bool {
	if cost.Gold < 0 || cost.Elixir < 0 || !r.CanAfford(cost) {
		return false
	}
	r.Gold -= cost.Gold
	r.Elixir -= cost.Elixir
	return true
}

func (r *Resources) balance(kind core.Resource) *int {
	switch kind {
	case core.Gold:
		return &r.Gold
	case core.Elixir:
		return &r.Elixir
	default:
		return nil
	}
}
