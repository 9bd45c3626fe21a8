package core

// Kind tags a structure variant
type Kind uint8

const (
	KindWall Kind = iota
	KindGoldMine
	KindElixirCollector
	KindTownHall
)

// KindCount is the number of structure kinds
const KindCount = 4

// TargetOrder is the fixed priority in which enemies look for something to attack
var TargetOrder = [KindCount]Kind{KindWall, KindGoldMine, KindElixirCollector, KindTownHall}

var kindNames = [KindCount]string{
	KindWall:            "wall",
	KindGoldMine:        "gold_mine",
	KindElixirCollector: "elixir_collector",
	KindTownHall:        "town_hall",
}

// String returns the config/log name of the kind
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsGenerator reports whether the kind accumulates a resource
func (k Kind) IsGenerator() bool {
	return k == KindGoldMine || k == KindElixirCollector
}

// KindByName resolves a config name to a kind
func KindByName(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Resource identifies a ledger balance
type Resource uint8

const (
	Gold Resource = iota
	Elixir
)

// String returns the display name of the resource
func (r Resource) String() string {
	switch r {
	case Gold:
		return "gold"
	case Elixir:
		return "elixir"
	default:
		return "unknown"
	}
}

// Cost is a build price in both resources
type Cost struct {
	Gold   int `toml:"gold" yaml:"gold"`
	Elixir int `toml:"elixir" yaml:"elixir"`
}

// Direction is a player movement direction
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)
