package component

import "github.com/lixenwraith/townhold/core"

// PlayerComponent is the builder token and its ledger
type PlayerComponent struct {
	Pos       core.Point
	Resources Resources
}
