package render

import (
	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/parameter"
)

// Icons is the glyph set used to draw entities
type Icons struct {
	Player        rune
	Enemy         rune
	Wall          rune
	GoldMine      rune
	GoldMineFull  rune
	Collector     rune
	CollectorFull rune
	TownHall      rune
}

// EmojiIcons is the default glyph set
var EmojiIcons = Icons{
	Player:        parameter.IconPlayer,
	Enemy:         parameter.IconEnemy,
	Wall:          parameter.IconWall,
	GoldMine:      parameter.IconGoldMine,
	GoldMineFull:  parameter.IconGoldMineFull,
	Collector:     parameter.IconCollector,
	CollectorFull: parameter.IconCollectorFull,
	TownHall:      parameter.IconTownHall,
}

// ASCIIIcons is the single-width fallback
var ASCIIIcons = Icons{
	Player:        parameter.ASCIIPlayer,
	Enemy:         parameter.ASCIIEnemy,
	Wall:          parameter.ASCIIWall,
	GoldMine:      parameter.ASCIIGoldMine,
	GoldMineFull:  parameter.ASCIIGoldMineFull,
	Collector:     parameter.ASCIICollector,
	CollectorFull: parameter.ASCIICollectorFull,
	TownHall:      parameter.ASCIITownHall,
}

// Structure returns the glyph for a structure kind, full selects the ready icon
func (i Icons) Structure(kind core.Kind, full bool) rune {
	switch kind {
	case core.KindWall:
		return i.Wall
	case core.KindGoldMine:
		if full {
			return i.GoldMineFull
		}
		return i.GoldMine
	case core.KindElixirCollector:
		if full {
			return i.CollectorFull
		}
		return i.Collector
	default:
		return i.TownHall
	}
}
