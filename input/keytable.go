package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to commands
// Runes are stored lower-case and matched case-insensitively
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Command

	// Printable bindings
	Runes map[rune]Command
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyUp:    CommandMoveUp,
			tcell.KeyDown:  CommandMoveDown,
			tcell.KeyLeft:  CommandMoveLeft,
			tcell.KeyRight: CommandMoveRight,
			tcell.KeyCtrlC: CommandQuit,
		},
		Runes: map[rune]Command{
			'u': CommandMoveUp,
			'd': CommandMoveDown,
			'l': CommandMoveLeft,
			'r': CommandMoveRight,
			'w': CommandPlaceWall,
			'm': CommandPlaceGoldMine,
			'e': CommandPlaceElixirCollector,
			'c': CommandCollect,
			'q': CommandQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key and rune pair, CommandNone when unbound
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Command {
	if key == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(r)]
	}
	return kt.SpecialKeys[key]
}

// Translate resolves a tcell key event
func (kt *KeyTable) Translate(ev *tcell.EventKey) Command {
	return kt.Lookup(ev.Key(), ev.Rune())
}
