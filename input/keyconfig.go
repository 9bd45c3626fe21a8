package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys awkward to write as bare config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted in config
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"esc":    tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
}

// LoadKeyConfig parses key → action name bindings into a sparse override KeyTable
// Returns error on unknown action or key names
func LoadKeyConfig(keys map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Command),
		Runes:       make(map[rune]Command),
	}

	for keyStr, actionName := range keys {
		cmd, ok := ActionCommand(actionName)
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action: %q", keyStr, actionName)
		}

		if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
			kt.SpecialKeys[k] = cmd
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		kt.Runes[r] = cmd
	}

	return kt, nil
}

// resolveRune converts a config key string to a lower-case rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return unicode.ToLower(runes[0]), nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or special key name)", s)
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]Command) {
	for k, v := range override {
		if v == CommandNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}

// BuildKeyTable merges config bindings over the defaults
func BuildKeyTable(keys map[string]string) (*KeyTable, error) {
	if len(keys) == 0 {
		return DefaultKeyTable(), nil
	}
	override, err := LoadKeyConfig(keys)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}
