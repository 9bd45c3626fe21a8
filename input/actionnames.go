package input

import (
	"sort"
	"strings"
)

// actionRegistry maps canonical action names to commands
// Used by the keymap config loader to resolve action strings to bindings
var actionRegistry = map[string]Command{
	// Unbind sentinel
	"none": CommandNone,

	"move_up":    CommandMoveUp,
	"move_down":  CommandMoveDown,
	"move_left":  CommandMoveLeft,
	"move_right": CommandMoveRight,

	"place_wall":             CommandPlaceWall,
	"place_gold_mine":        CommandPlaceGoldMine,
	"place_elixir_collector": CommandPlaceElixirCollector,
	"collect":                CommandCollect,

	"quit": CommandQuit,
}

// ActionCommand resolves an action name, case-insensitive
func ActionCommand(name string) (Command, bool) {
	cmd, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return cmd, ok
}

// ActionNames returns all bindable action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
