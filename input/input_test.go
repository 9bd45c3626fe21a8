package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultBindings(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Command
	}{
		{"u", tcell.KeyRune, 'u', CommandMoveUp},
		{"upper U", tcell.KeyRune, 'U', CommandMoveUp},
		{"d", tcell.KeyRune, 'd', CommandMoveDown},
		{"l", tcell.KeyRune, 'L', CommandMoveLeft},
		{"r", tcell.KeyRune, 'r', CommandMoveRight},
		{"arrow up", tcell.KeyUp, 0, CommandMoveUp},
		{"arrow down", tcell.KeyDown, 0, CommandMoveDown},
		{"arrow left", tcell.KeyLeft, 0, CommandMoveLeft},
		{"arrow right", tcell.KeyRight, 0, CommandMoveRight},
		{"wall", tcell.KeyRune, 'W', CommandPlaceWall},
		{"mine", tcell.KeyRune, 'm', CommandPlaceGoldMine},
		{"collector", tcell.KeyRune, 'E', CommandPlaceElixirCollector},
		{"collect", tcell.KeyRune, 'c', CommandCollect},
		{"quit", tcell.KeyRune, 'Q', CommandQuit},
		{"unbound rune", tcell.KeyRune, 'z', CommandNone},
		{"unbound key", tcell.KeyF1, 0, CommandNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.key, tt.r); got != tt.want {
				t.Errorf("Lookup(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
			}
		})
	}
}

func TestBuildKeyTableOverrides(t *testing.T) {
	kt, err := BuildKeyTable(map[string]string{
		"K":     "move_up",
		"u":     "none",
		"space": "collect",
		"esc":   "Quit",
	})
	if err != nil {
		t.Fatalf("BuildKeyTable: %v", err)
	}

	if got := kt.Lookup(tcell.KeyRune, 'k'); got != CommandMoveUp {
		t.Errorf("k = %v", got)
	}
	if got := kt.Lookup(tcell.KeyRune, 'u'); got != CommandNone {
		t.Errorf("unbound u still maps to %v", got)
	}
	if got := kt.Lookup(tcell.KeyRune, ' '); got != CommandCollect {
		t.Errorf("space = %v", got)
	}
	if got := kt.Lookup(tcell.KeyEscape, 0); got != CommandQuit {
		t.Errorf("esc = %v", got)
	}
	if got := kt.Lookup(tcell.KeyRune, 'w'); got != CommandPlaceWall {
		t.Errorf("default w lost: %v", got)
	}

	if DefaultKeyTable().Lookup(tcell.KeyRune, 'u') != CommandMoveUp {
		t.Error("merge mutated the defaults")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		keys map[string]string
	}{
		{"unknown action", map[string]string{"x": "fly"}},
		{"multi char key", map[string]string{"xy": "quit"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig(tt.keys); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCommandNames(t *testing.T) {
	for _, name := range ActionNames() {
		cmd, ok := ActionCommand(name)
		if !ok {
			t.Fatalf("registered name %q not resolvable", name)
		}
		if cmd.String() != name {
			t.Errorf("%q round trips to %q", name, cmd.String())
		}
	}
}
