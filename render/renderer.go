package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/townhold/config"
	"github.com/lixenwraith/townhold/core"
	"github.com/lixenwraith/townhold/game"
	"github.com/lixenwraith/townhold/parameter"
	"github.com/lixenwraith/townhold/vmath"
)

// Renderer draws match snapshots onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	icons  Icons
}

// NewRenderer creates a renderer, ascii selects the single-width glyph set
func NewRenderer(screen tcell.Screen, ascii bool) *Renderer {
	icons := EmojiIcons
	if ascii {
		icons = ASCIIIcons
	}
	return &Renderer{screen: screen, icons: icons}
}

// Draw renders one complete frame and shows it
func (r *Renderer) Draw(snap game.Snapshot) {
	r.screen.SetStyle(baseStyle)
	r.screen.Clear()

	r.drawBorder(snap.Board)
	r.drawPanel(snap)

	for _, s := range snap.Structures {
		r.drawStructure(s)
	}
	for _, p := range snap.Enemies {
		r.screen.SetContent(p.X, p.Y, r.icons.Enemy, nil, baseStyle.Foreground(RgbEnemy))
	}
	r.screen.SetContent(snap.Player.X, snap.Player.Y, r.icons.Player, nil, baseStyle.Foreground(RgbPlayer))

	if snap.Over {
		r.drawBanner(snap.Board)
	}

	r.screen.Show()
}

// drawBorder frames the board and splits the side panel from the playfield
func (r *Renderer) drawBorder(b config.Board) {
	right, bottom := b.Width-1, b.Height-1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, 0, '═', nil, borderStyle)
		r.screen.SetContent(x, bottom, '═', nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '║', nil, borderStyle)
		r.screen.SetContent(b.Margin, y, '║', nil, borderStyle)
		r.screen.SetContent(right, y, '║', nil, borderStyle)
	}

	r.screen.SetContent(0, 0, '╔', nil, borderStyle)
	r.screen.SetContent(right, 0, '╗', nil, borderStyle)
	r.screen.SetContent(0, bottom, '╚', nil, borderStyle)
	r.screen.SetContent(right, bottom, '╝', nil, borderStyle)
	r.screen.SetContent(b.Margin, 0, '╦', nil, borderStyle)
	r.screen.SetContent(b.Margin, bottom, '╩', nil, borderStyle)
}

type panelLine struct {
	label string
	value string
	color tcell.Color
}

func (r *Renderer) drawPanel(snap game.Snapshot) {
	lines := []panelLine{
		{"Gold", fmt.Sprint(snap.Gold), RgbGold},
		{"Elixir", fmt.Sprint(snap.Elixir), RgbElixir},
		{},
		{"Walls", ratio(snap, core.KindWall), RgbWall},
		{"Gold Mines", ratio(snap, core.KindGoldMine), RgbGold},
		{"Elixir Collectors", ratio(snap, core.KindElixirCollector), RgbElixir},
		{},
		{"Town Hall HP", fmt.Sprint(snap.TownHallHP), RgbHealth},
		{"Enemies", fmt.Sprint(len(snap.Enemies)), RgbEnemy},
		{},
		{"Tick", fmt.Sprint(snap.Tick), RgbPanelText},
	}

	for i, line := range lines {
		if line.label == "" {
			continue
		}
		y := 2 + i
		x := r.drawText(2, y, line.label+": ", labelStyle)
		r.drawText(x, y, line.value, baseStyle.Foreground(line.color))
	}
}

func ratio(snap game.Snapshot, kind core.Kind) string {
	return fmt.Sprintf("%d/%d", snap.Counts[kind], snap.Caps[kind])
}

func (r *Renderer) drawStructure(s game.StructureView) {
	style := baseStyle.Foreground(structureColor(s.Kind))
	icon := r.icons.Structure(s.Kind, s.Full)

	if !s.Bordered {
		r.screen.SetContent(s.Area.X, s.Area.Y, icon, nil, style)
		return
	}

	a := s.Area
	right, bottom := a.X+a.Width-1, a.Y+a.Height-1
	for x := a.X + 1; x < right; x++ {
		r.screen.SetContent(x, a.Y, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := a.Y + 1; y < bottom; y++ {
		r.screen.SetContent(a.X, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(a.X, a.Y, '┌', nil, style)
	r.screen.SetContent(right, a.Y, '┐', nil, style)
	r.screen.SetContent(a.X, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)

	c := vmath.AreaCenter(a)
	r.screen.SetContent(c.X, c.Y, icon, nil, style)
}

func structureColor(kind core.Kind) tcell.Color {
	switch kind {
	case core.KindWall:
		return RgbWall
	case core.KindGoldMine:
		return RgbGold
	case core.KindElixirCollector:
		return RgbElixir
	default:
		return RgbHall
	}
}

func (r *Renderer) drawBanner(b config.Board) {
	text := " " + parameter.GameOverText + " "
	x := (b.Width - len(text)) / 2
	r.drawText(x, b.Height/2, text, bannerStyle)
}

// drawText writes single-width text and returns the column after it
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
