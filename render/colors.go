package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(120, 120, 140) // Muted slate
	RgbPanelText  = tcell.NewRGBColor(220, 220, 220) // Off-white
	RgbPanelLabel = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbGold   = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbElixir = tcell.NewRGBColor(200, 80, 255)  // Violet
	RgbHealth = tcell.NewRGBColor(255, 80, 80)   // Normal red
	RgbEnemy  = tcell.NewRGBColor(255, 60, 60)   // Bright red
	RgbPlayer = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbWall   = tcell.NewRGBColor(180, 110, 70)  // Brick
	RgbHall   = tcell.NewRGBColor(140, 190, 255) // Bright blue

	RgbBannerFg = tcell.NewRGBColor(255, 255, 255) // White
	RgbBannerBg = tcell.NewRGBColor(180, 0, 0)     // Dark red
)

var (
	baseStyle   = tcell.StyleDefault.Background(RgbBackground)
	borderStyle = baseStyle.Foreground(RgbBorder)
	labelStyle  = baseStyle.Foreground(RgbPanelLabel)
	bannerStyle = tcell.StyleDefault.Foreground(RgbBannerFg).Background(RgbBannerBg).Bold(true)
)
