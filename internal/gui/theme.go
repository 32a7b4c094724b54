//go:build cgo

package gui

import rl "github.com/gen2brain/raylib-go/raylib"

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Warning       rl.Color
	Danger        rl.Color

	Wall        rl.Color
	FloorTile   rl.Color
	SecretFloor rl.Color
	Shelf       rl.Color
	Chilled     rl.Color
	Fridge      rl.Color
	Table       rl.Color
	Stairs      rl.Color
	Search      rl.Color
	Basket      rl.Color
	Cart        rl.Color
	Cashier     rl.Color
	Door        rl.Color
	ATM         rl.Color
	Exit        rl.Color
	Teleport    rl.Color
	Player      rl.Color
	NPC         rl.Color
	Waypoint    rl.Color
}

var AppTheme = Theme{
	Background:    rl.NewColor(24, 26, 33, 255),
	Panel:         rl.NewColor(34, 37, 46, 255),
	PanelRaised:   rl.NewColor(44, 48, 59, 255),
	Border:        rl.NewColor(70, 76, 92, 255),
	TextPrimary:   rl.NewColor(228, 230, 235, 255),
	TextSecondary: rl.NewColor(170, 175, 188, 255),
	TextMuted:     rl.NewColor(120, 126, 140, 255),
	Accent:        rl.NewColor(255, 178, 56, 255),
	Warning:       rl.NewColor(240, 180, 60, 255),
	Danger:        rl.NewColor(224, 88, 80, 255),

	Wall:        rl.NewColor(52, 56, 66, 255),
	FloorTile:   rl.NewColor(88, 94, 108, 255),
	SecretFloor: rl.NewColor(66, 58, 84, 255),
	Shelf:       rl.NewColor(164, 120, 72, 255),
	Chilled:     rl.NewColor(116, 172, 212, 255),
	Fridge:      rl.NewColor(140, 196, 236, 255),
	Table:       rl.NewColor(188, 152, 96, 255),
	Stairs:      rl.NewColor(196, 196, 120, 255),
	Search:      rl.NewColor(96, 200, 160, 255),
	Basket:      rl.NewColor(220, 160, 64, 255),
	Cart:        rl.NewColor(200, 120, 48, 255),
	Cashier:     rl.NewColor(120, 220, 120, 255),
	Door:        rl.NewColor(150, 110, 70, 255),
	ATM:         rl.NewColor(110, 150, 230, 255),
	Exit:        rl.NewColor(230, 100, 100, 255),
	Teleport:    rl.NewColor(20, 20, 20, 255),
	Player:      rl.NewColor(255, 230, 90, 255),
	NPC:         rl.NewColor(180, 90, 200, 255),
	Waypoint:    rl.NewColor(255, 80, 180, 255),
}

// Aliases used by the render code.
var (
	colorBG     = AppTheme.Background
	colorPanel  = AppTheme.Panel
	colorRaised = AppTheme.PanelRaised
	colorBorder = AppTheme.Border
	colorText   = AppTheme.TextPrimary
	colorDim    = AppTheme.TextSecondary
	colorMuted  = AppTheme.TextMuted
	colorAccent = AppTheme.Accent
	colorDanger = AppTheme.Danger
)
