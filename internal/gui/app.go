//go:build cgo

// Package gui is the raylib front end: a thin shell that maps key
// presses to session actions and renders whatever the session reports.
package gui

import (
	"fmt"
	"strings"
	"unicode"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/brightlane-games/supermart/internal/config"
	"github.com/brightlane-games/supermart/internal/shop"
)

type AppConfig struct {
	Version string
	Config  *config.Config
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui, err := newStoreUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.run()
}

type storeUI struct {
	cfg     AppConfig
	width   int32
	height  int32
	fps     int32
	session *shop.Session

	message string

	// searchBuffer collects typed characters on the kiosk category
	// screen for free-text search.
	searchBuffer string

	quit bool
}

func newStoreUI(cfg AppConfig) (*storeUI, error) {
	c := cfg.Config
	if c == nil {
		c = config.Default()
	}
	session, err := shop.NewSession(shop.Config{
		PlayerName:      c.Player.Name,
		Age:             c.Player.Age,
		StartingBalance: c.Player.StartingBalance,
		BankBalance:     c.Player.BankBalance,
		Seed:            c.Sim.Seed,
	})
	if err != nil {
		return nil, err
	}
	return &storeUI{
		cfg:     cfg,
		width:   int32(c.Display.Width),
		height:  int32(c.Display.Height),
		fps:     int32(c.Display.FPS),
		session: session,
		message: "Welcome to the supermarket, " + c.Player.Name + "!",
	}, nil
}

func (ui *storeUI) run() error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "supermart")
	rl.SetExitKey(0)
	rl.SetTargetFPS(ui.fps)

	for !ui.quit && !rl.WindowShouldClose() {
		ui.update()

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (ui *storeUI) update() {
	var action shop.Action
	if ui.kioskTypingActive() {
		action = ui.updateSearchTyping()
	} else {
		ui.searchBuffer = ""
		action = pressedAction()
	}

	if action == actionQuit {
		ui.quit = true
		return
	}
	if action == shop.ActionNone {
		return
	}
	if res := ui.session.HandleAction(action); res.Handled && res.Message != "" {
		ui.message = res.Message
	}
}

// kioskTypingActive reports whether the kiosk category list is up, the
// one place where letter keys feed a text buffer instead of actions.
func (ui *storeUI) kioskTypingActive() bool {
	if ui.session.Mode() != shop.ModeSearching {
		return false
	}
	stage, _, _, _, _, ok := ui.session.KioskView()
	return ok && stage == shop.KioskSelectCategory
}

// updateSearchTyping collects typed text on the kiosk category screen.
// Enter with text runs a fuzzy search; Enter on an empty buffer selects
// the highlighted category as usual. Only navigation keys map to
// actions here so typed letters don't double as hotkeys.
func (ui *storeUI) updateSearchTyping() shop.Action {
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		r := rune(ch)
		if unicode.IsLetter(r) || r == ' ' {
			ui.searchBuffer += string(r)
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && ui.searchBuffer != "" {
		ui.searchBuffer = ui.searchBuffer[:len(ui.searchBuffer)-1]
	}

	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		return shop.ActionMoveUp
	case rl.IsKeyPressed(rl.KeyDown):
		return shop.ActionMoveDown
	case rl.IsKeyPressed(rl.KeyEscape):
		return shop.ActionCancel
	case rl.IsKeyPressed(rl.KeyEnter):
		query := strings.TrimSpace(ui.searchBuffer)
		if query == "" {
			return shop.ActionInteract
		}
		if hint, found := ui.session.SearchFreeText(query); found {
			ui.message = hint
		} else {
			ui.message = fmt.Sprintf("No match for %q.", query)
		}
		ui.searchBuffer = ""
	}
	return shop.ActionNone
}

// actionQuit is GUI-only; the session never sees it.
const actionQuit = shop.Action(-1)

func pressedAction() shop.Action {
	switch {
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyW):
		return shop.ActionMoveUp
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyS):
		return shop.ActionMoveDown
	case rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyA):
		return shop.ActionMoveLeft
	case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyD):
		return shop.ActionMoveRight
	case rl.IsKeyPressed(rl.KeyE), rl.IsKeyPressed(rl.KeyEnter):
		return shop.ActionInteract
	case rl.IsKeyPressed(rl.KeyEscape):
		return shop.ActionCancel
	case rl.IsKeyPressed(rl.KeyR):
		return shop.ActionToggleReturn
	case rl.IsKeyPressed(rl.KeyX):
		return shop.ActionToggleWaypoints
	case rl.IsKeyPressed(rl.KeyI):
		return shop.ActionViewInventory
	case rl.IsKeyPressed(rl.KeyB):
		return shop.ActionViewReceipt
	case rl.IsKeyPressed(rl.KeyF10):
		return actionQuit
	}
	return shop.ActionNone
}
