//go:build cgo

package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/brightlane-games/supermart/internal/shop"
)

const (
	cellSize   = 30
	gridMargin = 16
	hudWidth   = 340
	fontSize   = 18
	smallFont  = 15
	lineGap    = 22
)

func (ui *storeUI) draw() {
	ui.drawGrid()
	ui.drawHUD()
	ui.drawModal()
	ui.drawMessage()
}

func (ui *storeUI) tileColor(kind shop.TileKind) rl.Color {
	t := AppTheme
	switch kind {
	case shop.TileWall:
		return t.Wall
	case shop.TileFloor:
		return t.FloorTile
	case shop.TileSecretFloor:
		return t.SecretFloor
	case shop.TileShelf:
		return t.Shelf
	case shop.TileChilled:
		return t.Chilled
	case shop.TileFridge:
		return t.Fridge
	case shop.TileTable:
		return t.Table
	case shop.TileStairsUp, shop.TileStairsDown:
		return t.Stairs
	case shop.TileSearch:
		return t.Search
	case shop.TileBasket:
		return t.Basket
	case shop.TileCart:
		return t.Cart
	case shop.TileCashier:
		return t.Cashier
	case shop.TileDoor:
		return t.Door
	case shop.TileATM:
		return t.ATM
	case shop.TileExit:
		return t.Exit
	case shop.TileTeleport:
		return t.Teleport
	default:
		return t.Wall
	}
}

func (ui *storeUI) drawGrid() {
	s := ui.session
	floor := s.Floor()

	for row := 0; row < shop.GridSize; row++ {
		for col := 0; col < shop.GridSize; col++ {
			x := int32(gridMargin + col*cellSize)
			y := int32(gridMargin + row*cellSize)
			kind := s.Grid().TileAt(floor, row, col)
			rl.DrawRectangle(x, y, cellSize-1, cellSize-1, ui.tileColor(kind))
		}
	}

	if wps, on := s.WaypointsVisible(); on {
		for _, w := range wps {
			x := int32(gridMargin + w.Col*cellSize)
			y := int32(gridMargin + w.Row*cellSize)
			rl.DrawRectangleLinesEx(rl.NewRectangle(float32(x), float32(y), cellSize-1, cellSize-1), 3, AppTheme.Waypoint)
		}
	}

	if floor == shop.FloorHallway {
		nx := int32(gridMargin + 11*cellSize + cellSize/2)
		ny := int32(gridMargin + 4*cellSize + cellSize/2)
		rl.DrawCircle(nx, ny, cellSize/2-3, AppTheme.NPC)
	}

	row, col := s.Position()
	px := int32(gridMargin + col*cellSize + cellSize/2)
	py := int32(gridMargin + row*cellSize + cellSize/2)
	rl.DrawCircle(px, py, cellSize/2-4, AppTheme.Player)

	dr, dc := s.Facing()
	rl.DrawCircle(px+int32(dc*8), py+int32(dr*8), 3, colorBG)
}

func floorLabel(f shop.Floor) string {
	switch f {
	case shop.FloorGround:
		return "Ground Floor"
	case shop.FloorUpper:
		return "Upper Floor"
	case shop.FloorHallway:
		return "???"
	default:
		return "Unknown"
	}
}

func (ui *storeUI) drawHUD() {
	s := ui.session
	x := int32(gridMargin + shop.GridSize*cellSize + gridMargin)
	y := int32(gridMargin)
	w := int32(hudWidth)
	h := int32(shop.GridSize * cellSize)

	rl.DrawRectangle(x, y, w, h, colorPanel)
	rl.DrawRectangleLines(x, y, w, h, colorBorder)

	tx := x + 14
	ty := y + 12
	line := func(text string, color rl.Color) {
		rl.DrawText(text, tx, ty, fontSize, color)
		ty += lineGap
	}

	line(s.PlayerName()+fmt.Sprintf("  (age %d)", s.Age()), colorText)
	line(floorLabel(s.Floor()), colorDim)
	ty += lineGap / 2

	wallet := s.Wallet()
	line(fmt.Sprintf("Wallet  ₱%.2f", wallet.Balance), colorAccent)
	line(fmt.Sprintf("Bank    ₱%.2f", wallet.BankBalance), colorDim)
	ty += lineGap / 2

	bag := s.Carried()
	line(fmt.Sprintf("Carrying: %s  %d/%d", bag.Equipment(), bag.TotalQuantity(), bag.Equipment().Capacity()), colorText)
	line(fmt.Sprintf("Bag total ₱%.2f", bag.TotalPrice()), colorDim)
	ty += lineGap / 2

	if s.HasPermanentDiscount() {
		line("50% member discount active", colorAccent)
	}
	if s.EventMultiplier() < 1 {
		line("Store-wide sale!", colorAccent)
	}
	if s.VendorOverrideActive() {
		line("Vendor's blessing active", AppTheme.NPC)
	}
	if s.MovementLocked() {
		line("You can't move right now...", colorDanger)
	}
	ty += lineGap / 2

	for _, help := range []string{
		"Arrows/WASD move   E interact",
		"ESC cancel   R return mode",
		"X waypoints   I inventory",
		"B last receipt   F10 quit",
	} {
		rl.DrawText(help, tx, ty, smallFont, colorMuted)
		ty += lineGap - 4
	}
}

// drawMessage renders the feedback line (or panel, for multi-line
// texts like the inventory view and receipts) under the grid.
func (ui *storeUI) drawMessage() {
	if ui.message == "" {
		return
	}
	lines := strings.Split(ui.message, "\n")
	x := int32(gridMargin)
	y := int32(gridMargin + shop.GridSize*cellSize + 8)

	if len(lines) == 1 {
		rl.DrawText(lines[0], x, y, fontSize, colorText)
		return
	}

	w := ui.width - 2*gridMargin
	h := int32(len(lines)*lineGap + 16)
	maxH := ui.height - y - gridMargin
	if h > maxH {
		h = maxH
	}
	rl.DrawRectangle(x, y, w, h, colorRaised)
	rl.DrawRectangleLines(x, y, w, h, colorBorder)
	ty := y + 8
	for _, ln := range lines {
		if ty+lineGap > y+h {
			break
		}
		rl.DrawText(ln, x+12, ty, smallFont, colorText)
		ty += lineGap
	}
}

func (ui *storeUI) modalRect() rl.Rectangle {
	w := float32(520)
	h := float32(420)
	return rl.NewRectangle(float32(ui.width)/2-w/2, float32(ui.height)/2-h/2, w, h)
}

func (ui *storeUI) drawModal() {
	switch ui.session.Mode() {
	case shop.ModeBrowsing, shop.ModePickingReturn:
		ui.drawBrowser()
	case shop.ModePickingQuantity:
		ui.drawQuantity()
	case shop.ModeConfirmingEquipment:
		ui.drawConfirm()
	case shop.ModeATM:
		ui.drawATM()
	case shop.ModeSearching:
		ui.drawKiosk()
	}
}

func (ui *storeUI) beginPanel(title string) (x, y int32) {
	r := ui.modalRect()
	rl.DrawRectangleRec(r, colorRaised)
	rl.DrawRectangleLinesEx(r, 2, colorBorder)
	x = int32(r.X) + 18
	y = int32(r.Y) + 14
	rl.DrawText(title, x, y, fontSize+2, colorAccent)
	return x, y + lineGap + 10
}

func (ui *storeUI) drawBrowser() {
	items, cursor, returnMode, ok := ui.session.BrowserView()
	if !ok {
		return
	}
	title := "Products"
	if returnMode {
		title = "Return Products"
	}
	x, y := ui.beginPanel(title)

	if len(items) == 0 {
		rl.DrawText("Nothing here.", x, y, fontSize, colorDim)
		return
	}

	const visible = 14
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	for i := start; i < len(items) && i < start+visible; i++ {
		color := colorDim
		prefix := "  "
		if i == cursor {
			color = colorText
			prefix = "> "
		}
		p := items[i]
		price, allowed := ui.session.EffectivePriceFor(p.ID)
		if returnMode {
			price, allowed = p.Price, true
		}
		label := fmt.Sprintf("%s%-28s ₱%8.2f", prefix, p.Name, price)
		if !allowed {
			// Age-gated for this shopper; show the shelf price, not 0.
			label = fmt.Sprintf("%s%-28s ₱%8.2f  18+", prefix, p.Name, p.Price)
			color = colorMuted
		}
		rl.DrawText(label, x, y, smallFont, color)
		y += lineGap - 2
	}
	rl.DrawText("E select   R switch mode   ESC close", x, int32(ui.modalRect().Y+ui.modalRect().Height)-28, smallFont, colorMuted)
}

func (ui *storeUI) drawQuantity() {
	name, qty, max, unitPrice, forReturn, errText, ok := ui.session.QuantityView()
	if !ok {
		return
	}
	title := "How many?"
	if forReturn {
		title = "Return how many?"
	}
	x, y := ui.beginPanel(title)

	rl.DrawText(name, x, y, fontSize, colorText)
	y += lineGap + 6
	rl.DrawText(fmt.Sprintf("Quantity: %d   (max %d)", qty, max), x, y, fontSize, colorText)
	y += lineGap
	rl.DrawText(fmt.Sprintf("Unit price ₱%.2f   Total ₱%.2f", unitPrice, float64(qty)*unitPrice), x, y, fontSize, colorDim)
	y += lineGap
	if errText != "" {
		rl.DrawText(errText, x, y, fontSize, colorDanger)
		y += lineGap
	}
	rl.DrawText("Up/Down adjust   E confirm   ESC back", x, y+lineGap, smallFont, colorMuted)
}

func (ui *storeUI) drawConfirm() {
	message, isQuestion, ok := ui.session.ConfirmPrompt()
	if !ok {
		return
	}
	x, y := ui.beginPanel("Store")
	for _, ln := range strings.Split(message, "\n") {
		rl.DrawText(ln, x, y, fontSize, colorText)
		y += lineGap
	}
	y += lineGap
	if isQuestion {
		rl.DrawText("E yes   ESC no", x, y, smallFont, colorMuted)
	} else {
		rl.DrawText("E continue", x, y, smallFont, colorMuted)
	}
}

func (ui *storeUI) drawATM() {
	stage, cursor, amount, withdrawn, errText, ok := ui.session.ATMView()
	if !ok {
		return
	}
	x, y := ui.beginPanel("ATM")
	wallet := ui.session.Wallet()

	switch stage {
	case shop.ATMMenu:
		for i, label := range []string{"Balance Inquiry", "Withdraw", "Exit"} {
			color := colorDim
			prefix := "  "
			if i == cursor {
				color = colorText
				prefix = "> "
			}
			rl.DrawText(prefix+label, x, y, fontSize, color)
			y += lineGap
		}
	case shop.ATMBalance:
		rl.DrawText(fmt.Sprintf("Bank balance: ₱%.2f", wallet.BankBalance), x, y, fontSize, colorText)
		y += lineGap
		rl.DrawText(fmt.Sprintf("Wallet:       ₱%.2f", wallet.Balance), x, y, fontSize, colorDim)
	case shop.ATMWithdraw:
		rl.DrawText(fmt.Sprintf("Withdraw: ₱%.2f", amount), x, y, fontSize, colorText)
		y += lineGap
		rl.DrawText("Up/Down ±100   Left/Right ±1000", x, y, smallFont, colorMuted)
		y += lineGap
		if errText != "" {
			rl.DrawText(errText, x, y, fontSize, colorDanger)
		}
	case shop.ATMSuccess:
		rl.DrawText(fmt.Sprintf("Dispensed ₱%.2f.", withdrawn), x, y, fontSize, colorText)
		y += lineGap
		rl.DrawText(fmt.Sprintf("Wallet now ₱%.2f.", wallet.Balance), x, y, fontSize, colorDim)
	}
	rl.DrawText("E select   ESC back", x, int32(ui.modalRect().Y+ui.modalRect().Height)-28, smallFont, colorMuted)
}

func (ui *storeUI) drawKiosk() {
	stage, categoryCursor, itemCursor, items, result, ok := ui.session.KioskView()
	if !ok {
		return
	}
	x, y := ui.beginPanel("Search Kiosk")

	switch stage {
	case shop.KioskSelectCategory:
		types := shop.ProductTypes()
		const visible = 12
		start := 0
		if categoryCursor >= visible {
			start = categoryCursor - visible + 1
		}
		for i := start; i < len(types) && i < start+visible; i++ {
			color := colorDim
			prefix := "  "
			if i == categoryCursor {
				color = colorText
				prefix = "> "
			}
			rl.DrawText(prefix+types[i].Name, x, y, smallFont, color)
			y += lineGap - 2
		}
		y += 8
		rl.DrawText("Search: "+ui.searchBuffer+"_", x, y, fontSize, colorAccent)
	case shop.KioskSelectItem:
		const visible = 14
		start := 0
		if itemCursor >= visible {
			start = itemCursor - visible + 1
		}
		for i := start; i < len(items) && i < start+visible; i++ {
			color := colorDim
			prefix := "  "
			if i == itemCursor {
				color = colorText
				prefix = "> "
			}
			p := items[i]
			rl.DrawText(fmt.Sprintf("%s%s (%s) - ₱%.2f", prefix, p.Name, p.ID, p.Price), x, y, smallFont, color)
			y += lineGap - 2
		}
	case shop.KioskShowResult:
		for _, ln := range strings.Split(result, "\n") {
			rl.DrawText(ln, x, y, fontSize, colorText)
			y += lineGap
		}
		y += lineGap
		rl.DrawText("Waypoints highlighted on the floor map.", x, y, smallFont, colorDim)
	}
	rl.DrawText("E select   X waypoints   ESC back", x, int32(ui.modalRect().Y+ui.modalRect().Height)-28, smallFont, colorMuted)
}
