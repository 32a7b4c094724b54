package shop

import (
	"errors"
	"fmt"
	"strings"
)

// interact resolves the Interact action in Free mode. Facing targets
// win over the tile the player is standing on.
func (s *Session) interact() ActionResult {
	tr, tc := s.row+s.facingDR, s.col+s.facingDC

	if s.npcAt(s.floor, tr, tc) {
		return s.interactVendor()
	}

	facing := s.grid.TileAt(s.floor, tr, tc)
	switch facing {
	case TileATM:
		s.modal = newATMState()
		return handled("")
	case TileSearch:
		s.modal = newKioskState()
		return handled("")
	case TileBasket:
		return s.interactEquipmentStation(EquipBasket)
	case TileCart:
		return s.interactEquipmentStation(EquipCart)
	case TileCashier:
		return s.interactCashier()
	}

	if interactable(facing) {
		if items := ItemsForTile(facing, s.floor, tr, tc); len(items) > 0 {
			s.clearWaypoints()
			s.modal = newBrowserState(facing, s.floor, tr, tc, items)
			return handled("")
		}
	}

	// Nothing ahead; the standing tile may still do something.
	switch s.grid.TileAt(s.floor, s.row, s.col) {
	case TileStairsUp:
		if s.floor == FloorGround {
			s.changeFloor(FloorUpper)
			return handled("You climb to the upper floor.")
		}
	case TileStairsDown:
		if s.floor == FloorUpper {
			s.changeFloor(FloorGround)
			return handled("You head down to the ground floor.")
		}
	case TileExit:
		if s.floor == FloorGround {
			return s.interactExit()
		}
	}
	return unhandled()
}

// interactVendor is the hallway encounter: the vendor sings, the
// player is rooted for a few seconds, and for a while afterwards the
// usual alcohol age gate is waived. Adults under senior age also walk
// away with a permanent half-price deal.
func (s *Session) interactVendor() ActionResult {
	now := s.now()
	s.lockedUntil = now.Add(movementLockDuration)
	s.overrideUntil = now.Add(vendorAbilityDuration)
	s.eventMultiplier = eventDiscountMultiplier
	if s.cfg.Age >= adultAge && s.cfg.Age < seniorAge {
		s.permanentDiscount = true
	}
	return handled(npcName + " sings you a song. Everything in the store feels cheaper already.")
}

// pendingConfirm tells an equipment-style confirmation what Interact
// commits to. confirmNone marks a plain info panel that any key closes.
type pendingConfirm int

const (
	confirmNone pendingConfirm = iota
	confirmReturnEquipment
	confirmForfeit
	confirmCheckout
	confirmExit
)

type equipConfirmState struct {
	message    string
	isQuestion bool
	pending    pendingConfirm
}

func (m *equipConfirmState) mode() Mode { return ModeConfirmingEquipment }

func infoPanel(message string) *equipConfirmState {
	return &equipConfirmState{message: message}
}

func questionPanel(message string, pending pendingConfirm) *equipConfirmState {
	return &equipConfirmState{message: message, isQuestion: true, pending: pending}
}

// ConfirmPrompt exposes the active confirmation text for display.
func (s *Session) ConfirmPrompt() (message string, isQuestion bool, ok bool) {
	m, isConfirm := s.modal.(*equipConfirmState)
	if !isConfirm {
		return "", false, false
	}
	return m.message, m.isQuestion, true
}

// interactEquipmentStation handles the basket and cart racks. Swapping
// tiers always goes through empty hands; returning a loaded basket or
// cart costs the items inside.
func (s *Session) interactEquipmentStation(tier Equipment) ActionResult {
	bag := s.bag
	lower := strings.ToLower(tier.String())
	switch {
	case bag.Equipped() && bag.Equipment() == tier:
		if bag.TotalQuantity() > 0 {
			s.modal = questionPanel(fmt.Sprintf(
				"Your %s is not empty. Returning it will forfeit the items inside. Return it anyway?",
				lower), confirmForfeit)
		} else {
			s.modal = questionPanel(fmt.Sprintf("Are you sure you want to return this %s?", lower), confirmReturnEquipment)
		}
	case bag.Equipped():
		s.modal = infoPanel(fmt.Sprintf("Return your %s before taking a %s.",
			strings.ToLower(bag.Equipment().String()), lower))
	case !bag.IsEmpty():
		s.modal = infoPanel("Your hands must be empty before taking equipment.")
	default:
		bag.SetEquipment(tier)
		bag.Equip()
		s.modal = infoPanel(fmt.Sprintf("%s equipped!", tier))
	}
	return handled("")
}

func (s *Session) interactCashier() ActionResult {
	if s.bag.IsEmpty() {
		s.modal = infoPanel("You have no items to check out.")
		return handled("")
	}
	total := s.bag.TotalPrice()
	s.modal = questionPanel(fmt.Sprintf("Proceed with checkout?\nTotal: ₱%.2f", total), confirmCheckout)
	return handled("")
}

func (s *Session) interactExit() ActionResult {
	if s.bag.Equipment() != EquipHands {
		s.modal = infoPanel("You cannot leave the supermarket with store equipment. Return it first.")
		return handled("")
	}
	if !s.bag.IsEmpty() {
		s.modal = infoPanel("You have unpaid items with you. Check out first.")
		return handled("")
	}
	s.modal = questionPanel("You have left the supermarket.\nWould you like to start over?", confirmExit)
	return handled("")
}

func (s *Session) handleEquipConfirm(m *equipConfirmState, a Action) ActionResult {
	if !m.isQuestion {
		switch a {
		case ActionInteract, ActionCancel:
			s.modal = nil
			return handled("")
		}
		return unhandled()
	}

	switch a {
	case ActionCancel:
		if m.pending == confirmExit {
			s.modal = nil
			s.finished = true
			return handled("Thank you for visiting!")
		}
		s.modal = nil
		return handled("")
	case ActionInteract:
		return s.commitConfirm(m.pending)
	}
	return unhandled()
}

func (s *Session) commitConfirm(p pendingConfirm) ActionResult {
	switch p {
	case confirmReturnEquipment:
		s.bag.ReturnEquipment()
		s.modal = nil
		return handled("Equipment returned.")
	case confirmForfeit:
		s.bag.Forfeit()
		s.bag.ReturnEquipment()
		s.modal = infoPanel("Your items have been forfeited.")
		return handled("")
	case confirmCheckout:
		return s.commitCheckout()
	case confirmExit:
		s.Restart()
		return handled("Welcome back, " + s.cfg.PlayerName + "!")
	default:
		s.modal = nil
		return handled("")
	}
}

func (s *Session) commitCheckout() ActionResult {
	if _, err := s.Checkout(); err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			s.modal = infoPanel("Insufficient balance!")
		} else {
			s.modal = infoPanel("You have no items to check out.")
		}
		return handled("")
	}
	s.modal = infoPanel("Checkout successful!\nYour receipt has been saved.")
	return handled("")
}

// browserState is the product menu for one interactable tile. The same
// modal serves buying and returning; returnMode flips between them.
type browserState struct {
	tile       TileKind
	floor      Floor
	row, col   int
	items      []Product
	cursor     int
	returnMode bool
}

func (m *browserState) mode() Mode {
	if m.returnMode {
		return ModePickingReturn
	}
	return ModeBrowsing
}

func newBrowserState(tile TileKind, f Floor, row, col int, items []Product) *browserState {
	return &browserState{tile: tile, floor: f, row: row, col: col, items: items}
}

// returnableLines are the carried lines stocked by this tile, i.e.
// products the player could put back where they came from.
func (m *browserState) returnableLines(bag *CarriedInventory) []*CarriedLine {
	stocked := make(map[string]bool, len(m.items))
	for _, p := range m.items {
		stocked[p.ID] = true
	}
	var out []*CarriedLine
	for _, ln := range bag.Lines() {
		if stocked[ln.ProductID] {
			out = append(out, ln)
		}
	}
	return out
}

// BrowserView exposes the product browser contents for display.
func (s *Session) BrowserView() (items []Product, cursor int, returnMode bool, ok bool) {
	m, isBrowser := s.modal.(*browserState)
	if !isBrowser {
		return nil, 0, false, false
	}
	if m.returnMode {
		for _, ln := range m.returnableLines(s.bag) {
			items = append(items, Product{ID: ln.ProductID, Name: ln.Name, Price: ln.PricePerUnit})
		}
	} else {
		items = m.items
	}
	return items, m.cursor, m.returnMode, true
}

func (s *Session) handleBrowser(m *browserState, a Action) ActionResult {
	listLen := len(m.items)
	if m.returnMode {
		listLen = len(m.returnableLines(s.bag))
	}

	switch a {
	case ActionMoveUp, ActionMoveLeft:
		if m.cursor > 0 {
			m.cursor--
		}
		return handled("")
	case ActionMoveDown, ActionMoveRight:
		if m.cursor < listLen-1 {
			m.cursor++
		}
		return handled("")
	case ActionToggleReturn:
		if !m.returnMode {
			if len(m.returnableLines(s.bag)) == 0 {
				return handled("You are not carrying anything from this spot.")
			}
			m.returnMode = true
		} else {
			m.returnMode = false
		}
		m.cursor = 0
		return handled("")
	case ActionCancel:
		s.modal = nil
		return handled("")
	case ActionInteract:
		if m.returnMode {
			return s.openReturnQuantity(m)
		}
		return s.openBuyQuantity(m)
	}
	return unhandled()
}

func (s *Session) openBuyQuantity(m *browserState) ActionResult {
	if m.cursor >= len(m.items) {
		return handled("")
	}
	p := m.items[m.cursor]

	if !CanPurchase(p.ID, s.cfg.Age, s.VendorOverrideActive()) {
		return handled("You are not old enough to buy " + p.Name + ".")
	}
	maxStore := s.ledger.Available(p.ID)
	if maxStore == 0 {
		return handled(p.Name + " is out of stock.")
	}
	maxCarry := s.bag.AvailableCapacity()
	if maxCarry == 0 {
		// A full bag cannot be fixed from the browser; drop to Free so
		// the player can go return or check out.
		s.modal = nil
		return handled("You cannot carry any more items.")
	}

	price, _ := s.EffectivePriceFor(p.ID)
	s.modal = &quantityState{
		productID:     p.ID,
		name:          p.Name,
		unitPrice:     price,
		originalPrice: p.Price,
		maxStore:      maxStore,
		maxCarry:      maxCarry,
		qty:           1,
		browser:       m,
	}
	return handled("")
}

func (s *Session) openReturnQuantity(m *browserState) ActionResult {
	lines := m.returnableLines(s.bag)
	if m.cursor >= len(lines) {
		return handled("")
	}
	ln := lines[m.cursor]
	s.modal = &quantityState{
		productID:     ln.ProductID,
		name:          ln.Name,
		unitPrice:     ln.PricePerUnit,
		originalPrice: ln.OriginalPrice,
		maxStore:      ln.Quantity(),
		maxCarry:      ln.Quantity(),
		qty:           1,
		forReturn:     true,
		browser:       m,
	}
	return handled("")
}

// EffectivePriceFor applies the session's active discounts to a
// product's shelf price.
func (s *Session) EffectivePriceFor(productID string) (float64, bool) {
	return EffectivePrice(productID, s.ledger.BasePrice(productID), s.cfg.Age,
		s.eventMultiplier, s.permanentDiscount, s.VendorOverrideActive())
}

// quantityState picks how many units to buy or return. Arrows step the
// count, Interact commits, Cancel falls back to the browser.
type quantityState struct {
	productID     string
	name          string
	unitPrice     float64
	originalPrice float64
	maxStore      int
	maxCarry      int
	qty           int
	forReturn     bool
	browser       *browserState
	errText       string
}

func (m *quantityState) mode() Mode { return ModePickingQuantity }

func (m *quantityState) max() int {
	if m.maxCarry < m.maxStore {
		return m.maxCarry
	}
	return m.maxStore
}

// QuantityView exposes the quantity picker contents for display.
func (s *Session) QuantityView() (name string, qty, max int, unitPrice float64, forReturn bool, errText string, ok bool) {
	m, isPicker := s.modal.(*quantityState)
	if !isPicker {
		return "", 0, 0, 0, false, "", false
	}
	return m.name, m.qty, m.max(), m.unitPrice, m.forReturn, m.errText, true
}

func (s *Session) handleQuantity(m *quantityState, a Action) ActionResult {
	switch a {
	case ActionMoveUp, ActionMoveRight:
		if m.qty < m.max() {
			m.qty++
		}
		return handled("")
	case ActionMoveDown, ActionMoveLeft:
		if m.qty > 1 {
			m.qty--
		}
		return handled("")
	case ActionCancel:
		s.modal = m.browser
		return handled("")
	case ActionInteract:
		if m.forReturn {
			return s.commitReturn(m)
		}
		return s.commitPurchase(m)
	}
	return unhandled()
}

// commitPurchase re-checks every gate at commit time; the browse-time
// check only filters the menu. A capacity failure keeps the picker
// open with the reason inline so the player can lower the count.
func (s *Session) commitPurchase(m *quantityState) ActionResult {
	if !CanPurchase(m.productID, s.cfg.Age, s.VendorOverrideActive()) {
		s.modal = m.browser
		return handled("You are not old enough to buy " + m.name + ".")
	}

	price, _ := s.EffectivePriceFor(m.productID)
	err := s.bag.AddProduct(m.productID, m.name, m.qty, price, m.originalPrice)
	switch {
	case err == nil:
		s.modal = nil
		return handled(fmt.Sprintf("Added %d x %s to your %s.", m.qty, m.name,
			strings.ToLower(s.bag.Equipment().String())))
	case errors.Is(err, ErrCapacityExceeded):
		m.errText = fmt.Sprintf("Not enough room: only %d slot(s) left.", s.bag.AvailableCapacity())
		m.maxCarry = s.bag.AvailableCapacity()
		if m.qty > m.max() && m.max() > 0 {
			m.qty = m.max()
		}
		return handled("")
	case errors.Is(err, ErrOutOfStock):
		s.modal = m.browser
		return handled(m.name + " is out of stock.")
	default:
		s.modal = m.browser
		return handled(err.Error())
	}
}

// commitReturn restocks by product ID. Display names are not unique
// across the catalog, so they must never select the line.
func (s *Session) commitReturn(m *quantityState) ActionResult {
	if err := s.bag.RemoveProduct(m.productID, m.qty); err != nil {
		s.modal = m.browser
		return handled(err.Error())
	}
	s.modal = nil
	return handled(fmt.Sprintf("Returned %d x %s to the store.", m.qty, m.name))
}
