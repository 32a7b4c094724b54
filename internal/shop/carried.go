package shop

import (
	"fmt"
	"strings"
)

// Equipment is the carrying tier a shopper is using. HANDS needs no
// equip step; basket and cart are picked up at their station tiles.
type Equipment int

const (
	EquipHands Equipment = iota
	EquipBasket
	EquipCart
)

func (e Equipment) String() string {
	switch e {
	case EquipBasket:
		return "Basket"
	case EquipCart:
		return "Cart"
	default:
		return "Hands"
	}
}

// Capacity is the maximum number of carried units for the tier.
func (e Equipment) Capacity() int {
	switch e {
	case EquipBasket:
		return 15
	case EquipCart:
		return 30
	default:
		return 2
	}
}

// CarriedLine is one product in the carry bag. Quantity is the length
// of Serials; a line with no serials is removed from the bag.
type CarriedLine struct {
	ProductID     string
	Name          string
	PricePerUnit  float64 // locked in at acquisition, post-discount
	OriginalPrice float64 // catalog price, for receipt discounts
	Serials       []string
}

// Quantity returns the number of units on this line.
func (ln *CarriedLine) Quantity() int { return len(ln.Serials) }

// TotalPrice returns quantity times the locked-in unit price.
func (ln *CarriedLine) TotalPrice() float64 {
	return float64(len(ln.Serials)) * ln.PricePerUnit
}

// CarriedInventory is the capacity-bounded bag of serialized units a
// shopper holds. All stock moves through the ledger so take/give pairs
// stay balanced across a purchase+return cycle.
type CarriedInventory struct {
	ledger    *StockLedger
	equipment Equipment
	equipped  bool
	lines     map[string]*CarriedLine
	order     []string
}

// NewCarriedInventory returns an empty bag bound to HANDS.
func NewCarriedInventory(ledger *StockLedger) *CarriedInventory {
	return &CarriedInventory{
		ledger: ledger,
		lines:  make(map[string]*CarriedLine),
	}
}

// AddProduct reserves qty units from the ledger and appends their
// serials to the product's line, creating the line if needed. The
// mutation is all-or-nothing: a capacity or stock failure changes
// nothing.
func (c *CarriedInventory) AddProduct(productID, name string, qty int, unitPrice, originalPrice float64) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if c.TotalQuantity()+qty > c.equipment.Capacity() {
		return ErrCapacityExceeded
	}

	serials := c.ledger.Take(productID, qty)
	if len(serials) == 0 {
		return ErrOutOfStock
	}

	if ln, ok := c.lines[productID]; ok {
		ln.Serials = append(ln.Serials, serials...)
		return nil
	}
	c.lines[productID] = &CarriedLine{
		ProductID:     productID,
		Name:          name,
		PricePerUnit:  unitPrice,
		OriginalPrice: originalPrice,
		Serials:       serials,
	}
	c.order = append(c.order, productID)
	return nil
}

// RemoveProduct puts qty units back on the shelf, dropping serials from
// the tail of the line (identity is not otherwise checked). The exact
// inverse of AddProduct with respect to stock counts.
func (c *CarriedInventory) RemoveProduct(productID string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	ln, ok := c.lines[productID]
	if !ok || ln.Quantity() < qty {
		return ErrEmptyReturn
	}

	ln.Serials = ln.Serials[:len(ln.Serials)-qty]
	if ln.Quantity() == 0 {
		c.deleteLine(productID)
	}
	c.ledger.Give(productID, qty)
	return nil
}

func (c *CarriedInventory) deleteLine(productID string) {
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// SetEquipment switches carry tiers. Callers must only switch with an
// empty bag; the interaction layer enforces that precondition.
func (c *CarriedInventory) SetEquipment(e Equipment) {
	c.equipment = e
}

// Equip marks the current basket or cart as picked up.
func (c *CarriedInventory) Equip() {
	if c.equipment != EquipHands {
		c.equipped = true
	}
}

// ReturnEquipment puts the basket or cart back and resets to HANDS.
// It does not touch the bag contents; forfeiture is handled separately.
func (c *CarriedInventory) ReturnEquipment() {
	if c.equipped {
		c.equipped = false
		c.equipment = EquipHands
	}
}

// Forfeit discards every carried unit without restoring stock. This is
// the one-way sink used when equipment is returned with items inside.
func (c *CarriedInventory) Forfeit() {
	c.lines = make(map[string]*CarriedLine)
	c.order = nil
}

// Checkout renders a receipt for the current contents, then clears the
// bag without restoring stock and resets equipment to HANDS. Checked-out
// goods leave the store for good; the receipt is the only record.
func (c *CarriedInventory) Checkout(receiptNo string) (*Receipt, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCheckout
	}
	r := buildReceipt(receiptNo, c.Lines())
	c.lines = make(map[string]*CarriedLine)
	c.order = nil
	c.equipment = EquipHands
	c.equipped = false
	return r, nil
}

// Equipment returns the active carry tier.
func (c *CarriedInventory) Equipment() Equipment { return c.equipment }

// Equipped reports whether a basket or cart is currently held.
func (c *CarriedInventory) Equipped() bool { return c.equipped }

// IsEmpty reports whether the bag holds no units.
func (c *CarriedInventory) IsEmpty() bool { return len(c.lines) == 0 }

// IsFull reports whether the bag is at capacity.
func (c *CarriedInventory) IsFull() bool {
	return c.TotalQuantity() >= c.equipment.Capacity()
}

// TotalQuantity returns the number of carried units across all lines.
func (c *CarriedInventory) TotalQuantity() int {
	total := 0
	for _, ln := range c.lines {
		total += ln.Quantity()
	}
	return total
}

// UniqueProductCount returns the number of distinct SKUs carried.
func (c *CarriedInventory) UniqueProductCount() int { return len(c.lines) }

// TotalPrice returns the sum of quantity times locked-in unit price.
func (c *CarriedInventory) TotalPrice() float64 {
	total := 0.0
	for _, ln := range c.lines {
		total += ln.TotalPrice()
	}
	return total
}

// AvailableCapacity returns how many more units fit in the bag.
func (c *CarriedInventory) AvailableCapacity() int {
	return c.equipment.Capacity() - c.TotalQuantity()
}

// Quantity returns the carried count for one SKU.
func (c *CarriedInventory) Quantity(productID string) int {
	if ln, ok := c.lines[productID]; ok {
		return ln.Quantity()
	}
	return 0
}

// Lines returns the carried lines in acquisition order.
func (c *CarriedInventory) Lines() []*CarriedLine {
	out := make([]*CarriedLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.lines[id])
	}
	return out
}

// DisplayString renders the bag summary shown by the inventory view.
func (c *CarriedInventory) DisplayString() string {
	var b strings.Builder
	b.WriteString("=== INVENTORY ===\n")
	fmt.Fprintf(&b, "Equipment: %s\n", c.equipment)
	fmt.Fprintf(&b, "Total Items: %d/%d\n", c.TotalQuantity(), c.equipment.Capacity())
	fmt.Fprintf(&b, "Unique Products: %d\n", c.UniqueProductCount())
	fmt.Fprintf(&b, "Total Price: ₱%.2f\n", c.TotalPrice())
	b.WriteString("\n--- Items ---\n")
	if c.IsEmpty() {
		b.WriteString("(Empty)\n")
		return b.String()
	}
	for _, ln := range c.Lines() {
		fmt.Fprintf(&b, "%s (%s) x%d - ₱%.2f (Total: ₱%.2f)\n",
			ln.Name, ln.ProductID, ln.Quantity(), ln.PricePerUnit, ln.TotalPrice())
	}
	return b.String()
}
