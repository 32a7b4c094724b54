package shop

import "fmt"

// StockLedger owns the authoritative stock count and serial issuance
// for every SKU. It is the only component allowed to create or retire
// physical units; everything else moves through Take/Give.
type StockLedger struct {
	counts  map[string]int
	serials map[string]int
	names   map[string]string
	prices  map[string]float64
	order   []string
}

// NewStockLedger seeds a ledger with the full store catalog.
func NewStockLedger() *StockLedger {
	l := &StockLedger{
		counts:  make(map[string]int, len(catalogSeed)),
		serials: make(map[string]int, len(catalogSeed)),
		names:   make(map[string]string, len(catalogSeed)),
		prices:  make(map[string]float64, len(catalogSeed)),
		order:   make([]string, 0, len(catalogSeed)),
	}
	for _, p := range catalogSeed {
		l.counts[p.ID] = initialStock
		l.serials[p.ID] = 1
		l.names[p.ID] = p.Name
		l.prices[p.ID] = p.Price
		l.order = append(l.order, p.ID)
	}
	return l
}

func (l *StockLedger) mustKnow(productID string) {
	if _, ok := l.counts[productID]; !ok {
		panic(fmt.Sprintf("shop: unknown product %q", productID))
	}
}

// IsAvailable reports whether at least one unit of the SKU remains.
func (l *StockLedger) IsAvailable(productID string) bool {
	l.mustKnow(productID)
	return l.counts[productID] > 0
}

// Available returns the current stock count for the SKU.
func (l *StockLedger) Available(productID string) int {
	l.mustKnow(productID)
	return l.counts[productID]
}

// Name returns the catalog display name for the SKU.
func (l *StockLedger) Name(productID string) string {
	l.mustKnow(productID)
	return l.names[productID]
}

// BasePrice returns the immutable catalog price for the SKU.
func (l *StockLedger) BasePrice(productID string) float64 {
	l.mustKnow(productID)
	return l.prices[productID]
}

// ProductIDs returns every catalog ID in seed order.
func (l *StockLedger) ProductIDs() []string {
	ids := make([]string, len(l.order))
	copy(ids, l.order)
	return ids
}

// Take removes qty units from stock and mints one serial per unit, in
// ascending order. Returns nil if qty is not positive or stock is short;
// there are no partial takes and a nil result leaves the ledger untouched.
func (l *StockLedger) Take(productID string, qty int) []string {
	l.mustKnow(productID)
	if qty <= 0 || l.counts[productID] < qty {
		return nil
	}

	prefix := productID[:3]
	next := l.serials[productID]
	serials := make([]string, 0, qty)
	for i := 0; i < qty; i++ {
		serials = append(serials, fmt.Sprintf("%s%05d", prefix, next+i))
	}

	l.serials[productID] = next + qty
	l.counts[productID] -= qty
	return serials
}

// Give restores qty units of generic stock. Serial identity is not
// recovered: returned units re-enter the count anonymously and future
// takes mint fresh serials.
func (l *StockLedger) Give(productID string, qty int) {
	l.mustKnow(productID)
	if qty <= 0 {
		return
	}
	l.counts[productID] += qty
}
