package shop

// Purchase buys qty units of a product at the current effective price.
// Every gate is checked before anything mutates, so a failed purchase
// leaves stock, bag and wallet untouched. The unit price is locked in
// at purchase time; later discount changes do not reprice carried
// goods.
func (s *Session) Purchase(productID string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if !CanPurchase(productID, s.cfg.Age, s.VendorOverrideActive()) {
		return ErrAgeRestricted
	}
	price, _ := s.EffectivePriceFor(productID)
	return s.bag.AddProduct(productID, s.ledger.Name(productID), qty, price, s.ledger.BasePrice(productID))
}

// Checkout settles the whole bag: affordability first, then debit,
// receipt and bag reset as one step. On any error nothing changes.
func (s *Session) Checkout() (*Receipt, error) {
	if s.bag.IsEmpty() {
		return nil, ErrEmptyCheckout
	}
	total := s.bag.TotalPrice()
	if !s.wallet.CanAfford(total) {
		return nil, ErrInsufficientFunds
	}
	receipt, err := s.bag.Checkout(s.newReceiptNumber())
	if err != nil {
		return nil, err
	}
	s.wallet.Debit(total)
	s.lastReceipt = receipt
	return receipt, nil
}

// Return puts qty units back on the shelf. Stock is restored; money is
// not refunded.
func (s *Session) Return(productID string, qty int) error {
	return s.bag.RemoveProduct(productID, qty)
}

// ForfeitCarried abandons everything in the bag without restoring
// stock, the penalty for returning loaded equipment.
func (s *Session) ForfeitCarried() {
	s.bag.Forfeit()
}
