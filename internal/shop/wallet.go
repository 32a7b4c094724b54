package shop

// Wallet holds the shopper's spendable balance and the separate
// ATM-only bank pool. No overdraft: debits are pre-checked by callers.
type Wallet struct {
	Balance     float64
	BankBalance float64
}

// CanAfford reports whether the spendable balance covers the amount.
func (w *Wallet) CanAfford(amount float64) bool {
	return w.Balance >= amount
}

// Debit removes amount from the spendable balance.
func (w *Wallet) Debit(amount float64) {
	w.Balance -= amount
}

// Withdraw moves amount from the bank pool to the spendable balance.
// Rejects non-positive amounts and amounts beyond the bank balance.
func (w *Wallet) Withdraw(amount float64) error {
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	if amount > w.BankBalance {
		return ErrInsufficientFunds
	}
	w.BankBalance -= amount
	w.Balance += amount
	return nil
}
