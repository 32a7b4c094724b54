package shop

import (
	"errors"
	"testing"
)

func newTestBag(t *testing.T) (*CarriedInventory, *StockLedger) {
	t.Helper()

	ledger := NewStockLedger()
	bag := NewCarriedInventory(ledger)
	return bag, ledger
}

func addUnits(t *testing.T, bag *CarriedInventory, productID string, qty int) {
	t.Helper()

	if err := bag.AddProduct(productID, bag.ledger.Name(productID), qty, bag.ledger.BasePrice(productID), bag.ledger.BasePrice(productID)); err != nil {
		t.Fatalf("add %d x %s: %v", qty, productID, err)
	}
}

func TestCapacityRejectionLeavesEverythingUntouched(t *testing.T) {
	bag, ledger := newTestBag(t)
	bag.SetEquipment(EquipCart)
	bag.Equip()

	addUnits(t, bag, "SNK00001", 28)
	stockBefore := ledger.Available("SNK00002")

	err := bag.AddProduct("SNK00002", "Potato Chips", 3, 20, 20)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if got := bag.TotalQuantity(); got != 28 {
		t.Fatalf("failed add must not change the bag, got %d units", got)
	}
	if got := ledger.Available("SNK00002"); got != stockBefore {
		t.Fatalf("failed add must not touch stock, got %d", got)
	}
}

func TestCapacityInvariantAcrossTiers(t *testing.T) {
	for _, tier := range []Equipment{EquipHands, EquipBasket, EquipCart} {
		bag, _ := newTestBag(t)
		bag.SetEquipment(tier)
		bag.Equip()

		limit := tier.Capacity()
		addUnits(t, bag, "CER00001", limit)

		if err := bag.AddProduct("CER00002", "x", 1, 1, 1); !errors.Is(err, ErrCapacityExceeded) {
			t.Fatalf("%s: expected ErrCapacityExceeded at %d units, got %v", tier, limit, err)
		}
		if bag.TotalQuantity() > limit {
			t.Fatalf("%s: capacity invariant violated: %d > %d", tier, bag.TotalQuantity(), limit)
		}
	}
}

func TestRemoveProductRestoresStock(t *testing.T) {
	bag, ledger := newTestBag(t)
	bag.SetEquipment(EquipBasket)
	bag.Equip()

	before := ledger.Available("JUC00001")
	addUnits(t, bag, "JUC00001", 4)

	if err := bag.RemoveProduct("JUC00001", 3); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := bag.Quantity("JUC00001"); got != 1 {
		t.Fatalf("expected 1 unit left, got %d", got)
	}
	if got := ledger.Available("JUC00001"); got != before-1 {
		t.Fatalf("expected stock %d after partial return, got %d", before-1, got)
	}

	if err := bag.RemoveProduct("JUC00001", 1); err != nil {
		t.Fatalf("remove last: %v", err)
	}
	if got := ledger.Available("JUC00001"); got != before {
		t.Fatalf("take/give must balance, want %d got %d", before, got)
	}
	if !bag.IsEmpty() {
		t.Fatalf("expected empty bag after returning everything")
	}
}

func TestRemoveMoreThanCarriedFails(t *testing.T) {
	bag, _ := newTestBag(t)
	bag.SetEquipment(EquipBasket)
	bag.Equip()
	addUnits(t, bag, "JUC00001", 2)

	if err := bag.RemoveProduct("JUC00001", 3); !errors.Is(err, ErrEmptyReturn) {
		t.Fatalf("expected ErrEmptyReturn, got %v", err)
	}
	if err := bag.RemoveProduct("SNK00001", 1); !errors.Is(err, ErrEmptyReturn) {
		t.Fatalf("expected ErrEmptyReturn for product not carried, got %v", err)
	}
	if err := bag.RemoveProduct("JUC00001", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

// CLE00008 and HOM00001 are both named "Broom"; removal keys on the
// product ID so same-name lines never shadow each other.
func TestRemoveDistinguishesDuplicateNames(t *testing.T) {
	bag, ledger := newTestBag(t)
	bag.SetEquipment(EquipBasket)
	bag.Equip()
	addUnits(t, bag, "CLE00008", 1)
	addUnits(t, bag, "HOM00001", 1)

	if err := bag.RemoveProduct("HOM00001", 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := bag.Quantity("HOM00001"); got != 0 {
		t.Fatalf("HOM00001 should be gone, got %d", got)
	}
	if got := bag.Quantity("CLE00008"); got != 1 {
		t.Fatalf("CLE00008 must be untouched, got %d", got)
	}
	if got := ledger.Available("HOM00001"); got != initialStock {
		t.Fatalf("HOM00001 stock should be restored, got %d", got)
	}
	if got := ledger.Available("CLE00008"); got != initialStock-1 {
		t.Fatalf("CLE00008 stock must stay taken, got %d", got)
	}
}

func TestCheckoutClearsWithoutRestoringStock(t *testing.T) {
	bag, ledger := newTestBag(t)
	bag.SetEquipment(EquipBasket)
	bag.Equip()
	addUnits(t, bag, "CAN00001", 3)
	stockAfterTake := ledger.Available("CAN00001")

	receipt, err := bag.Checkout("R-1")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if receipt == nil || len(receipt.Lines) != 1 {
		t.Fatalf("expected a one-line receipt, got %+v", receipt)
	}
	if !bag.IsEmpty() {
		t.Fatalf("checkout must empty the bag")
	}
	if bag.Equipment() != EquipHands {
		t.Fatalf("checkout must reset equipment to hands, got %s", bag.Equipment())
	}
	if got := ledger.Available("CAN00001"); got != stockAfterTake {
		t.Fatalf("checked-out goods must not return to stock, got %d", got)
	}
}

func TestCheckoutEmptyBag(t *testing.T) {
	bag, _ := newTestBag(t)
	if _, err := bag.Checkout("R-1"); !errors.Is(err, ErrEmptyCheckout) {
		t.Fatalf("expected ErrEmptyCheckout, got %v", err)
	}
}

func TestForfeitIsASink(t *testing.T) {
	bag, ledger := newTestBag(t)
	bag.SetEquipment(EquipCart)
	bag.Equip()
	addUnits(t, bag, "PET00001", 5)
	stockAfterTake := ledger.Available("PET00001")

	bag.Forfeit()
	bag.ReturnEquipment()

	if !bag.IsEmpty() {
		t.Fatalf("forfeit must empty the bag")
	}
	if got := ledger.Available("PET00001"); got != stockAfterTake {
		t.Fatalf("forfeited goods must not return to stock, got %d", got)
	}
	if bag.Equipment() != EquipHands || bag.Equipped() {
		t.Fatalf("equipment should be back to hands")
	}
}

func TestTotalsAndDisplay(t *testing.T) {
	bag, _ := newTestBag(t)
	bag.SetEquipment(EquipBasket)
	bag.Equip()
	if err := bag.AddProduct("NDL00001", "Instant Noodles", 2, 8.50, 8.50); err != nil {
		t.Fatalf("add: %v", err)
	}

	if got := bag.TotalPrice(); got != 17.00 {
		t.Fatalf("expected total 17.00, got %v", got)
	}
	if got := bag.AvailableCapacity(); got != 13 {
		t.Fatalf("expected 13 free slots, got %d", got)
	}
	if got := bag.UniqueProductCount(); got != 1 {
		t.Fatalf("expected one line, got %d", got)
	}
}
