package shop

import (
	"fmt"
	"strings"
)

const receiptRule = "════════════════════════════════════"

// Receipt is the one artifact that survives checkout. Field completeness
// and the discount/total arithmetic are load-bearing; the exact string
// layout is cosmetic.
type Receipt struct {
	Number        string
	Lines         []ReceiptLine
	OriginalTotal float64
	TotalDiscount float64
	FinalTotal    float64
}

// ReceiptLine is one purchased product with every unit serial.
type ReceiptLine struct {
	Name          string
	Quantity      int
	Serials       []string
	PricePerUnit  float64
	OriginalPrice float64
	Discount      float64 // (original - price) * qty, zero when no discount
	LineTotal     float64
}

func buildReceipt(number string, lines []*CarriedLine) *Receipt {
	r := &Receipt{Number: number}
	for _, ln := range lines {
		qty := ln.Quantity()
		lineTotal := ln.PricePerUnit * float64(qty)
		originalTotal := ln.OriginalPrice * float64(qty)
		discount := originalTotal - lineTotal
		if discount < 0 {
			discount = 0
		}
		serials := make([]string, qty)
		copy(serials, ln.Serials)
		r.Lines = append(r.Lines, ReceiptLine{
			Name:          ln.Name,
			Quantity:      qty,
			Serials:       serials,
			PricePerUnit:  ln.PricePerUnit,
			OriginalPrice: ln.OriginalPrice,
			Discount:      discount,
			LineTotal:     lineTotal,
		})
		r.OriginalTotal += originalTotal
		r.FinalTotal += lineTotal
	}
	r.TotalDiscount = r.OriginalTotal - r.FinalTotal
	if r.TotalDiscount < 0 {
		r.TotalDiscount = 0
	}
	return r
}

// Text renders the plain-text receipt block.
func (r *Receipt) Text() string {
	var b strings.Builder
	b.WriteString("ITEMS PURCHASED:\n")
	b.WriteString(receiptRule + "\n")
	fmt.Fprintf(&b, "Receipt No: %s\n\n", r.Number)

	for _, ln := range r.Lines {
		fmt.Fprintf(&b, "%s\n", ln.Name)
		fmt.Fprintf(&b, "Quantity: %d\n", ln.Quantity)
		for _, serial := range ln.Serials {
			fmt.Fprintf(&b, "%s\n", serial)
		}
		if ln.Discount > 0 {
			fmt.Fprintf(&b, "Discount: -₱%.2f\n", ln.Discount)
			fmt.Fprintf(&b, "Final Price: ₱%.2f × %d = ₱%.2f\n\n", ln.PricePerUnit, ln.Quantity, ln.LineTotal)
		} else {
			fmt.Fprintf(&b, "Price: ₱%.2f × %d = ₱%.2f\n\n", ln.PricePerUnit, ln.Quantity, ln.LineTotal)
		}
	}

	b.WriteString(receiptRule + "\n")
	fmt.Fprintf(&b, "Original Total: ₱%.2f\n", r.OriginalTotal)
	if r.TotalDiscount > 0 {
		fmt.Fprintf(&b, "Total Discount: -₱%.2f\n", r.TotalDiscount)
	}
	fmt.Fprintf(&b, "FINAL TOTAL: ₱%.2f\n", r.FinalTotal)
	b.WriteString(receiptRule + "\n")
	b.WriteString("Thank you for shopping!\n")
	return b.String()
}
