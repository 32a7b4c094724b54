package shop

// Pricing rules are pure functions of the shopper's age and the active
// discount state. Category prefixes drive everything: restriction,
// senior eligibility, and the UI's grouping.

const adultAge = 18
const seniorAge = 60

// seniorFoodCategories get 20% off for shoppers aged 60 and up.
var seniorFoodCategories = map[string]bool{
	"CER": true, "NDL": true, "SNK": true, "CAN": true, "FRZ": true,
	"BRD": true, "FRU": true, "VEG": true, "EGG": true, "CHK": true,
	"BEF": true, "SEA": true, "CHS": true, "CON": true,
}

// seniorBeverageCategories get 10% off for shoppers aged 60 and up.
var seniorBeverageCategories = map[string]bool{
	"SFT": true, "JUC": true, "MLK": true,
}

// CanPurchase applies the age gate. Under-18 shoppers cannot buy alcohol
// or cleaning agents; the vendor override opens the alcohol channel only.
// Pure and side-effect free.
func CanPurchase(productID string, age int, vendorOverride bool) bool {
	if age >= adultAge {
		return true
	}
	cat := Category(productID)
	if vendorOverride {
		return cat != "CLE"
	}
	return cat != "ALC" && cat != "CLE"
}

// EffectivePrice computes the post-discount unit price. Returns false
// when the age gate denies the purchase. Multipliers compose in fixed
// order: event discount, then the permanent half-price flag, then the
// senior discount.
func EffectivePrice(productID string, basePrice float64, age int, eventMultiplier float64, permanentDiscount, vendorOverride bool) (float64, bool) {
	if !CanPurchase(productID, age, vendorOverride) {
		return 0, false
	}

	price := basePrice * eventMultiplier
	if permanentDiscount {
		price *= 0.5
	}
	if m, ok := seniorMultiplier(productID, age); ok {
		price *= m
	}
	return price, true
}

func seniorMultiplier(productID string, age int) (float64, bool) {
	if age < seniorAge {
		return 0, false
	}
	cat := Category(productID)
	if seniorBeverageCategories[cat] {
		return 0.9, true
	}
	if seniorFoodCategories[cat] {
		return 0.8, true
	}
	// Alcohol and non-consumables never qualify.
	return 0, false
}
