package shop

import (
	"fmt"

	"github.com/brightlane-games/supermart/internal/search"
)

// ProductType is one searchable category at the kiosk.
type ProductType struct {
	Name       string
	Prefix     string
	Location   string
	Coordinate string
}

// productTypes lists every category the kiosk offers, in menu order.
var productTypes = []ProductType{
	{"Milk", "MLK", "Fridge Unit 1", "Floor 1, Row 1, Col 3-6"},
	{"Frozen Food", "FRZ", "Fridge Unit 2", "Floor 1, Row 1, Col 9-12"},
	{"Cheese", "CHS", "Fridge Unit 3", "Floor 1, Row 1, Col 15-18"},
	{"Chicken", "CHK", "Chilled Counter", "Floor 0, Row 1, Col 1-6"},
	{"Beef", "BEF", "Chilled Counter", "Floor 0, Row 1, Col 8-13"},
	{"Seafood", "SEA", "Chilled Counter", "Floor 0, Row 1, Col 15-20"},
	{"Bread", "BRD", "Table Dining Areas", "Floor 1, Row 20, Col 3-7 & 14-18"},
	{"Cereal", "CER", "Shelf Aisle 3", "Floor 0, Row 4-7, Col 14-15"},
	{"Noodles", "NDL", "Shelf Aisle 3", "Floor 0, Row 10-13, Col 14-15"},
	{"Snacks", "SNK", "Shelf Aisle 4", "Floor 0, Row 10-13, Col 18-19"},
	{"Canned Goods", "CAN", "Shelf Aisle 4", "Floor 0, Row 4-7, Col 18-19"},
	{"Condiments", "CON", "Shelf Aisle 1", "Floor 0, Row 10-13, Col 2-3"},
	{"Soft Drinks", "SFT", "Shelf Aisle 2", "Floor 0, Row 4-7, Col 6-7"},
	{"Juice", "JUC", "Shelf Aisle 2", "Floor 0, Row 10-13, Col 6-7"},
	{"Alcohol", "ALC", "Shelf Aisle 1", "Floor 0, Row 4-7, Col 2-3"},
	{"Cleaning Agents", "CLE", "Shelf Aisle 3", "Floor 1, Row 4-7, Col 14-15"},
	{"Home Essentials", "HOM", "Shelf Aisle 4", "Floor 1, Row 4-7, Col 18-19"},
	{"Hair Care", "HAR", "Shelf Aisle 3", "Floor 1, Row 10-13, Col 14-15"},
	{"Body Care", "BOD", "Shelf Aisle 4", "Floor 1, Row 10-13, Col 18-19"},
	{"Dental Care", "DEN", "Shelf Aisle 2", "Floor 1, Row 10-13, Col 6-7"},
	{"Clothes", "CLO", "Shelf Aisle 2", "Floor 1, Row 4-7, Col 6-7"},
	{"Stationery", "STN", "Shelf Aisle 1", "Floor 1, Row 10-13, Col 2-3"},
	{"Pet Food", "PET", "Shelf Aisle 1", "Floor 1, Row 4-7, Col 2-3"},
	{"Fruit", "FRU", "Table", "Floor 0, Row 4-7 & 10-13, Col 10-11"},
	{"Vegetable", "VEG", "Table Aisle 1", "Floor 1, Row 4-7 & 10-13, Col 10-11"},
	{"Eggs", "EGG", "Table Dining Area 2", "Floor 1, Row 20, Col 9-12"},
}

// ProductTypes returns the kiosk categories in menu order.
func ProductTypes() []ProductType {
	out := make([]ProductType, len(productTypes))
	copy(out, productTypes)
	return out
}

func productTypeByName(name string) (ProductType, bool) {
	for _, pt := range productTypes {
		if pt.Name == name {
			return pt, true
		}
	}
	return ProductType{}, false
}

// categoryProducts lists every catalog product with the type's prefix.
func categoryProducts(pt ProductType) []Product {
	var out []Product
	for _, p := range catalogSeed {
		if Category(p.ID) == pt.Prefix {
			out = append(out, p)
		}
	}
	return out
}

// waypointsFor scans both store floors for tiles that stock the
// category and returns them all.
func (s *Session) waypointsFor(pt ProductType) []Waypoint {
	var out []Waypoint
	for _, f := range []Floor{FloorGround, FloorUpper} {
		for row := 0; row < GridSize; row++ {
			for col := 0; col < GridSize; col++ {
				kind := s.grid.TileAt(f, row, col)
				if !interactable(kind) {
					continue
				}
				for _, p := range ItemsForTile(kind, f, row, col) {
					if Category(p.ID) == pt.Prefix {
						out = append(out, Waypoint{Floor: f, Row: row, Col: col})
						break
					}
				}
			}
		}
	}
	return out
}

// KioskStage is the screen a kiosk session is on.
type KioskStage int

const (
	KioskSelectCategory KioskStage = iota
	KioskSelectItem
	KioskShowResult
)

// kioskState drives the search kiosk. Closing the kiosk keeps its
// waypoints active so the player can walk to the result.
type kioskState struct {
	stage          KioskStage
	categoryCursor int
	itemCursor     int
	items          []Product
}

func (m *kioskState) mode() Mode { return ModeSearching }

func newKioskState() *kioskState {
	return &kioskState{}
}

// KioskView exposes the kiosk screen for display. items and result are
// only meaningful past the category screen.
func (s *Session) KioskView() (stage KioskStage, categoryCursor, itemCursor int, items []Product, result string, ok bool) {
	m, isKiosk := s.modal.(*kioskState)
	if !isKiosk {
		return 0, 0, 0, nil, "", false
	}
	if m.stage == KioskShowResult {
		pt := productTypes[m.categoryCursor]
		result = fmt.Sprintf("%s\nLocation: %s\n%s", pt.Name, pt.Location, pt.Coordinate)
	}
	return m.stage, m.categoryCursor, m.itemCursor, m.items, result, true
}

func (s *Session) handleKiosk(m *kioskState, a Action) ActionResult {
	switch m.stage {
	case KioskSelectCategory:
		switch a {
		case ActionMoveUp:
			if m.categoryCursor > 0 {
				m.categoryCursor--
			}
			return handled("")
		case ActionMoveDown:
			if m.categoryCursor < len(productTypes)-1 {
				m.categoryCursor++
			}
			return handled("")
		case ActionInteract:
			m.items = categoryProducts(productTypes[m.categoryCursor])
			m.itemCursor = 0
			m.stage = KioskSelectItem
			return handled("")
		case ActionCancel:
			s.modal = nil
			return handled("")
		}
	case KioskSelectItem:
		switch a {
		case ActionMoveUp:
			if m.itemCursor > 0 {
				m.itemCursor--
			}
			return handled("")
		case ActionMoveDown:
			if m.itemCursor < len(m.items)-1 {
				m.itemCursor++
			}
			return handled("")
		case ActionInteract:
			pt := productTypes[m.categoryCursor]
			s.waypoints = s.waypointsFor(pt)
			s.showWaypoints = len(s.waypoints) > 0
			m.stage = KioskShowResult
			return handled("")
		case ActionCancel:
			m.stage = KioskSelectCategory
			return handled("")
		}
	case KioskShowResult:
		switch a {
		case ActionInteract:
			// Search another: back to the category list, waypoints kept.
			m.stage = KioskSelectCategory
			return handled("")
		case ActionToggleWaypoints:
			if len(s.waypoints) == 0 {
				return handled("")
			}
			s.showWaypoints = !s.showWaypoints
			return handled("")
		case ActionCancel:
			s.modal = nil
			return handled("")
		}
	}
	return unhandled()
}

// newCategoryMatcher builds the fuzzy matcher behind free-text search.
func newCategoryMatcher() *search.Matcher {
	m := search.NewMatcher()
	m.Register("Milk", "dairy milk")
	m.Register("Frozen Food", "frozen")
	m.Register("Cheese")
	m.Register("Chicken", "poultry")
	m.Register("Beef")
	m.Register("Seafood", "fish")
	m.Register("Bread", "bakery")
	m.Register("Cereal")
	m.Register("Noodles", "pasta", "instant noodles")
	m.Register("Snacks", "chips")
	m.Register("Canned Goods", "canned")
	m.Register("Condiments", "sauce", "sauces")
	m.Register("Soft Drinks", "soda", "softdrinks")
	m.Register("Juice")
	m.Register("Alcohol", "beer", "liquor", "wine")
	m.Register("Cleaning Agents", "cleaning", "detergent")
	m.Register("Home Essentials", "household")
	m.Register("Hair Care", "shampoo")
	m.Register("Body Care", "soap", "lotion")
	m.Register("Dental Care", "toothpaste")
	m.Register("Clothes", "clothing", "apparel")
	m.Register("Stationery", "school supplies")
	m.Register("Pet Food", "petfood")
	m.Register("Fruit", "fruits")
	m.Register("Vegetable", "vegetables", "veggies")
	m.Register("Eggs", "egg")
	return m
}

var categoryMatcher = newCategoryMatcher()

// SearchFreeText resolves a typed query to a category, loads its
// waypoints and returns the location hint. It works from any mode and
// tolerates misspellings.
func (s *Session) SearchFreeText(query string) (string, bool) {
	name, ok := categoryMatcher.Match(query)
	if !ok {
		return "", false
	}
	pt, ok := productTypeByName(name)
	if !ok {
		return "", false
	}
	s.waypoints = s.waypointsFor(pt)
	s.showWaypoints = len(s.waypoints) > 0
	return fmt.Sprintf("%s: %s (%s)", pt.Name, pt.Location, pt.Coordinate), true
}
