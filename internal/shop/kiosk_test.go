package shop

import (
	"strings"
	"testing"
)

// atKiosk parks the session next to the ground-floor search kiosk at
// (15,8) and opens it.
func atKiosk(t *testing.T, s *Session) {
	t.Helper()

	s.row, s.col = 15, 7
	s.HandleAction(ActionMoveRight) // blocked by the kiosk, sets facing
	res := s.HandleAction(ActionInteract)
	if !res.Handled || s.Mode() != ModeSearching {
		t.Fatalf("expected the kiosk to open, got %+v mode %v", res, s.Mode())
	}
}

func selectCategory(t *testing.T, s *Session, name string) {
	t.Helper()

	for i, pt := range productTypes {
		if pt.Name != name {
			continue
		}
		for step := 0; step < i; step++ {
			s.HandleAction(ActionMoveDown)
		}
		s.HandleAction(ActionInteract)
		return
	}
	t.Fatalf("unknown category %q", name)
}

func TestKioskOpensOnCategoryList(t *testing.T) {
	s, _ := adultSession(t)
	atKiosk(t, s)

	stage, categoryCursor, _, _, _, ok := s.KioskView()
	if !ok || stage != KioskSelectCategory || categoryCursor != 0 {
		t.Fatalf("unexpected kiosk state: %v %d", stage, categoryCursor)
	}
}

func TestKioskCategoryLeadsToItems(t *testing.T) {
	s, _ := adultSession(t)
	atKiosk(t, s)
	selectCategory(t, s, "Alcohol")

	stage, _, itemCursor, items, _, _ := s.KioskView()
	if stage != KioskSelectItem || itemCursor != 0 {
		t.Fatalf("expected the item list, got %v %d", stage, itemCursor)
	}
	if len(items) != 8 || Category(items[0].ID) != "ALC" {
		t.Fatalf("expected the eight alcohol products, got %v", items)
	}
}

func TestKioskItemSelectLoadsWaypoints(t *testing.T) {
	s, _ := adultSession(t)
	atKiosk(t, s)
	selectCategory(t, s, "Alcohol")
	s.HandleAction(ActionInteract) // first item

	stage, _, _, _, result, _ := s.KioskView()
	if stage != KioskShowResult {
		t.Fatalf("expected the result screen, got %v", stage)
	}
	if !strings.Contains(result, "Shelf Aisle 1") || !strings.Contains(result, "Row 4-7, Col 2-3") {
		t.Fatalf("unexpected location text %q", result)
	}

	// Alcohol sits on the ground-floor aisle-one front shelves: rows 4-7
	// in columns 2 and 3.
	if len(s.waypoints) != 8 {
		t.Fatalf("expected 8 shelf waypoints, got %d", len(s.waypoints))
	}
	for _, w := range s.waypoints {
		if w.Floor != FloorGround || w.Row < 4 || w.Row > 7 || (w.Col != 2 && w.Col != 3) {
			t.Fatalf("waypoint %+v is off the alcohol shelves", w)
		}
	}
	if _, visible := s.WaypointsVisible(); !visible {
		t.Fatalf("loading waypoints should show them")
	}
}

func TestKioskMilkWaypointsOnUpperFloor(t *testing.T) {
	s, _ := adultSession(t)
	atKiosk(t, s)
	selectCategory(t, s, "Milk")
	s.HandleAction(ActionInteract)

	if len(s.waypoints) != 4 {
		t.Fatalf("expected the four fridge cells, got %d", len(s.waypoints))
	}
	for _, w := range s.waypoints {
		if w.Floor != FloorUpper || w.Row != 1 || w.Col < 3 || w.Col > 6 {
			t.Fatalf("waypoint %+v is off fridge unit one", w)
		}
	}
}

func TestKioskWaypointsSurviveClose(t *testing.T) {
	s, _ := adultSession(t)
	atKiosk(t, s)
	selectCategory(t, s, "Milk")
	s.HandleAction(ActionInteract)

	s.HandleAction(ActionCancel) // close from the result screen
	if s.Mode() != ModeFree {
		t.Fatalf("cancel should close the kiosk, got %v", s.Mode())
	}
	if _, visible := s.WaypointsVisible(); len(s.waypoints) == 0 || !visible {
		t.Fatalf("waypoints should survive closing the kiosk")
	}
}

func TestKioskSearchAnotherKeepsWaypoints(t *testing.T) {
	s, _ := adultSession(t)
	atKiosk(t, s)
	selectCategory(t, s, "Milk")
	s.HandleAction(ActionInteract)

	s.HandleAction(ActionInteract) // search another
	stage, _, _, _, _, _ := s.KioskView()
	if stage != KioskSelectCategory {
		t.Fatalf("expected the category list again, got %v", stage)
	}
	if len(s.waypoints) != 4 {
		t.Fatalf("searching another must keep the waypoints, got %d", len(s.waypoints))
	}
}

func TestKioskWaypointToggle(t *testing.T) {
	s, _ := adultSession(t)
	atKiosk(t, s)
	selectCategory(t, s, "Milk")
	s.HandleAction(ActionInteract)

	s.HandleAction(ActionToggleWaypoints)
	if _, visible := s.WaypointsVisible(); visible {
		t.Fatalf("toggle should hide the markers")
	}
	s.HandleAction(ActionToggleWaypoints)
	if _, visible := s.WaypointsVisible(); !visible {
		t.Fatalf("toggle should show them again")
	}
}

func TestKioskCancelFromItemsBacksUp(t *testing.T) {
	s, _ := adultSession(t)
	atKiosk(t, s)
	selectCategory(t, s, "Cheese")

	s.HandleAction(ActionCancel)
	stage, _, _, _, _, _ := s.KioskView()
	if stage != KioskSelectCategory {
		t.Fatalf("cancel should back up one screen, got %v", stage)
	}
	s.HandleAction(ActionCancel)
	if s.Mode() != ModeFree {
		t.Fatalf("cancelling the category list closes the kiosk, got %v", s.Mode())
	}
}

func TestSearchFreeTextExactAndAlias(t *testing.T) {
	s, _ := adultSession(t)

	hint, ok := s.SearchFreeText("milk")
	if !ok || !strings.Contains(hint, "Fridge Unit 1") {
		t.Fatalf("exact query failed: %q %v", hint, ok)
	}
	if len(s.waypoints) != 4 {
		t.Fatalf("expected milk waypoints, got %d", len(s.waypoints))
	}

	hint, ok = s.SearchFreeText("beer")
	if !ok || !strings.Contains(hint, "Alcohol") {
		t.Fatalf("alias query failed: %q %v", hint, ok)
	}
	if len(s.waypoints) != 8 {
		t.Fatalf("alias search should replace the waypoints, got %d", len(s.waypoints))
	}
}

func TestSearchFreeTextToleratesTypos(t *testing.T) {
	s, _ := adultSession(t)

	hint, ok := s.SearchFreeText("chese")
	if !ok || !strings.Contains(hint, "Cheese") {
		t.Fatalf("one-letter typo should still match: %q %v", hint, ok)
	}

	hint, ok = s.SearchFreeText("mil")
	if !ok || !strings.Contains(hint, "Milk") {
		t.Fatalf("prefix query should match: %q %v", hint, ok)
	}
}

func TestSearchFreeTextMiss(t *testing.T) {
	s, _ := adultSession(t)
	s.waypoints = []Waypoint{{Floor: FloorGround, Row: 1, Col: 1}}

	if _, ok := s.SearchFreeText("xylophone"); ok {
		t.Fatalf("nonsense queries must not match")
	}
	if len(s.waypoints) != 1 {
		t.Fatalf("a miss must leave existing waypoints alone")
	}
}
