package shop

import "testing"

func categoryOf(t *testing.T, items []Product) string {
	t.Helper()

	if len(items) == 0 {
		t.Fatalf("expected a stocked tile")
	}
	first := Category(items[0].ID)
	for _, p := range items {
		if Category(p.ID) != first {
			t.Fatalf("tile mixes categories: %v", items)
		}
	}
	return first
}

func TestChilledCounterSections(t *testing.T) {
	cases := []struct {
		col  int
		want string
	}{
		{1, "CHK"}, {6, "CHK"},
		{8, "BEF"}, {13, "BEF"},
		{15, "SEA"}, {20, "SEA"},
	}
	for _, c := range cases {
		items := ItemsForTile(TileChilled, FloorGround, 1, c.col)
		if got := categoryOf(t, items); got != c.want {
			t.Fatalf("chilled col %d stocks %s, want %s", c.col, got, c.want)
		}
		if len(items) != 3 {
			t.Fatalf("chilled col %d lists %d items, want 3", c.col, len(items))
		}
	}
}

func TestGroundShelfAisles(t *testing.T) {
	cases := []struct {
		row, col int
		want     string
	}{
		{4, 2, "ALC"}, {7, 3, "ALC"},
		{10, 2, "CON"}, {13, 3, "CON"},
		{4, 6, "SFT"}, {10, 7, "JUC"},
		{4, 14, "CER"}, {13, 15, "NDL"},
		{7, 18, "CAN"}, {11, 19, "SNK"},
	}
	for _, c := range cases {
		items := ItemsForTile(TileShelf, FloorGround, c.row, c.col)
		if got := categoryOf(t, items); got != c.want {
			t.Fatalf("ground shelf (%d,%d) stocks %s, want %s", c.row, c.col, got, c.want)
		}
		if len(items) != 8 {
			t.Fatalf("ground shelf (%d,%d) lists %d items, want 8", c.row, c.col, len(items))
		}
	}
}

func TestUpperTiles(t *testing.T) {
	cases := []struct {
		kind     TileKind
		row, col int
		want     string
	}{
		{TileFridge, 1, 3, "MLK"},
		{TileFridge, 1, 10, "FRZ"},
		{TileFridge, 1, 17, "CHS"},
		{TileShelf, 4, 2, "PET"},
		{TileShelf, 10, 2, "STN"},
		{TileShelf, 4, 6, "CLO"},
		{TileShelf, 10, 7, "DEN"},
		{TileShelf, 4, 14, "CLE"},
		{TileShelf, 10, 15, "HAR"},
		{TileShelf, 4, 18, "HOM"},
		{TileShelf, 10, 19, "BOD"},
		{TileTable, 4, 10, "VEG"},
		{TileTable, 20, 3, "BRD"},
		{TileTable, 20, 10, "EGG"},
		{TileTable, 20, 16, "BRD"},
	}
	for _, c := range cases {
		items := ItemsForTile(c.kind, FloorUpper, c.row, c.col)
		if got := categoryOf(t, items); got != c.want {
			t.Fatalf("upper %v (%d,%d) stocks %s, want %s", c.kind, c.row, c.col, got, c.want)
		}
	}
}

func TestGroundTablesStockFruit(t *testing.T) {
	items := ItemsForTile(TileTable, FloorGround, 4, 10)
	if got := categoryOf(t, items); got != "FRU" {
		t.Fatalf("ground tables stock %s, want FRU", got)
	}
	if len(items) != 4 {
		t.Fatalf("expected four fruit products, got %d", len(items))
	}
}

func TestNonStockingTilesReturnNil(t *testing.T) {
	if items := ItemsForTile(TileCashier, FloorGround, 18, 2); items != nil {
		t.Fatalf("cashiers stock nothing, got %v", items)
	}
	if items := ItemsForTile(TileShelf, FloorHallway, 4, 2); items != nil {
		t.Fatalf("the hallway stocks nothing, got %v", items)
	}
}

func TestEveryCatalogProductIsReachable(t *testing.T) {
	g := NewGridWorld()
	seen := make(map[string]bool, len(catalogSeed))
	for _, f := range []Floor{FloorGround, FloorUpper} {
		for r := 0; r < GridSize; r++ {
			for c := 0; c < GridSize; c++ {
				kind := g.TileAt(f, r, c)
				if !interactable(kind) {
					continue
				}
				for _, p := range ItemsForTile(kind, f, r, c) {
					seen[p.ID] = true
				}
			}
		}
	}
	for _, p := range catalogSeed {
		if !seen[p.ID] {
			t.Fatalf("product %s is stocked nowhere", p.ID)
		}
	}
}
