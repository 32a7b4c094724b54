package shop

import "fmt"

// Tile catalog: which SKUs a shelf, fridge, chilled counter or table
// presents, keyed by floor and coordinate range. A static read-only
// lookup; tiles outside every range return nil ("Empty").

var productsByID = func() map[string]Product {
	m := make(map[string]Product, len(catalogSeed))
	for _, p := range catalogSeed {
		m[p.ID] = p
	}
	return m
}()

func products(ids ...string) []Product {
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		p, ok := productsByID[id]
		if !ok {
			panic("shop: tile catalog references unknown product " + id)
		}
		out = append(out, p)
	}
	return out
}

func idRange(prefix string, from, to int) []string {
	ids := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		ids = append(ids, fmt.Sprintf("%s%05d", prefix, i))
	}
	return ids
}

// ItemsForTile returns the products presented by the cell, or nil when
// the cell stocks nothing.
func ItemsForTile(kind TileKind, f Floor, row, col int) []Product {
	switch f {
	case FloorGround:
		return groundItems(kind, row, col)
	case FloorUpper:
		return upperItems(kind, row, col)
	default:
		return nil
	}
}

func groundItems(kind TileKind, row, col int) []Product {
	switch kind {
	case TileChilled:
		// Chicken, beef and seafood sections along the counter.
		switch {
		case col >= 1 && col <= 6:
			return products(idRange("CHK", 1, 3)...)
		case col >= 8 && col <= 13:
			return products(idRange("BEF", 1, 3)...)
		case col >= 15 && col <= 20:
			return products(idRange("SEA", 1, 3)...)
		}
		return products(idRange("CHK", 1, 3)...)
	case TileShelf:
		front := row >= 4 && row <= 7
		back := row >= 10 && row <= 13
		switch {
		case (col == 2 || col == 3) && front:
			return products(idRange("ALC", 1, 8)...)
		case (col == 2 || col == 3) && back:
			return products(idRange("CON", 1, 8)...)
		case (col == 6 || col == 7) && front:
			return products(idRange("SFT", 1, 8)...)
		case (col == 6 || col == 7) && back:
			return products(idRange("JUC", 1, 8)...)
		case (col == 14 || col == 15) && front:
			return products(idRange("CER", 1, 8)...)
		case (col == 14 || col == 15) && back:
			return products(idRange("NDL", 1, 8)...)
		case (col == 18 || col == 19) && front:
			return products(idRange("CAN", 1, 8)...)
		case (col == 18 || col == 19) && back:
			return products(idRange("SNK", 1, 8)...)
		}
		return products(idRange("ALC", 1, 8)...)
	case TileTable:
		return products(idRange("FRU", 1, 4)...)
	}
	return nil
}

func upperItems(kind TileKind, row, col int) []Product {
	switch kind {
	case TileFridge:
		switch {
		case col >= 3 && col <= 6:
			return products(idRange("MLK", 1, 3)...)
		case col >= 9 && col <= 12:
			return products(idRange("FRZ", 1, 3)...)
		case col >= 15 && col <= 18:
			return products(idRange("CHS", 1, 3)...)
		}
		return products(idRange("MLK", 1, 3)...)
	case TileShelf:
		front := row >= 4 && row <= 7
		back := row >= 10 && row <= 13
		switch {
		case (col == 2 || col == 3) && front:
			return products(idRange("PET", 1, 8)...)
		case (col == 2 || col == 3) && back:
			return products(idRange("STN", 1, 8)...)
		case (col == 6 || col == 7) && front:
			return products(idRange("CLO", 1, 8)...)
		case (col == 6 || col == 7) && back:
			return products(idRange("DEN", 1, 8)...)
		case (col == 14 || col == 15) && front:
			return products(idRange("CLE", 1, 8)...)
		case (col == 14 || col == 15) && back:
			return products(idRange("HAR", 1, 8)...)
		case (col == 18 || col == 19) && front:
			return products(idRange("HOM", 1, 8)...)
		case (col == 18 || col == 19) && back:
			return products(idRange("BOD", 1, 8)...)
		}
		return products(idRange("PET", 1, 8)...)
	case TileTable:
		switch {
		case (col == 10 || col == 11) && ((row >= 4 && row <= 7) || (row >= 10 && row <= 13)):
			return products(idRange("VEG", 1, 4)...)
		case row == 20 && col >= 3 && col <= 7:
			return products(idRange("BRD", 1, 4)...)
		case row == 20 && col >= 9 && col <= 12:
			return products(idRange("EGG", 1, 4)...)
		case row == 20 && col >= 14 && col <= 18:
			return products(idRange("BRD", 1, 4)...)
		}
		return products(idRange("VEG", 1, 4)...)
	}
	return nil
}

// interactable reports whether the tile kind opens a product browser.
func interactable(kind TileKind) bool {
	switch kind {
	case TileShelf, TileFridge, TileChilled, TileTable:
		return true
	default:
		return false
	}
}
