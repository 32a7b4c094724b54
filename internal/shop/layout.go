package shop

// Fixed floor layouts. Coordinates here are load-bearing: the tile
// catalog, kiosk waypoints and movement rules all reference them.

// Spawn and fixed travel coordinates.
const (
	spawnRow = 21
	spawnCol = 11

	exitRow = 21
	exitCol = 10

	hallwayEntryRow = 18
	hallwayEntryCol = 11
)

func initGroundFloor(grid *[GridSize][GridSize]TileKind) {
	fill(grid, TileFloor)
	border(grid)

	// Internal walls splitting the entrance lobby.
	for r := 17; r <= 18; r++ {
		grid[r][10] = TileWall
		grid[r][11] = TileWall
	}
	for _, c := range []int{1, 3, 5, 7, 14, 16, 18, 20} {
		grid[18][c] = TileWall
	}

	// Chilled counter along row 1, with two gaps.
	for c := 1; c < GridSize-1; c++ {
		if c != 7 && c != 14 {
			grid[1][c] = TileChilled
		}
	}

	// Four shelf aisles and the central produce tables.
	shelfRows := []int{4, 5, 6, 7, 10, 11, 12, 13}
	for _, r := range shelfRows {
		for _, c := range []int{2, 3, 6, 7, 14, 15, 18, 19} {
			grid[r][c] = TileShelf
		}
		for _, c := range []int{10, 11} {
			grid[r][c] = TileTable
		}
	}

	grid[15][1] = TileStairsUp
	grid[15][20] = TileStairsUp
	grid[15][8] = TileSearch
	grid[15][13] = TileSearch

	for _, c := range []int{2, 4, 6, 8, 13, 15, 17, 19} {
		grid[18][c] = TileCashier
	}

	grid[20][1] = TileBasket
	grid[20][20] = TileCart

	grid[exitRow][exitCol] = TileExit
	grid[spawnRow][spawnCol] = TileDoor
}

func initUpperFloor(grid *[GridSize][GridSize]TileKind) {
	fill(grid, TileFloor)
	border(grid)

	// Three fridge units along row 1, stations in the corners.
	for _, span := range [][2]int{{3, 6}, {9, 12}, {15, 18}} {
		for c := span[0]; c <= span[1]; c++ {
			grid[1][c] = TileFridge
		}
	}
	grid[1][1] = TileBasket
	grid[1][20] = TileCart

	// Shelf aisles mirror the ground floor; tables run down the middle.
	for _, r := range []int{4, 5, 6, 7, 10, 11, 12, 13} {
		for _, c := range []int{2, 3, 6, 7, 14, 15, 18, 19} {
			grid[r][c] = TileShelf
		}
		for _, c := range []int{10, 11} {
			grid[r][c] = TileTable
		}
	}

	// Dining-area tables along row 20.
	for _, span := range [][2]int{{3, 7}, {9, 12}, {14, 18}} {
		for c := span[0]; c <= span[1]; c++ {
			grid[20][c] = TileTable
		}
	}

	grid[20][1] = TileSearch
	grid[20][20] = TileSearch

	grid[16][1] = TileATM
	grid[16][20] = TileATM

	// Wall blocks between the ATMs.
	for r := 16; r <= 17; r++ {
		for _, span := range [][2]int{{4, 5}, {10, 11}, {16, 17}} {
			for c := span[0]; c <= span[1]; c++ {
				grid[r][c] = TileWall
			}
		}
	}

	grid[15][1] = TileStairsDown
	grid[15][20] = TileStairsDown
}

func initHallway(grid *[GridSize][GridSize]TileKind) {
	fill(grid, TileWall)

	// Hallway up from the entry point.
	for r := 14; r <= 18; r++ {
		grid[r][11] = TileSecretFloor
	}

	// Main chamber.
	for r := 3; r <= 13; r++ {
		for c := 5; c <= 17; c++ {
			grid[r][c] = TileSecretFloor
		}
	}

	// Corner obstacles (3x3 blocks).
	for _, block := range [][2]int{{3, 5}, {3, 15}, {11, 5}, {11, 15}} {
		for r := block[0]; r <= block[0]+2; r++ {
			for c := block[1]; c <= block[1]+2; c++ {
				grid[r][c] = TileWall
			}
		}
	}

	// Teleporters back to the ground floor.
	grid[8][6] = TileTeleport
	grid[8][16] = TileTeleport

	// Connection zone between hallway and chamber.
	for c := 10; c <= 12; c++ {
		grid[13][c] = TileSecretFloor
		grid[14][c] = TileSecretFloor
	}
}

func fill(grid *[GridSize][GridSize]TileKind, k TileKind) {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			grid[r][c] = k
		}
	}
}

func border(grid *[GridSize][GridSize]TileKind) {
	for i := 0; i < GridSize; i++ {
		grid[0][i] = TileWall
		grid[GridSize-1][i] = TileWall
		grid[i][0] = TileWall
		grid[i][GridSize-1] = TileWall
	}
}
