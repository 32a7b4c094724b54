package shop

import "math/rand/v2"

// GridSize is the side length of every floor grid.
const GridSize = 22

// Floor indexes the three store levels.
type Floor int

const (
	FloorGround Floor = iota
	FloorUpper
	FloorHallway // the hidden hallway behind the teleport tile
)

// TileKind classifies a grid cell. Interactable kinds open modal
// contexts; the rest gate movement.
type TileKind int

const (
	TileWall TileKind = iota
	TileFloor
	TileSecretFloor
	TileTable
	TileFridge
	TileChilled
	TileShelf
	TileStairsUp
	TileStairsDown
	TileSearch
	TileBasket
	TileCart
	TileCashier
	TileDoor
	TileATM
	TileExit
	TileTeleport
)

func (t TileKind) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileSecretFloor:
		return "secret-floor"
	case TileTable:
		return "table"
	case TileFridge:
		return "fridge"
	case TileChilled:
		return "chilled"
	case TileShelf:
		return "shelf"
	case TileStairsUp:
		return "stairs-up"
	case TileStairsDown:
		return "stairs-down"
	case TileSearch:
		return "search"
	case TileBasket:
		return "basket"
	case TileCart:
		return "cart"
	case TileCashier:
		return "cashier"
	case TileDoor:
		return "door"
	case TileATM:
		return "atm"
	case TileExit:
		return "exit"
	case TileTeleport:
		return "teleport"
	default:
		return "unknown"
	}
}

// walkable kinds a shopper may stand on. Directional door/exit rules
// are applied on top of this during movement resolution.
func (t TileKind) walkable() bool {
	switch t {
	case TileFloor, TileSecretFloor, TileStairsUp, TileStairsDown,
		TileDoor, TileExit, TileTeleport:
		return true
	default:
		return false
	}
}

// SpecialTile is an interactable or effectful cell reported by
// SpecialTiles, mainly for the GUI overlay and the kiosk waypoints.
type SpecialTile struct {
	Row, Col int
	Kind     TileKind
}

// teleportSpots are the two upper-floor cells where the hidden-hallway
// entrance may respawn. The cells are ATMs while no teleporter is up.
var teleportSpots = [2][2]int{{16, 1}, {16, 20}}

// GridWorld is the read-only tile oracle for all three floors. The one
// piece of mutable state is the upper-floor teleport tile, rerolled on
// each upper-floor entry.
type GridWorld struct {
	floors [3][GridSize][GridSize]TileKind

	teleportRow int
	teleportCol int
}

// NewGridWorld builds the fixed store layout. No teleport tile is up
// until the first upper-floor entry rolls one.
func NewGridWorld() *GridWorld {
	g := &GridWorld{teleportRow: -1, teleportCol: -1}
	initGroundFloor(&g.floors[FloorGround])
	initUpperFloor(&g.floors[FloorUpper])
	initHallway(&g.floors[FloorHallway])
	return g
}

// TileAt returns the kind of the cell, TileWall for out-of-range.
func (g *GridWorld) TileAt(f Floor, row, col int) TileKind {
	if f < FloorGround || f > FloorHallway || row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		return TileWall
	}
	return g.floors[f][row][col]
}

// IsWalkable reports whether a shopper may stand on the cell.
func (g *GridWorld) IsWalkable(f Floor, row, col int) bool {
	return g.TileAt(f, row, col).walkable()
}

// SpecialTiles lists every non-floor, non-wall cell on the floor.
func (g *GridWorld) SpecialTiles(f Floor) []SpecialTile {
	var out []SpecialTile
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			k := g.TileAt(f, r, c)
			switch k {
			case TileWall, TileFloor, TileSecretFloor:
			default:
				out = append(out, SpecialTile{Row: r, Col: c, Kind: k})
			}
		}
	}
	return out
}

// RegenerateTeleport rerolls the upper-floor teleport tile: a 10%
// chance of appearing at one of the two fixed spots, replacing the ATM
// there until the next reroll.
func (g *GridWorld) RegenerateTeleport(rng *rand.Rand) {
	if g.teleportRow >= 0 {
		if g.floors[FloorUpper][g.teleportRow][g.teleportCol] == TileTeleport {
			g.floors[FloorUpper][g.teleportRow][g.teleportCol] = TileATM
		}
		g.teleportRow, g.teleportCol = -1, -1
	}

	if rng.Float64() >= 0.1 {
		return
	}
	spot := teleportSpots[0]
	if rng.Float64() < 0.5 {
		spot = teleportSpots[1]
	}
	g.teleportRow, g.teleportCol = spot[0], spot[1]
	g.floors[FloorUpper][spot[0]][spot[1]] = TileTeleport
}

// TeleportTile returns the active upper-floor teleport cell, or false.
func (g *GridWorld) TeleportTile() (row, col int, ok bool) {
	if g.teleportRow < 0 {
		return 0, 0, false
	}
	return g.teleportRow, g.teleportCol, true
}
