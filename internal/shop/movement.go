package shop

// npcRow, npcCol is the vendor's fixed cell in the hallway. The cell
// blocks movement like a wall; Interact while facing it starts the
// vendor encounter.
const (
	npcName = "Thugger"
	npcRow  = 4
	npcCol  = 11
)

// move attempts a one-tile step. Facing always updates, even when the
// step itself is blocked, so a follow-up Interact targets the tile the
// player pushed against.
func (s *Session) move(dr, dc int) ActionResult {
	s.facingDR, s.facingDC = dr, dc

	if s.MovementLocked() {
		return handled("You can't move yet.")
	}

	tr, tc := s.row+dr, s.col+dc

	if s.npcAt(s.floor, tr, tc) {
		return handled(npcName + " is in the way.")
	}

	target := s.grid.TileAt(s.floor, tr, tc)

	// Doors and the exit only admit southbound movement.
	if (target == TileDoor || target == TileExit) && dr != 1 {
		return handled("You can only pass through here heading down.")
	}

	if !s.grid.IsWalkable(s.floor, tr, tc) {
		return unhandled()
	}

	s.row, s.col = tr, tc
	s.consumeWaypointAt(s.floor, tr, tc)

	if target == TileTeleport {
		return s.stepTeleport()
	}
	return handled("")
}

// stepTeleport resolves stepping onto a teleport tile. The upper-floor
// black tile drops the player into the hallway; the hallway pads send
// the player back to the ground-floor entrance.
func (s *Session) stepTeleport() ActionResult {
	switch s.floor {
	case FloorUpper:
		s.changeFloor(FloorHallway)
		s.row, s.col = hallwayEntryRow, hallwayEntryCol
		return handled("The floor gives way beneath you...")
	case FloorHallway:
		s.changeFloor(FloorGround)
		s.row, s.col = spawnRow, spawnCol
		return handled("You are back at the store entrance.")
	default:
		return handled("")
	}
}

// npcAt reports whether the vendor occupies the given cell.
func (s *Session) npcAt(f Floor, row, col int) bool {
	return f == FloorHallway && row == npcRow && col == npcCol
}

// changeFloor switches floors and keeps floor-dependent state in sync:
// waypoint highlighting follows the active floor, and entering the
// upper floor redraws the hidden teleport tile.
func (s *Session) changeFloor(f Floor) {
	if f == s.floor {
		return
	}
	s.floor = f
	if f == FloorUpper {
		s.grid.RegenerateTeleport(s.rng)
	}
}

// consumeWaypointAt removes a reached waypoint.
func (s *Session) consumeWaypointAt(f Floor, row, col int) {
	for i, w := range s.waypoints {
		if w.Floor == f && w.Row == row && w.Col == col {
			s.waypoints = append(s.waypoints[:i], s.waypoints[i+1:]...)
			if len(s.waypoints) == 0 {
				s.showWaypoints = false
			}
			return
		}
	}
}
