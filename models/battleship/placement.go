package battleship

type PlacementOutcome uint8

const (
	Placed PlacementOutcome = iota
	RejectedOverlap
	RejectedAdjacent
	RejectedOutOfBounds
	RejectedNotStraight
	RejectedLengthMismatch

	// The name is not part of the grid's fleet manifest
	RejectedUnknownShip

	// Every class of the manifest can be placed only once
	RejectedAlreadyPlaced
)

func (o PlacementOutcome) String() string {
	switch o {
	case Placed:
		return "Placed"
	case RejectedOverlap:
		return "RejectedOverlap"
	case RejectedAdjacent:
		return "RejectedAdjacent"
	case RejectedOutOfBounds:
		return "RejectedOutOfBounds"
	case RejectedNotStraight:
		return "RejectedNotStraight"
	case RejectedLengthMismatch:
		return "RejectedLengthMismatch"
	case RejectedUnknownShip:
		return "RejectedUnknownShip"
	case RejectedAlreadyPlaced:
		return "RejectedAlreadyPlaced"
	default:
		return "Unknown"
	}
}

// ValidatePlacement checks a candidate ship against the current state
// of the grid without writing to it. Checks run bounds, overlap, then
// adjacency, each scanning the candidate in order, and the first
// violation found is reported.
//
// Adjacency is tested against cells already on the grid only, so the
// candidate's own cells never count against it.
func ValidatePlacement(grid *Grid, candidate []Coordinates) PlacementOutcome {
	for _, c := range candidate {
		if !c.InBounds(grid.size) {
			return RejectedOutOfBounds
		}
	}

	for _, c := range candidate {
		if grid.isOccupied(c) {
			return RejectedOverlap
		}
	}

	for _, c := range candidate {
		for _, n := range neighbours(c, grid.size) {
			if grid.isOccupied(n) {
				return RejectedAdjacent
			}
		}
	}

	return Placed
}

// neighbours returns the 8 surrounding cells of c, clipped at the
// grid edges.
func neighbours(c Coordinates, gridSize int) []Coordinates {
	ns := make([]Coordinates, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := NewCoordinates(c.Row+dr, c.Col+dc)
			if n.InBounds(gridSize) {
				ns = append(ns, n)
			}
		}
	}
	return ns
}
