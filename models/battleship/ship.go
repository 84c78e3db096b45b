package battleship

import (
	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type Ship struct {
	name        string
	length      int
	hits        int
	coordinates []Coordinates

	// hitPositions is indexed by position in coordinates
	hitPositions []bool
}

// NewShip builds a ship of the given class spanning start to end,
// both inclusive. The coordinate order follows the direction the
// ends were given in.
func NewShip(class ShipClass, start, end Coordinates) (*Ship, error) {
	coords, err := DeriveCoordinates(start, end)
	if err != nil {
		return nil, err
	}

	if len(coords) != class.Length {
		return nil, cerr.ErrShipLengthMismatch(class.Name, class.Length, len(coords))
	}

	return &Ship{
		name:         class.Name,
		length:       class.Length,
		hits:         0,
		coordinates:  coords,
		hitPositions: make([]bool, class.Length),
	}, nil
}

// DeriveCoordinates returns the straight run of cells from start to
// end. start == end is accepted as a horizontal run of one cell.
func DeriveCoordinates(start, end Coordinates) ([]Coordinates, error) {
	var (
		rowStep, colStep int
		length           int
	)

	switch {
	case start.Row == end.Row:
		colStep = stepTowards(start.Col, end.Col)
		length = abs(end.Col-start.Col) + 1

	case start.Col == end.Col:
		rowStep = stepTowards(start.Row, end.Row)
		length = abs(end.Row-start.Row) + 1

	default:
		return nil, cerr.ErrShipNotStraight(start, end)
	}

	coords := make([]Coordinates, 0, length)
	for i := 0; i < length; i++ {
		coords = append(coords, NewCoordinates(start.Row+i*rowStep, start.Col+i*colStep))
	}
	return coords, nil
}

func (sh *Ship) Name() string {
	return sh.name
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Hits() int {
	return sh.hits
}

// Coordinates returns a copy of the occupied cells in placement order.
func (sh *Ship) Coordinates() []Coordinates {
	coords := make([]Coordinates, len(sh.coordinates))
	copy(coords, sh.coordinates)
	return coords
}

func (sh *Ship) Contains(c Coordinates) bool {
	return sh.positionOf(c) != -1
}

// Hit records a hit on c. It reports false if c is not part of the
// ship or was already hit, in which case nothing changes.
func (sh *Ship) Hit(c Coordinates) bool {
	pos := sh.positionOf(c)
	if pos == -1 || sh.hitPositions[pos] {
		return false
	}

	sh.hitPositions[pos] = true
	sh.hits++
	return true
}

func (sh *Ship) IsSunk() bool {
	return sh.hits == sh.length
}

func (sh *Ship) GetHitCoordinates() []Coordinates {
	hitCoords := make([]Coordinates, 0, sh.hits)
	for i, isHit := range sh.hitPositions {
		if isHit {
			hitCoords = append(hitCoords, sh.coordinates[i])
		}
	}
	return hitCoords
}

func (sh *Ship) positionOf(c Coordinates) int {
	for i, coord := range sh.coordinates {
		if coord == c {
			return i
		}
	}
	return -1
}

func stepTowards(from, to int) int {
	if from <= to {
		return 1
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
