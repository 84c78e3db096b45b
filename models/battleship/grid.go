package battleship

import (
	"errors"

	"github.com/dolthub/swiss"
	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type CellState uint8

const (
	CellWater CellState = iota
	CellShip
	CellHit
	CellMiss
)

func (s CellState) String() string {
	switch s {
	case CellWater:
		return "Water"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Symbol is the display character of the cell state.
func (s CellState) Symbol() rune {
	switch s {
	case CellShip:
		return 'O'
	case CellHit:
		return 'X'
	case CellMiss:
		return 'M'
	default:
		return '~'
	}
}

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotSunk
	ShotAlreadyShot
	ShotOutOfBounds

	// The shot was refused before reaching a grid; the error says why
	ShotRejected
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotMiss:
		return "Miss"
	case ShotHit:
		return "Hit"
	case ShotSunk:
		return "Sunk"
	case ShotAlreadyShot:
		return "AlreadyShot"
	case ShotOutOfBounds:
		return "OutOfBounds"
	case ShotRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// ConsumesTurn reports whether the shot counts as the shooter's move.
func (o ShotOutcome) ConsumesTurn() bool {
	return o == ShotMiss || o == ShotHit || o == ShotSunk
}

// Grid is one player's board. It is changed only by placing ships
// during setup and by the opponent's shots.
type Grid struct {
	size  int
	fleet Fleet
	cells [][]CellState
	ships []*Ship

	// shipIndex maps every ship cell to its position in ships
	shipIndex *swiss.Map[Coordinates, int]
}

// Creates a new default grid with the default fleet manifest.
// All cells start as water.
func NewGrid(gridSize int) *Grid {
	return NewGridWithFleet(gridSize, DefaultFleet)
}

func NewGridWithFleet(gridSize int, fleet Fleet) *Grid {
	cells := make([][]CellState, gridSize)
	for i := 0; i < gridSize; i++ {
		cells[i] = make([]CellState, gridSize)
	}

	return &Grid{
		size:      gridSize,
		fleet:     fleet,
		cells:     cells,
		ships:     make([]*Ship, 0, len(fleet)),
		shipIndex: swiss.NewMap[Coordinates, int](uint32(fleet.TotalCells())),
	}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) Fleet() Fleet {
	return g.fleet
}

// Cell returns the state of c. Out of bounds cells read as water.
func (g *Grid) Cell(c Coordinates) CellState {
	if !c.InBounds(g.size) {
		return CellWater
	}
	return g.cells[c.Row][c.Col]
}

// TryPlaceShip places the manifest ship called name from start to end.
// Either the whole ship is written or the grid is left untouched.
func (g *Grid) TryPlaceShip(name string, start, end Coordinates) PlacementOutcome {
	class, ok := g.fleet.Find(name)
	if !ok {
		return RejectedUnknownShip
	}

	if g.isPlaced(class.Name) {
		return RejectedAlreadyPlaced
	}

	ship, err := NewShip(class, start, end)
	if err != nil {
		switch {
		case errors.Is(err, cerr.ErrNotStraight):
			return RejectedNotStraight
		default:
			return RejectedLengthMismatch
		}
	}

	if outcome := ValidatePlacement(g, ship.coordinates); outcome != Placed {
		return outcome
	}

	idx := len(g.ships)
	for _, c := range ship.coordinates {
		g.cells[c.Row][c.Col] = CellShip
		g.shipIndex.Put(c, idx)
	}
	g.ships = append(g.ships, ship)

	return Placed
}

// ApplyShot resolves a shot fired at c. Shooting a cell for the second
// time reports ShotAlreadyShot and changes nothing.
func (g *Grid) ApplyShot(c Coordinates) ShotOutcome {
	if !c.InBounds(g.size) {
		return ShotOutOfBounds
	}

	switch g.cells[c.Row][c.Col] {
	case CellHit, CellMiss:
		return ShotAlreadyShot

	case CellWater:
		g.cells[c.Row][c.Col] = CellMiss
		return ShotMiss
	}

	g.cells[c.Row][c.Col] = CellHit

	ship := g.ShipAt(c)
	if ship == nil {
		// Every ship cell is indexed on placement
		panic("ship cell without an owning ship: " + c.String())
	}

	ship.Hit(c)
	if ship.IsSunk() {
		return ShotSunk
	}
	return ShotHit
}

// ShipAt returns the ship occupying c, or nil.
func (g *Grid) ShipAt(c Coordinates) *Ship {
	idx, ok := g.shipIndex.Get(c)
	if !ok {
		return nil
	}
	return g.ships[idx]
}

// AllSunk reports whether every placed ship is sunk. A grid without
// ships is vacuously all sunk.
func (g *Grid) AllSunk() bool {
	for _, ship := range g.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

func (g *Grid) SunkenShips() int {
	sunk := 0
	for _, ship := range g.ships {
		if ship.IsSunk() {
			sunk++
		}
	}
	return sunk
}

func (g *Grid) Ships() []*Ship {
	ships := make([]*Ship, len(g.ships))
	copy(ships, g.ships)
	return ships
}

func (g *Grid) IsFleetComplete() bool {
	return len(g.RemainingShips()) == 0
}

// RemainingShips lists the manifest classes not placed yet, in
// manifest order.
func (g *Grid) RemainingShips() []ShipClass {
	remaining := make([]ShipClass, 0, len(g.fleet))
	for _, class := range g.fleet {
		if !g.isPlaced(class.Name) {
			remaining = append(remaining, class)
		}
	}
	return remaining
}

// Render projects the grid to display symbols. With fogOfWar set,
// unhit ship cells are shown as water.
func (g *Grid) Render(fogOfWar bool) [][]rune {
	view := make([][]rune, g.size)
	for row := 0; row < g.size; row++ {
		view[row] = make([]rune, g.size)
		for col := 0; col < g.size; col++ {
			state := g.cells[row][col]
			if fogOfWar && state == CellShip {
				state = CellWater
			}
			view[row][col] = state.Symbol()
		}
	}
	return view
}

func (g *Grid) isPlaced(name string) bool {
	for _, ship := range g.ships {
		if ship.name == name {
			return true
		}
	}
	return false
}

func (g *Grid) isOccupied(c Coordinates) bool {
	state := g.cells[c.Row][c.Col]
	return state == CellShip || state == CellHit
}
