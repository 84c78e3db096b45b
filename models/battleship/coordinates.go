package battleship

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

// Coordinates is a 0-based (row, column) position on a grid.
// Row 0 is displayed as 'A' and column 0 as '1'.
type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewCoordinates(row, col int) Coordinates {
	return Coordinates{Row: row, Col: col}
}

// ParseCoordinates reads the "A5" form: one row letter followed by a
// 1-based column number. Letters are case-insensitive and surrounding
// whitespace is ignored.
func ParseCoordinates(text string, gridSize int) (Coordinates, error) {
	tokens := strings.Fields(text)
	if len(tokens) != 1 {
		return Coordinates{}, cerr.ErrCoordinateInvalidFormat(text)
	}

	token := tokens[0]
	if len(token) < 2 {
		return Coordinates{}, cerr.ErrCoordinateInvalidFormat(text)
	}

	// only the ASCII letter is folded; unicode case mapping would turn
	// inputs like "ı5" into a valid row
	rowChar := token[0]
	if rowChar >= 'a' && rowChar <= 'z' {
		rowChar -= 'a' - 'A'
	}
	if rowChar < 'A' || rowChar > 'Z' {
		return Coordinates{}, cerr.ErrCoordinateInvalidFormat(text)
	}

	colStr := token[1:]
	for i := 0; i < len(colStr); i++ {
		if colStr[i] < '0' || colStr[i] > '9' {
			return Coordinates{}, cerr.ErrCoordinateInvalidFormat(text)
		}
	}

	colNum, err := strconv.Atoi(colStr)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Coordinates{}, cerr.ErrCoordinateOutOfRange(text, gridSize)
		}
		return Coordinates{}, cerr.ErrCoordinateInvalidFormat(text)
	}

	c := NewCoordinates(int(rowChar-'A'), colNum-1)
	if !c.InBounds(gridSize) {
		return Coordinates{}, cerr.ErrCoordinateOutOfRange(text, gridSize)
	}

	return c, nil
}

func (c Coordinates) InBounds(gridSize int) bool {
	return c.Row >= 0 && c.Row < gridSize && c.Col >= 0 && c.Col < gridSize
}

// String renders the coordinates back to the "A5" form.
func (c Coordinates) String() string {
	return fmt.Sprintf("%c%d", rune('A'+c.Row), c.Col+1)
}
