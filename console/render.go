package console

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

const (
	clearScreenSeq = "\033[H\033[2J"
	separator      = "---------------------"
)

// PrintGrid writes the grid with a column number header and a row
// letter in front of every row.
func PrintGrid(w io.Writer, grid *mb.Grid, fogOfWar bool) {
	var sb strings.Builder

	sb.WriteString(" ")
	for col := 1; col <= grid.Size(); col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteString("\n")

	for row, cells := range grid.Render(fogOfWar) {
		sb.WriteRune(rune('A' + row))
		for _, cell := range cells {
			sb.WriteRune(' ')
			sb.WriteRune(cell)
		}
		sb.WriteString("\n")
	}

	fmt.Fprint(w, sb.String())
}
