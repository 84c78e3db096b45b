package console_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saeidalz13/battleship-hotseat/console"
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

var destroyerOnly = mb.Fleet{{Name: "Destroyer", Length: 2}}

type scriptedReader struct {
	lines   []string
	prompts []string
}

func (s *scriptedReader) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

type recordingNotifier struct {
	started int
	shots   []mb.ShotRecord
	ended   int
}

func (r *recordingNotifier) MatchStarted(match *mb.Match) { r.started++ }

func (r *recordingNotifier) ShotFired(match *mb.Match, record mb.ShotRecord) {
	r.shots = append(r.shots, record)
}

func (r *recordingNotifier) MatchEnded(match *mb.Match) { r.ended++ }

func TestGameRun(t *testing.T) {
	in := &scriptedReader{lines: []string{
		// first player setup
		"A1 B2",
		"A1 A3",
		"A1",
		"A1 2B",
		"A1 A2",
		"",
		// second player setup
		"C3 C4",
		"",
		// first player shoots
		"Z9",
		"C3",
		"",
		// second player shoots
		"D4",
		"",
		// first player repeats, then sinks
		"C3",
		"c4",
	}}
	var out bytes.Buffer
	notifier := &recordingNotifier{}
	bmm := mb.NewBattleshipMatchManager()

	game := console.NewGame(in, &out, bmm,
		console.WithBoard(4, destroyerOnly),
		console.WithNotifiers(notifier),
		console.WithoutClearScreen(),
	)

	winner, err := game.Run("Player 1", "Player 2")
	require.NoError(t, err)
	require.Equal(t, "Player 1", winner.Name())

	text := out.String()
	require.Contains(t, text, "Player 1, place your ships on the game field")
	require.Contains(t, text, "Enter the coordinates of the Destroyer (2 cells):")
	require.Contains(t, text, "Ships are placed horizontally or vertically")
	require.Contains(t, text, "Wrong length of the Destroyer! It must be 2 cells.")
	require.Contains(t, text, "exactly two coordinates")
	require.Contains(t, text, "Invalid coordinate format")
	require.Contains(t, text, "Destroyer placed successfully.")
	require.Contains(t, text, "You entered the wrong coordinates!")
	require.Contains(t, text, "You hit a ship!")
	require.Contains(t, text, "You missed!")
	require.Contains(t, text, "You already fired at C3.")
	require.Contains(t, text, "You sank the last ship. You won. Congratulations!")
	require.NotContains(t, text, "\033[H\033[2J")

	require.Equal(t, 1, notifier.started)
	require.Equal(t, 1, notifier.ended)
	require.Len(t, notifier.shots, 3)
	require.Equal(t, mb.ShotSunk, notifier.shots[2].Outcome)
	require.Equal(t, "Destroyer", notifier.shots[2].SunkShip)

	require.Empty(t, bmm.Matches())
	require.Contains(t, in.prompts, "> ")
}

func TestGameRunInputClosed(t *testing.T) {
	in := &scriptedReader{lines: []string{"A1 A2", "", "C3 C4", "", "B1"}}
	notifier := &recordingNotifier{}
	bmm := mb.NewBattleshipMatchManager()

	game := console.NewGame(in, io.Discard, bmm,
		console.WithBoard(4, destroyerOnly),
		console.WithNotifiers(notifier),
	)

	_, err := game.Run("Player 1", "Player 2")
	require.True(t, errors.Is(err, io.EOF), "expected EOF, got: %v", err)
	require.Equal(t, 1, notifier.started)
	require.Equal(t, 1, notifier.ended)
	require.Len(t, notifier.shots, 1)
	require.Empty(t, bmm.Matches())
}

func TestGameRunInputClosedDuringSetup(t *testing.T) {
	in := &scriptedReader{lines: []string{"A1 A2"}}
	notifier := &recordingNotifier{}

	game := console.NewGame(in, io.Discard, mb.NewBattleshipMatchManager(),
		console.WithBoard(4, destroyerOnly),
		console.WithNotifiers(notifier),
	)

	_, err := game.Run("Player 1", "Player 2")
	require.ErrorIs(t, err, io.EOF)
	require.Zero(t, notifier.started)
	require.Zero(t, notifier.ended)
}

func TestPrintGrid(t *testing.T) {
	grid := mb.NewGridWithFleet(3, destroyerOnly)
	require.Equal(t, mb.Placed, grid.TryPlaceShip("Destroyer", mb.NewCoordinates(1, 0), mb.NewCoordinates(1, 1)))
	grid.ApplyShot(mb.NewCoordinates(1, 1))
	grid.ApplyShot(mb.NewCoordinates(0, 2))

	tests := []struct {
		name     string
		fog      bool
		expected string
	}{
		{
			name:     "own view",
			fog:      false,
			expected: "  1 2 3\nA ~ ~ M\nB O X ~\nC ~ ~ ~\n",
		},
		{
			name:     "fog of war",
			fog:      true,
			expected: "  1 2 3\nA ~ ~ M\nB ~ X ~\nC ~ ~ ~\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var sb strings.Builder
			console.PrintGrid(&sb, grid, test.fog)
			require.Equal(t, test.expected, sb.String())
		})
	}
}
