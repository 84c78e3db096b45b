package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

const prompt = "> "

// Notifier is told about every stage of a match played on the console.
type Notifier interface {
	MatchStarted(match *mb.Match)
	ShotFired(match *mb.Match, record mb.ShotRecord)
	MatchEnded(match *mb.Match)
}

// Game runs one hot-seat match: both players place their fleets on
// the same terminal and then take turns passing the device.
type Game struct {
	in           LineReader
	out          io.Writer
	matchManager mb.MatchManager
	notifiers    []Notifier
	gridSize     int
	fleet        mb.Fleet
	clearScreen  bool
}

type Option func(*Game)

func WithNotifiers(notifiers ...Notifier) Option {
	return func(g *Game) {
		g.notifiers = append(g.notifiers, notifiers...)
	}
}

// WithBoard swaps the default 10x10 board and fleet, for tests.
func WithBoard(gridSize int, fleet mb.Fleet) Option {
	return func(g *Game) {
		g.gridSize = gridSize
		g.fleet = fleet
	}
}

func WithoutClearScreen() Option {
	return func(g *Game) {
		g.clearScreen = false
	}
}

func NewGame(in LineReader, out io.Writer, matchManager mb.MatchManager, opts ...Option) *Game {
	g := &Game{
		in:           in,
		out:          out,
		matchManager: matchManager,
		gridSize:     mb.DefaultGridSize,
		fleet:        mb.DefaultFleet,
		clearScreen:  true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run plays a full match between the two named players and returns the
// winner. It fails only when the input ends before the match does.
func (g *Game) Run(firstName, secondName string) (*mb.Player, error) {
	first, err := g.setupPlayer(firstName)
	if err != nil {
		return nil, err
	}

	second, err := g.setupPlayer(secondName)
	if err != nil {
		return nil, err
	}

	match, err := g.matchManager.CreateMatch(first, second)
	if err != nil {
		return nil, err
	}
	defer func() {
		for _, n := range g.notifiers {
			n.MatchEnded(match)
		}
		g.matchManager.TerminateMatch(match.Uuid())
	}()

	for _, n := range g.notifiers {
		n.MatchStarted(match)
	}
	fmt.Fprintf(g.out, "Match %s started. Spectators can join with this id.\n", match.Uuid())

	for {
		if err := g.takeTurn(match); err != nil {
			return nil, err
		}
		if winner, over := match.IsOver(); over {
			return winner, nil
		}
	}
}

func (g *Game) setupPlayer(name string) (*mb.Player, error) {
	player := mb.NewPlayer(name, mb.NewGridWithFleet(g.gridSize, g.fleet))
	grid := player.Grid()

	fmt.Fprintf(g.out, "%s, place your ships on the game field\n", name)
	PrintGrid(g.out, grid, false)

	for _, class := range grid.RemainingShips() {
		for {
			fmt.Fprintf(g.out, "Enter the coordinates of the %s (%d cells):\n", class.Name, class.Length)
			line, err := g.readLine()
			if err != nil {
				return nil, err
			}

			start, end, ok := g.parsePlacement(line)
			if !ok {
				continue
			}

			outcome := grid.TryPlaceShip(class.Name, start, end)
			if outcome == mb.Placed {
				fmt.Fprintf(g.out, "%s placed successfully.\n", class.Name)
				PrintGrid(g.out, grid, false)
				break
			}
			fmt.Fprintln(g.out, placementMessage(class, outcome))
		}
	}

	if err := g.passDevice(); err != nil {
		return nil, err
	}
	return player, nil
}

func (g *Game) parsePlacement(line string) (mb.Coordinates, mb.Coordinates, bool) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		fmt.Fprintln(g.out, "Error! You must enter exactly two coordinates separated by a space (e.g., A1 A5).")
		return mb.Coordinates{}, mb.Coordinates{}, false
	}

	coords := make([]mb.Coordinates, 0, 2)
	for _, token := range tokens {
		c, err := mb.ParseCoordinates(token, g.gridSize)
		if err != nil {
			fmt.Fprintln(g.out, g.parseMessage(err))
			return mb.Coordinates{}, mb.Coordinates{}, false
		}
		coords = append(coords, c)
	}
	return coords[0], coords[1], true
}

func (g *Game) takeTurn(match *mb.Match) error {
	shooter, opponent := match.CurrentPlayer(), match.Opponent()

	PrintGrid(g.out, opponent.Grid(), true)
	fmt.Fprintln(g.out, separator)
	PrintGrid(g.out, shooter.Grid(), false)
	fmt.Fprintln(g.out)
	fmt.Fprintf(g.out, "%s, it's your turn:\n", shooter.Name())

	var outcome mb.ShotOutcome
	for {
		line, err := g.readLine()
		if err != nil {
			return err
		}

		c, err := mb.ParseCoordinates(line, g.gridSize)
		if err != nil {
			fmt.Fprintln(g.out, "Error! You entered the wrong coordinates! Try again:")
			continue
		}

		outcome, err = match.ShootAt(c)
		if err != nil {
			return err
		}
		if outcome.ConsumesTurn() {
			break
		}

		if outcome == mb.ShotAlreadyShot {
			fmt.Fprintf(g.out, "Error! You already fired at %s. Try again:\n", c)
			continue
		}
		fmt.Fprintln(g.out, "Error! You entered the wrong coordinates! Try again:")
	}

	record, _ := match.LastShot()
	for _, n := range g.notifiers {
		n.ShotFired(match, record)
	}

	switch outcome {
	case mb.ShotMiss:
		fmt.Fprintln(g.out, "You missed!")
	case mb.ShotHit:
		fmt.Fprintln(g.out, "You hit a ship!")
	case mb.ShotSunk:
		if _, over := match.IsOver(); over {
			fmt.Fprintln(g.out, "You sank the last ship. You won. Congratulations!")
			return nil
		}
		fmt.Fprintf(g.out, "You sank the %s!\n", record.SunkShip)
	}

	return g.passDevice()
}

func (g *Game) passDevice() error {
	fmt.Fprintln(g.out, "Press Enter and pass the move to another player")
	if _, err := g.in.ReadLine(""); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if g.clearScreen {
		fmt.Fprint(g.out, clearScreenSeq)
	}
	return nil
}

func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadLine(prompt)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

func (g *Game) parseMessage(err error) string {
	switch {
	case errors.Is(err, cerr.ErrOutOfRange):
		return fmt.Sprintf("Error! Coordinates are out of bounds. Please enter values between A-%c and 1-%d.", rune('A'+g.gridSize-1), g.gridSize)
	default:
		return "Error! Invalid coordinate format. Please use the format LetterNumber (e.g., A5)."
	}
}

func placementMessage(class mb.ShipClass, outcome mb.PlacementOutcome) string {
	switch outcome {
	case mb.RejectedOverlap:
		return "Error! The ship overlaps with another ship. Try again:"
	case mb.RejectedAdjacent:
		return "Error! You placed it too close to another one. Try again:"
	case mb.RejectedOutOfBounds:
		return "Error! The ship does not fit on the game field. Try again:"
	case mb.RejectedNotStraight:
		return "Error! Wrong ship location! Ships are placed horizontally or vertically. Try again:"
	case mb.RejectedLengthMismatch:
		return fmt.Sprintf("Error! Wrong length of the %s! It must be %d cells. Try again:", class.Name, class.Length)
	default:
		return fmt.Sprintf("Error! Cannot place %s (%s). Try again:", class.Name, outcome)
	}
}
