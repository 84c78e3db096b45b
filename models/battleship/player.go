package battleship

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

type Player struct {
	name        string
	grid        *Grid
	shotsFired  int
	matchStatus int
}

func NewPlayer(name string, grid *Grid) *Player {
	return &Player{
		name:        name,
		grid:        grid,
		matchStatus: PlayerMatchStatusUndefined,
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Grid() *Grid {
	return p.grid
}

func (p *Player) ShotsFired() int {
	return p.shotsFired
}

func (p *Player) MatchStatus() int {
	return p.matchStatus
}

// SunkenShips is the number of this player's own ships that are sunk.
func (p *Player) SunkenShips() int {
	return p.grid.SunkenShips()
}

func (p *Player) IsLoser() bool {
	return p.grid.AllSunk()
}
