package battleship

import (
	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type MatchStatus uint8

const (
	MatchStatusAwaitingShot MatchStatus = iota
	MatchStatusGameOver
)

func (s MatchStatus) String() string {
	switch s {
	case MatchStatusAwaitingShot:
		return "AwaitingShot"
	case MatchStatusGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ShotRecord is one turn-consuming shot of a match.
type ShotRecord struct {
	Turn        int         `json:"turn"`
	Shooter     string      `json:"shooter"`
	Target      string      `json:"target"`
	Coordinates Coordinates `json:"coordinates"`
	Outcome     ShotOutcome `json:"outcome"`

	// Name of the ship sunk by this shot, if any
	SunkShip string `json:"sunk_ship,omitempty"`

	defender *Player
}

// Defender is the player whose grid was shot at.
func (r ShotRecord) Defender() *Player {
	return r.defender
}

type Match struct {
	uuid    string
	players [2]*Player
	shooter int
	status  MatchStatus
	winner  *Player
	history []ShotRecord
}

// NewMatch starts a match with first to shoot. Both fleets have to be
// fully placed before a match can exist.
func NewMatch(uuid string, first, second *Player) (*Match, error) {
	for _, p := range []*Player{first, second} {
		if !p.grid.IsFleetComplete() {
			return nil, cerr.ErrPlayerFleetIncomplete(p.name, len(p.grid.RemainingShips()))
		}
	}

	return &Match{
		uuid:    uuid,
		players: [2]*Player{first, second},
		status:  MatchStatusAwaitingShot,
		history: make([]ShotRecord, 0, first.grid.size*first.grid.size),
	}, nil
}

func (m *Match) Uuid() string {
	return m.uuid
}

func (m *Match) Status() MatchStatus {
	return m.status
}

// returns a slice of players in the order of first then second shooter.
func (m *Match) Players() []*Player {
	return []*Player{m.players[0], m.players[1]}
}

func (m *Match) CurrentPlayer() *Player {
	return m.players[m.shooter]
}

func (m *Match) Opponent() *Player {
	return m.players[1-m.shooter]
}

// IsOver returns the winner once the match has ended.
func (m *Match) IsOver() (*Player, bool) {
	return m.winner, m.status == MatchStatusGameOver
}

// Turn is the number of turns played so far.
func (m *Match) Turn() int {
	return len(m.history)
}

func (m *Match) History() []ShotRecord {
	history := make([]ShotRecord, len(m.history))
	copy(history, m.history)
	return history
}

// LastShot returns the most recent turn-consuming shot.
func (m *Match) LastShot() (ShotRecord, bool) {
	if len(m.history) == 0 {
		return ShotRecord{}, false
	}
	return m.history[len(m.history)-1], true
}

// Shoot fires the current player's shot at c on target, which has to be
// the opponent's grid. Repeated and out of bounds shots leave the turn
// with the same player.
func (m *Match) Shoot(target *Grid, c Coordinates) (ShotOutcome, error) {
	if m.status == MatchStatusGameOver {
		return ShotRejected, cerr.ErrMatchIsOver(m.uuid)
	}

	shooter, defender := m.CurrentPlayer(), m.Opponent()
	if target != defender.grid {
		return ShotRejected, cerr.ErrTargetNotOpponentGrid(shooter.name)
	}

	outcome := target.ApplyShot(c)
	if !outcome.ConsumesTurn() {
		return outcome, nil
	}

	shooter.shotsFired++
	record := ShotRecord{
		Turn:        len(m.history) + 1,
		Shooter:     shooter.name,
		Target:      defender.name,
		Coordinates: c,
		Outcome:     outcome,
		defender:    defender,
	}
	if outcome == ShotSunk {
		record.SunkShip = target.ShipAt(c).Name()
	}
	m.history = append(m.history, record)

	if outcome == ShotSunk && target.AllSunk() {
		m.status = MatchStatusGameOver
		m.winner = shooter
		shooter.matchStatus = PlayerMatchStatusWon
		defender.matchStatus = PlayerMatchStatusLost
		return outcome, nil
	}

	m.shooter = 1 - m.shooter
	return outcome, nil
}

// ShootAt fires at the current opponent's grid.
func (m *Match) ShootAt(c Coordinates) (ShotOutcome, error) {
	return m.Shoot(m.Opponent().grid, c)
}
