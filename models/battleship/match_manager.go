package battleship

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

type MatchManager interface {
	CreateMatch(first, second *Player) (*Match, error)
	GetMatch(matchUuid string) (*Match, error)
	TerminateMatch(matchUuid string)
	Matches() []string
}

type BattleshipMatchManager struct {
	matches map[string]*Match
	mu      sync.RWMutex
}

var _ MatchManager = (*BattleshipMatchManager)(nil)

func NewBattleshipMatchManager() *BattleshipMatchManager {
	return &BattleshipMatchManager{
		matches: make(map[string]*Match, 10),
	}
}

func (bmm *BattleshipMatchManager) CreateMatch(first, second *Player) (*Match, error) {
	matchUuid := uuid.NewString()[:6]

	match, err := NewMatch(matchUuid, first, second)
	if err != nil {
		return nil, err
	}

	bmm.mu.Lock()
	bmm.matches[matchUuid] = match
	bmm.mu.Unlock()

	return match, nil
}

func (bmm *BattleshipMatchManager) GetMatch(matchUuid string) (*Match, error) {
	bmm.mu.RLock()
	match, prs := bmm.matches[matchUuid]
	bmm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrMatchNotFound(matchUuid)
	}

	return match, nil
}

func (bmm *BattleshipMatchManager) TerminateMatch(matchUuid string) {
	bmm.mu.Lock()
	delete(bmm.matches, matchUuid)
	bmm.mu.Unlock()
}

// Matches returns the uuids of all live matches, sorted.
func (bmm *BattleshipMatchManager) Matches() []string {
	bmm.mu.RLock()
	defer bmm.mu.RUnlock()

	uuids := make([]string, 0, len(bmm.matches))
	for matchUuid := range bmm.matches {
		uuids = append(uuids, matchUuid)
	}
	sort.Strings(uuids)
	return uuids
}
