package connection

import (
	"encoding/base64"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-hotseat/internal/error"
)

const defaultCleanupInterval = time.Minute * 20

type SessionManager interface {
	GenerateNewSession(matchUuid string, conn *websocket.Conn) *Session
	CleanupPeriodically(stop <-chan struct{})

	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	Broadcast(matchUuid string, msg interface{}) int
	MatchSessions(matchUuid string) []*Session

	// WriteToSessionConn queues msg for the session's writer and never blocks
	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

type SessionManagerOption func(*BattleshipSessionManager)

func WithCleanupInterval(interval time.Duration) SessionManagerOption {
	return func(bsm *BattleshipSessionManager) {
		bsm.cleanupInterval = interval
	}
}

func NewBattleshipSessionManager(opts ...SessionManagerOption) *BattleshipSessionManager {
	initMapSize := 10

	bsm := &BattleshipSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: defaultCleanupInterval,
	}
	for _, opt := range opts {
		opt(bsm)
	}
	return bsm
}

func (bsm *BattleshipSessionManager) GenerateNewSession(matchUuid string, conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, matchUuid, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	go session.writePump()
	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotExists(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

// MatchSessions returns every session watching the match.
func (bsm *BattleshipSessionManager) MatchSessions(matchUuid string) []*Session {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	sessions := make([]*Session, 0, len(bsm.sessions))
	for _, session := range bsm.sessions {
		if session.matchUuid == matchUuid {
			sessions = append(sessions, session)
		}
	}
	return sessions
}

// Broadcast queues msg as JSON for every spectator of the match and
// returns how many sessions accepted it. A session that is closed or
// whose outbox is full is dropped.
func (bsm *BattleshipSessionManager) Broadcast(matchUuid string, msg interface{}) int {
	delivered := 0
	for _, session := range bsm.MatchSessions(matchUuid) {
		if err := bsm.WriteToSessionConn(session, msg, MessageTypeJSON); err != nil {
			log.Warn("dropping spectator", "session", session.id, "match", matchUuid, "err", err)
			session.Close()
			bsm.TerminateSession(session.id)
			continue
		}
		delivered++
	}
	return delivered
}

// To ensure that there are no dangling connections, sessions silent
// for longer than the cleanup interval are closed and removed.
func (bsm *BattleshipSessionManager) CleanupPeriodically(stop <-chan struct{}) {
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			bsm.cleanupStale()
		}
	}
}

func (bsm *BattleshipSessionManager) cleanupStale() {
	assumedClosedConns := 10

	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	toDelete := make([]string, 0, assumedClosedConns)
	for id, session := range bsm.sessions {
		if session.IdleFor() > bsm.cleanupInterval {
			toDelete = append(toDelete, id)
		}
	}

	for _, id := range toDelete {
		bsm.sessions[id].Close()
		delete(bsm.sessions, id)
		log.Info("removed idle spectator session", "session", id)
	}
}

func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	return session.enqueue(msg, msgType)
}

func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	messageType, payload, err := session.conn.ReadMessage()
	if err != nil {
		session.handleReadFromConnErr(err)
		return -1, []byte{}, err
	}

	session.touch()
	return messageType, payload, nil
}
