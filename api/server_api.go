package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
	mc "github.com/saeidalz13/battleship-hotseat/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	URLQueryMatchIDKeyword string = "matchID"
)

var (
	defaultPort = 9191

	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// a fogged 10x10 board pair is well under this
		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// Server is a read-only websocket feed of hot-seat matches. Nothing a
// spectator sends can change a match.
type Server struct {
	port  int
	stage string

	sessionManager mc.SessionManager
	matchManager   mb.MatchManager

	// snapshots hold the latest fogged boards per match. They are only
	// written from the goroutine driving the match, so spectator
	// goroutines never read a match directly.
	snapshots map[string]mc.RespBoards
	mu        sync.RWMutex
}

type Option func(*Server) error

func NewServer(sessionManager mc.SessionManager, matchManager mb.MatchManager, optFuncs ...Option) *Server {
	server := Server{
		port:           defaultPort,
		stage:          StageDev,
		sessionManager: sessionManager,
		matchManager:   matchManager,
		snapshots:      make(map[string]mc.RespBoards),
	}

	for _, opt := range optFuncs {
		if err := opt(&server); err != nil {
			panic(err)
		}
	}

	return &server
}

func WithPort(port int) Option {
	return func(s *Server) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		s.port = port
		return nil
	}
}

func WithStage(stage string) Option {
	return func(s *Server) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		s.stage = stage
		return nil
	}
}

func (s *Server) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", s.port)
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /spectate", s)
	mux.HandleFunc("GET /matches", s.handleMatches)
	return mux
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.matchManager.Matches()); err != nil {
		log.Error("failed to encode live matches", "err", err)
	}
}

func (s *Server) snapshot(matchUuid string) (mc.RespBoards, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	boards, prs := s.snapshots[matchUuid]
	return boards, prs
}

// openSession registers a spectator and queues the session id and the
// current boards. It runs under the same lock as the notifier methods,
// so a spectator either joins before a match ends and gets every later
// message after its boards, or does not join at all.
func (s *Server) openSession(matchUuid string, conn *websocket.Conn) (*mc.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	boards, prs := s.snapshots[matchUuid]
	if !prs {
		return nil, false
	}

	session := s.sessionManager.GenerateNewSession(matchUuid, conn)
	respSessionId := mc.NewMatchMessage(mc.CodeSessionID, matchUuid, mc.RespSessionId{SessionID: session.Id()})
	respBoards := mc.NewMatchMessage(mc.CodeBoards, matchUuid, boards)
	for _, msg := range []interface{}{respSessionId, respBoards} {
		if err := s.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
			log.Error("failed to queue initial spectator message", "session", session.Id(), "err", err)
		}
	}
	return session, true
}

// MatchStarted makes the match visible to spectators.
func (s *Server) MatchStarted(match *mb.Match) {
	s.mu.Lock()
	s.snapshots[match.Uuid()] = mc.NewRespBoards(match)
	s.mu.Unlock()

	log.Info("match open for spectators", "match", match.Uuid())
}

// ShotFired queues the shot and, when it ended the match, the result for
// every spectator of the match.
func (s *Server) ShotFired(match *mb.Match, record mb.ShotRecord) {
	matchUuid := match.Uuid()
	boards := mc.NewRespBoards(match)
	shot := mc.NewMatchMessage(mc.CodeShot, matchUuid, mc.NewRespShot(record))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots[matchUuid] = boards
	s.sessionManager.Broadcast(matchUuid, shot)

	if winner, over := match.IsOver(); over {
		gameOver := mc.NewMatchMessage(mc.CodeGameOver, matchUuid, mc.RespGameOver{
			Winner: winner.Name(),
			Turns:  match.Turn(),
		})
		s.sessionManager.Broadcast(matchUuid, gameOver)
	}
}

// MatchEnded says goodbye to every spectator of the match and closes
// their sessions once the goodbye is flushed.
func (s *Server) MatchEnded(match *mb.Match) {
	matchUuid := match.Uuid()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionManager.Broadcast(matchUuid, mc.NewMatchMessage(mc.CodeMatchTerminated, matchUuid, mc.NoPayload(true)))
	for _, session := range s.sessionManager.MatchSessions(matchUuid) {
		session.Finish()
		s.sessionManager.TerminateSession(session.Id())
	}
	delete(s.snapshots, matchUuid)
}
