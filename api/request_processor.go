package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	mc "github.com/saeidalz13/battleship-hotseat/models/connection"
)

const rejectWriteWait = time.Second * 5

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("could not upgrade spectator connection", "err", err)
		return
	}

	matchUuid := r.URL.Query().Get(URLQueryMatchIDKeyword)
	if _, err := s.matchManager.GetMatch(matchUuid); err != nil {
		msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidMatchID)
		msg.AddError(err.Error(), "no live match with this id")
		_ = conn.SetWriteDeadline(time.Now().Add(rejectWriteWait))
		_ = conn.WriteJSON(msg)
		_ = conn.Close()
		return
	}

	session, ok := s.openSession(matchUuid, conn)
	if !ok {
		msg := mc.NewMessage[mc.NoPayload](mc.CodeInvalidMatchID)
		msg.AddError("", "match has not started or is already over")
		_ = conn.SetWriteDeadline(time.Now().Add(rejectWriteWait))
		_ = conn.WriteJSON(msg)
		_ = conn.Close()
		return
	}
	log.Info("a new spectator connected", "session", session.Id(), "match", matchUuid, "remote", conn.RemoteAddr().String())

	s.processSessionRequests(session)
}

func (s *Server) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()
	matchUuid := session.MatchUuid()

	defer func() {
		session.Finish()
		s.sessionManager.TerminateSession(sessionId)
		log.Info("spectator disconnected", "session", sessionId, "match", matchUuid)
	}()

sessionLoop:
	for {
		_, payload, err := s.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err := s.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {
		case mc.CodeRequestBoards:
			boards, prs := s.snapshot(matchUuid)
			if !prs {
				// match ended while the spectator was connected
				break sessionLoop
			}

			msg := mc.NewMatchMessage(mc.CodeBoards, matchUuid, boards)
			if err := s.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "spectators can only request boards")
			if err := s.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}
