package connection

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	// time allowed to write one message to the spectator
	writeWait = time.Second * 10

	// must be shorter than the session cleanup interval
	pingPeriod = time.Second * 50

	outboxSize = 32
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

type ConnectionHandler interface {
	handleReadFromConnErr(err error)
	writeToConn(msg interface{}, msgType uint8) error
	onConnErr(err error)
}

type outgoing struct {
	msg     interface{}
	msgType uint8
}

// Session is one spectator connection watching a single match. All
// writes go through the outbox and are done by the session's writer
// goroutine, so no caller ever waits on the socket.
type Session struct {
	id        string
	matchUuid string
	conn      *websocket.Conn

	// unix nanos of the last successful read, write or pong
	lastActive atomic.Int64

	outbox chan outgoing
	closed bool
	mu     sync.Mutex
}

func NewSession(id, matchUuid string, conn *websocket.Conn) *Session {
	s := &Session{
		id:        id,
		matchUuid: matchUuid,
		conn:      conn,
		outbox:    make(chan outgoing, outboxSize),
	}
	s.touch()

	conn.SetPongHandler(func(string) error {
		s.touch()
		return nil
	})
	return s
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) MatchUuid() string {
	return s.matchUuid
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

func (s *Session) touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

// IdleFor reports how long the spectator has been silent.
func (s *Session) IdleFor() time.Duration {
	return time.Since(time.Unix(0, s.lastActive.Load()))
}

func (s *Session) enqueue(msg interface{}, msgType uint8) error {
	switch msgType {
	case MessageTypeJSON:
	case MessageTypeBytes:
		if _, ok := msg.([]byte); !ok {
			return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
		}
	default:
		return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewConnErr(ConnSessionClosed).AddDesc("session " + s.id + " is closed")
	}

	select {
	case s.outbox <- outgoing{msg: msg, msgType: msgType}:
		return nil
	default:
		return NewConnErr(ConnOutboxFull).AddDesc("spectator is not reading")
	}
}

// Finish stops accepting messages. The writer flushes what is queued,
// sends a close frame and closes the connection.
func (s *Session) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.outbox)
	}
}

// Close drops the spectator without flushing.
func (s *Session) Close() {
	s.Finish()
	_ = s.conn.Close()
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case out, ok := <-s.outbox:
			if !ok {
				_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			if err := s.writeToConn(out.msg, out.msgType); err != nil {
				s.Finish()
				return
			}

		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				s.onConnErr(err)
				s.Finish()
				return
			}
		}
	}
}

// A failed write leaves a gorilla connection unusable, so any error
// ends the session.
func (s *Session) writeToConn(msg interface{}, msgType uint8) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		s.onConnErr(err)
		return NewConnErr(ConnLoopBreak).AddDesc(err.Error())
	}

	var err error
	switch msgType {
	case MessageTypeJSON:
		err = s.conn.WriteJSON(msg)
	case MessageTypeBytes:
		err = s.conn.WriteMessage(websocket.TextMessage, msg.([]byte))
	}

	if err != nil {
		s.onConnErr(err)
		return NewConnErr(ConnLoopBreak).AddDesc("breaking write loop due to: " + err.Error())
	}

	s.touch()
	return nil
}

func (s *Session) onConnErr(err error) {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Warn("spectator timed out", "session", s.id, "err", err)
		return
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Info("spectator left", "session", s.id, "err", err)
		return
	}

	/*
		Spectators only send signals. Anything the server cannot read
		(binary frames, bad UTF-8, oversized frames) ends the session.
	*/
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseProtocolError) {
		log.Warn("non-critical error", "session", s.id, "err", err)
		return
	}

	log.Error("unexpected error", "session", s.id, "err", err)
}

// A gorilla connection stays failed after a read error, so there is
// nothing to retry.
func (s *Session) handleReadFromConnErr(err error) {
	s.onConnErr(err)
}

var _ ConnectionHandler = (*Session)(nil)
