package connection

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// newConnPair returns the server and client ends of one websocket.
func newConnPair(t *testing.T) (*websocket.Conn, *websocket.Conn) {
	t.Helper()
	serverConns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(ts.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case server := <-serverConns:
		t.Cleanup(func() { server.Close() })
		return server, client
	case <-time.After(5 * time.Second):
		t.Fatalf("expected server side connection\tgot: timeout")
		return nil, nil
	}
}

func TestBroadcast(t *testing.T) {
	bsm := NewBattleshipSessionManager()

	watching, watchingClient := newConnPair(t)
	other, otherClient := newConnPair(t)
	closed, _ := newConnPair(t)

	bsm.GenerateNewSession("abc123", watching)
	bsm.GenerateNewSession("zzz999", other)
	dropped := bsm.GenerateNewSession("abc123", closed)
	dropped.Close()

	msg := NewMatchMessage(CodeShot, "abc123", NoPayload(true))
	require.Equal(t, 1, bsm.Broadcast("abc123", msg))

	_, err := bsm.FindSession(dropped.Id())
	require.Error(t, err)
	require.Len(t, bsm.MatchSessions("abc123"), 1)

	require.NoError(t, watchingClient.SetReadDeadline(time.Now().Add(5*time.Second)))
	var received Message[NoPayload]
	require.NoError(t, watchingClient.ReadJSON(&received))
	require.Equal(t, CodeShot, received.Code)
	require.Equal(t, "abc123", received.MatchUuid)

	require.NoError(t, otherClient.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err = otherClient.ReadMessage()
	require.Error(t, err, "spectator of another match must not receive the message")
}

func TestBroadcastDropsFullOutbox(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	conn, _ := newConnPair(t)

	// no writer goroutine, so nothing drains the outbox
	session := NewSession("stuck", "abc123", conn)
	bsm.mu.Lock()
	bsm.sessions[session.Id()] = session
	bsm.mu.Unlock()

	msg := NewMatchMessage(CodeShot, "abc123", NoPayload(true))
	for i := 0; i < outboxSize; i++ {
		require.Equal(t, 1, bsm.Broadcast("abc123", msg))
	}

	done := make(chan int, 1)
	go func() { done <- bsm.Broadcast("abc123", msg) }()

	select {
	case delivered := <-done:
		require.Equal(t, 0, delivered)
	case <-time.After(time.Second):
		t.Fatalf("expected broadcast to return\tgot: blocked on a full outbox")
	}

	_, err := bsm.FindSession(session.Id())
	require.Error(t, err)

	err = bsm.WriteToSessionConn(session, msg, MessageTypeJSON)
	connErr, ok := err.(ConnErr)
	require.True(t, ok, "expected ConnErr\tgot: %T", err)
	require.Equal(t, ConnSessionClosed, connErr.Code())
}

func TestFinishFlushesQueuedMessages(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	conn, client := newConnPair(t)
	session := bsm.GenerateNewSession("abc123", conn)

	for _, code := range []uint8{CodeShot, CodeGameOver, CodeMatchTerminated} {
		require.NoError(t, bsm.WriteToSessionConn(session, NewMessage[NoPayload](code), MessageTypeJSON))
	}
	session.Finish()

	require.NoError(t, client.SetReadDeadline(time.Now().Add(5*time.Second)))
	for _, code := range []uint8{CodeShot, CodeGameOver, CodeMatchTerminated} {
		var received Message[NoPayload]
		require.NoError(t, client.ReadJSON(&received))
		require.Equal(t, code, received.Code)
	}

	_, _, err := client.ReadMessage()
	require.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "expected normal closure\tgot: %v", err)
}

func TestReadFromSessionConnEndsOnError(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	conn, client := newConnPair(t)
	session := bsm.GenerateNewSession("abc123", conn)

	require.NoError(t, client.WriteMessage(websocket.TextMessage, []byte(`{"code":6}`)))
	_, payload, err := bsm.ReadFromSessionConn(session)
	require.NoError(t, err)
	require.JSONEq(t, `{"code":6}`, string(payload))

	require.NoError(t, client.Close())

	start := time.Now()
	_, _, err = bsm.ReadFromSessionConn(session)
	require.Error(t, err)
	require.Less(t, time.Since(start), time.Second, "read error must not be retried")
}

func TestFindSession(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	conn, _ := newConnPair(t)
	session := bsm.GenerateNewSession("abc123", conn)

	tests := []struct {
		name      string
		sessionId string
		expectErr bool
	}{
		{name: "existing session", sessionId: session.Id(), expectErr: false},
		{name: "unknown session", sessionId: "nope", expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			found, err := bsm.FindSession(test.sessionId)
			if test.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "abc123", found.MatchUuid())
		})
	}

	bsm.TerminateSession(session.Id())
	_, err := bsm.FindSession(session.Id())
	require.Error(t, err)
}

func TestCleanupStale(t *testing.T) {
	bsm := NewBattleshipSessionManager(WithCleanupInterval(time.Minute))

	staleConn, _ := newConnPair(t)
	freshConn, _ := newConnPair(t)
	longLivedConn, longLivedClient := newConnPair(t)

	stale := bsm.GenerateNewSession("abc123", staleConn)
	stale.lastActive.Store(time.Now().Add(-2 * time.Minute).UnixNano())
	fresh := bsm.GenerateNewSession("abc123", freshConn)

	// an old session that keeps talking stays
	longLived := bsm.GenerateNewSession("abc123", longLivedConn)
	longLived.lastActive.Store(time.Now().Add(-2 * time.Minute).UnixNano())
	require.NoError(t, bsm.WriteToSessionConn(longLived, NewMessage[NoPayload](CodeShot), MessageTypeJSON))
	require.NoError(t, longLivedClient.SetReadDeadline(time.Now().Add(5*time.Second)))
	var received Message[NoPayload]
	require.NoError(t, longLivedClient.ReadJSON(&received))
	require.Eventually(t, func() bool { return longLived.IdleFor() < time.Minute }, time.Second, 10*time.Millisecond)

	bsm.cleanupStale()

	_, err := bsm.FindSession(stale.Id())
	require.Error(t, err)
	_, err = bsm.FindSession(fresh.Id())
	require.NoError(t, err)
	_, err = bsm.FindSession(longLived.Id())
	require.NoError(t, err)
}

func TestWriteToSessionConnInvalidType(t *testing.T) {
	bsm := NewBattleshipSessionManager()
	conn, _ := newConnPair(t)
	session := bsm.GenerateNewSession("abc123", conn)

	err := bsm.WriteToSessionConn(session, "not bytes", MessageTypeBytes)
	require.Error(t, err)

	connErr, ok := err.(ConnErr)
	require.True(t, ok, "expected ConnErr\tgot: %T", err)
	require.Equal(t, ConnInvalidMsgType, connErr.Code())
}
