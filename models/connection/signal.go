package connection

const (
	CodeSessionID uint8 = iota

	// The matchID query is missing or names no live match
	CodeInvalidMatchID

	// Both boards of the match under fog of war
	CodeBoards
	CodeShot
	CodeGameOver
	CodeMatchTerminated

	// Spectator asks for the current boards again
	CodeRequestBoards

	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
