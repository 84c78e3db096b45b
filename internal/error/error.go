package error

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat   = errors.New("invalid coordinate format")
	ErrOutOfRange      = errors.New("coordinate out of range")
	ErrNotStraight     = errors.New("ship must be placed horizontally or vertically")
	ErrLengthMismatch  = errors.New("ship length does not match the fleet manifest")
	ErrFleetIncomplete = errors.New("fleet is not fully placed")
	ErrMatchOver       = errors.New("match is already over")
	ErrNotOpponentGrid = errors.New("target grid does not belong to the opponent")
	ErrMatchNotExists  = errors.New("match does not exist")
	ErrSessionNotFound = errors.New("session not found")
)

func ErrCoordinateInvalidFormat(text string) error {
	return fmt.Errorf("%w: %q (expected a letter followed by a number, e.g. A5)", ErrInvalidFormat, text)
}

func ErrCoordinateOutOfRange(text string, gridSize int) error {
	return fmt.Errorf("%w: %q (rows A-%c, columns 1-%d)", ErrOutOfRange, text, rune('A'+gridSize-1), gridSize)
}

func ErrShipNotStraight(start, end fmt.Stringer) error {
	return fmt.Errorf("%w\tstart: %s\tend: %s", ErrNotStraight, start, end)
}

func ErrShipLengthMismatch(name string, expected, got int) error {
	return fmt.Errorf("%w\tship: %s\texpected: %d\tgot: %d", ErrLengthMismatch, name, expected, got)
}

func ErrPlayerFleetIncomplete(playerName string, remaining int) error {
	return fmt.Errorf("%w\tplayer: %s\tships remaining: %d", ErrFleetIncomplete, playerName, remaining)
}

func ErrMatchIsOver(matchUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrMatchOver, matchUuid)
}

func ErrTargetNotOpponentGrid(shooterName string) error {
	return fmt.Errorf("%w\tshooter: %s", ErrNotOpponentGrid, shooterName)
}

func ErrMatchNotFound(matchUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrMatchNotExists, matchUuid)
}

func ErrSessionNotExists(sessionId string) error {
	return fmt.Errorf("%w, id: %s", ErrSessionNotFound, sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session is nil, id: %s", sessionId)
}
