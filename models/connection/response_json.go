package connection

import (
	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

// RespBoard is one player's grid as the opponent sees it.
type RespBoard struct {
	Player      string   `json:"player"`
	Rows        []string `json:"rows"`
	SunkenShips int      `json:"sunken_ships"`
	ShotsFired  int      `json:"shots_fired"`
}

func NewRespBoard(player *mb.Player) RespBoard {
	view := player.Grid().Render(true)
	rows := make([]string, len(view))
	for i, row := range view {
		rows[i] = string(row)
	}

	return RespBoard{
		Player:      player.Name(),
		Rows:        rows,
		SunkenShips: player.SunkenShips(),
		ShotsFired:  player.ShotsFired(),
	}
}

type RespBoards struct {
	Turn          int         `json:"turn"`
	CurrentPlayer string      `json:"current_player"`
	Status        string      `json:"status"`
	Boards        []RespBoard `json:"boards"`
}

func NewRespBoards(match *mb.Match) RespBoards {
	players := match.Players()
	boards := make([]RespBoard, 0, len(players))
	for _, p := range players {
		boards = append(boards, NewRespBoard(p))
	}

	return RespBoards{
		Turn:          match.Turn(),
		CurrentPlayer: match.CurrentPlayer().Name(),
		Status:        match.Status().String(),
		Boards:        boards,
	}
}

type RespShot struct {
	Turn        int       `json:"turn"`
	Shooter     string    `json:"shooter"`
	Target      string    `json:"target"`
	Coordinates string    `json:"coordinates"`
	Outcome     string    `json:"outcome"`
	SunkShip    string    `json:"sunk_ship,omitempty"`
	TargetBoard RespBoard `json:"target_board"`

	// Cells of the ship sunk by this shot
	DefenderSunkenShipCoords []mb.Coordinates `json:"defender_sunken_ship_coords,omitempty"`
}

func NewRespShot(record mb.ShotRecord) RespShot {
	defender := record.Defender()
	resp := RespShot{
		Turn:        record.Turn,
		Shooter:     record.Shooter,
		Target:      record.Target,
		Coordinates: record.Coordinates.String(),
		Outcome:     record.Outcome.String(),
		SunkShip:    record.SunkShip,
		TargetBoard: NewRespBoard(defender),
	}

	if record.Outcome == mb.ShotSunk {
		if ship := defender.Grid().ShipAt(record.Coordinates); ship != nil {
			resp.DefenderSunkenShipCoords = ship.Coordinates()
		}
	}
	return resp
}

type RespGameOver struct {
	Winner string `json:"winner"`
	Turns  int    `json:"turns"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
