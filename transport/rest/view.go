package rest

import (
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type matchView struct {
	Board         [entity.BoardSize]entity.Mark `json:"board"`
	Players       []entity.Player               `json:"players,omitempty"`
	CurrentPlayer *entity.Player                `json:"current_player,omitempty"`
	Status        tictactoe.Status              `json:"status"`
	Over          bool                          `json:"over"`
	Result        tictactoe.Result              `json:"result"`
	Message       string                        `json:"message"`
}

type errorView struct {
	Error string `json:"error"`
}

type startRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

func newMatchView(match *tictactoe.Match) matchView {
	view := matchView{
		Board:   match.Board().Cells(),
		Status:  match.Status(),
		Over:    match.IsOver(),
		Result:  match.Result(),
		Message: tictactoe.Announce(match),
	}

	if view.Status != tictactoe.StatusNotStarted {
		players := match.Players()
		view.Players = players[:]

		current := match.CurrentPlayer()
		view.CurrentPlayer = &current
	}

	return view
}
