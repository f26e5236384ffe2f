package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusOver       Status = "over"
)

const (
	first  = 0
	second = 1
)

// Match sequences the turns of two players over a single board.
// The zero value is a match that has not been started.
type Match struct {
	board   entity.Board
	players [2]entity.Player
	current int
	status  Status
}

func NewMatch() *Match {
	return &Match{status: StatusNotStarted}
}

// Names are the fallbacks for player names left blank.
type Names struct {
	First  string
	Second string
}

// Start begins a new match from any state with the built-in default names.
func (that *Match) Start(firstName, secondName string) {
	that.StartWithNames(firstName, secondName, Names{
		First:  entity.DefaultFirstName,
		Second: entity.DefaultSecondName,
	})
}

// StartWithNames begins a new match from any state. The first player always
// plays X. Blank names fall back to defaults.
func (that *Match) StartWithNames(firstName, secondName string, defaults Names) {
	that.players = [2]entity.Player{
		entity.NewPlayer(firstName, entity.PlayerX, defaults.First),
		entity.NewPlayer(secondName, entity.PlayerO, defaults.Second),
	}
	that.current = first
	that.status = StatusInProgress
	that.board.Reset()
}

// PlayTurn places the current player's mark at cell. It reports whether the
// move was applied. Moves on an occupied cell or after the match is over are
// ignored without an error.
func (that *Match) PlayTurn(cell int) (bool, error) {
	switch that.Status() {
	case StatusNotStarted:
		return false, apperror.ErrMatchNotStarted
	case StatusOver:
		return false, nil
	case StatusInProgress:
	}

	placed, err := that.board.Place(cell, that.players[that.current].Mark)
	if err != nil {
		return false, fmt.Errorf("failed to play turn: %w", err)
	}

	if !placed {
		return false, nil
	}

	that.updateStatus()

	return true, nil
}

// updateStatus finishes the match on a winning or tying move, otherwise passes
// the turn. The winner stays the current player.
func (that *Match) updateStatus() {
	if that.board.Winner() != entity.EmptyCell || that.board.IsTie() {
		that.status = StatusOver
		return
	}

	that.current = toggle(that.current)
}

func toggle(current int) int {
	if current == first {
		return second
	}
	return first
}

// CurrentPlayer returns the player to move. Before Start it is the zero Player.
func (that *Match) CurrentPlayer() entity.Player {
	return that.players[that.current]
}

func (that *Match) IsOver() bool {
	return that.Status() == StatusOver
}

func (that *Match) IsInProgress() bool {
	return that.Status() == StatusInProgress
}

func (that *Match) Status() Status {
	if that.status == "" {
		return StatusNotStarted
	}
	return that.status
}

// Players returns the first (X) and second (O) players.
func (that *Match) Players() [2]entity.Player {
	return that.players
}

// PlayerByMark returns the player owning mark.
func (that *Match) PlayerByMark(mark entity.Mark) (entity.Player, bool) {
	for _, player := range that.players {
		if player.Mark == mark && mark.IsPlayerMark() {
			return player, true
		}
	}

	return entity.Player{}, false
}

// Board returns a copy of the board. Changing it does not affect the match.
func (that *Match) Board() *entity.Board {
	board := that.board
	return &board
}
