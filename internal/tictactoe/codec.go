package tictactoe

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// matchState is the wire form of a Match.
type matchState struct {
	Board   entity.Board     `json:"board"`
	Players [2]entity.Player `json:"players"`
	Turn    entity.Mark      `json:"turn,omitempty"`
	Status  Status           `json:"status"`
}

func (that *Match) MarshalJSON() ([]byte, error) {
	state := matchState{
		Board:   that.board,
		Players: that.players,
		Status:  that.Status(),
	}

	if state.Status != StatusNotStarted {
		state.Turn = that.CurrentPlayer().Mark
	}

	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match: %w", err)
	}

	return data, nil
}

// UnmarshalJSON restores a match and rejects states that no sequence of
// turns could have produced.
func (that *Match) UnmarshalJSON(data []byte) error {
	var state matchState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to unmarshal match: %w", err)
	}

	if state.Status == "" {
		state.Status = StatusNotStarted
	}

	current, err := validateState(state)
	if err != nil {
		return err
	}

	that.board = state.Board
	that.players = state.Players
	that.current = current
	that.status = state.Status

	return nil
}

func validateState(state matchState) (int, error) {
	board := &state.Board

	switch state.Status {
	case StatusNotStarted:
		if board.Count() != 0 || state.Players != [2]entity.Player{} {
			return first, fmt.Errorf("%w: match not started but has players or marks", apperror.ErrInvalidMatch)
		}
		return first, nil
	case StatusInProgress, StatusOver:
	default:
		return first, fmt.Errorf("%w: unknown status %q", apperror.ErrInvalidMatch, state.Status)
	}

	if state.Players[first].Mark != entity.PlayerX || state.Players[second].Mark != entity.PlayerO {
		return first, fmt.Errorf("%w: players must hold X and O", apperror.ErrInvalidMatch)
	}

	for _, cell := range board {
		if cell != entity.EmptyCell && !cell.IsPlayerMark() {
			return first, fmt.Errorf("%w: unknown mark %q", apperror.ErrInvalidMatch, cell)
		}
	}

	xCount, oCount := board.CountOf(entity.PlayerX), board.CountOf(entity.PlayerO)
	if xCount != oCount && xCount != oCount+1 {
		return first, fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrInvalidMatch, xCount, oCount)
	}

	// X always opens, so equal counts mean X moves next or O moved last.
	next, last := entity.PlayerX, entity.PlayerO
	if xCount > oCount {
		next, last = entity.PlayerO, entity.PlayerX
	}

	winner := board.Winner()

	if state.Status == StatusInProgress {
		if winner != entity.EmptyCell || board.IsFull() {
			return first, fmt.Errorf("%w: finished board marked in progress", apperror.ErrInvalidMatch)
		}
		if state.Turn != next {
			return first, fmt.Errorf("%w: turn %q, expected %q", apperror.ErrInvalidMatch, state.Turn, next)
		}
		return indexOf(next), nil
	}

	if winner == entity.EmptyCell && !board.IsFull() {
		return first, fmt.Errorf("%w: unfinished board marked over", apperror.ErrInvalidMatch)
	}
	if winner != entity.EmptyCell && winner != last {
		return first, fmt.Errorf("%w: winner %q did not make the last move", apperror.ErrInvalidMatch, winner)
	}
	if state.Turn != last {
		return first, fmt.Errorf("%w: turn %q, expected %q", apperror.ErrInvalidMatch, state.Turn, last)
	}

	return indexOf(last), nil
}

func indexOf(mark entity.Mark) int {
	if mark == entity.PlayerO {
		return second
	}
	return first
}
