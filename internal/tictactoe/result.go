package tictactoe

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

type Outcome string

const (
	OutcomeNotStarted Outcome = "not_started"
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWin        Outcome = "win"
	OutcomeTie        Outcome = "tie"
)

// Result is the outcome of a match. Winner is set only for OutcomeWin.
type Result struct {
	Outcome Outcome        `json:"outcome"`
	Winner  *entity.Player `json:"winner,omitempty"`
}

func (that *Match) Result() Result {
	switch that.Status() {
	case StatusNotStarted:
		return Result{Outcome: OutcomeNotStarted}
	case StatusInProgress:
		return Result{Outcome: OutcomeInProgress}
	case StatusOver:
	}

	if winner, ok := that.PlayerByMark(that.board.Winner()); ok {
		return Result{Outcome: OutcomeWin, Winner: &winner}
	}

	return Result{Outcome: OutcomeTie}
}

// Announce returns the line shown to the players: whose turn it is, or how
// the match ended.
func Announce(match *Match) string {
	result := match.Result()

	switch result.Outcome {
	case OutcomeNotStarted:
		return "Enter player names to start"
	case OutcomeInProgress:
		return match.CurrentPlayer().String() + "'s turn"
	case OutcomeWin:
		return result.Winner.String() + " wins!"
	case OutcomeTie:
		return "Tie!"
	default:
		return ""
	}
}
