package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playAll(t *testing.T, match *Match, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		placed, err := match.PlayTurn(cell)
		require.NoError(t, err)
		require.True(t, placed, "cell %d", cell)
	}
}

func TestMatch_Start(t *testing.T) {
	t.Run("Starts with named players", func(t *testing.T) {
		// Given: a new match
		match := NewMatch()
		require.Equal(t, StatusNotStarted, match.Status())

		// When: the match is started
		match.Start("Alice", "Bob")

		// Then: Alice plays X first on an empty board
		assert.Equal(t, StatusInProgress, match.Status())
		assert.False(t, match.IsOver())
		assert.Equal(t, entity.Player{Name: "Alice", Mark: entity.PlayerX}, match.CurrentPlayer())
		assert.Equal(t, [2]entity.Player{
			{Name: "Alice", Mark: entity.PlayerX},
			{Name: "Bob", Mark: entity.PlayerO},
		}, match.Players())
		assert.Equal(t, entity.Board{}, *match.Board())
	})

	t.Run("Uses default names for empty input", func(t *testing.T) {
		// Given: a new match
		match := NewMatch()

		// When: the match is started without names
		match.Start("", "")

		// Then: default names are used
		players := match.Players()
		assert.Equal(t, entity.DefaultFirstName, players[0].Name)
		assert.Equal(t, entity.DefaultSecondName, players[1].Name)
	})

	t.Run("Uses given fallback names for blank input", func(t *testing.T) {
		// Given: a new match
		match := NewMatch()

		// When: the match is started with whitespace and custom fallbacks
		match.StartWithNames("  ", " Bob ", Names{First: "Host", Second: "Guest"})

		// Then: the blank name falls back and the other is trimmed
		players := match.Players()
		assert.Equal(t, entity.Player{Name: "Host", Mark: entity.PlayerX}, players[0])
		assert.Equal(t, entity.Player{Name: "Bob", Mark: entity.PlayerO}, players[1])
		assert.Equal(t, StatusInProgress, match.Status())
	})

	t.Run("Restart resets a finished match", func(t *testing.T) {
		// Given: a match X has won
		match := NewMatch()
		match.Start("Alice", "Bob")
		playAll(t, match, 0, 1, 3, 4, 6)
		require.True(t, match.IsOver())

		// When: a new match is started on the same instance
		match.Start("Carol", "Dave")

		// Then: the board is empty and the match is in progress again
		assert.Equal(t, StatusInProgress, match.Status())
		assert.Equal(t, 0, match.Board().Count())
		assert.Equal(t, "Carol", match.CurrentPlayer().Name)
	})
}

func TestMatch_PlayTurn(t *testing.T) {
	t.Run("Two moves alternate the current player", func(t *testing.T) {
		// Given: a started match
		match := NewMatch()
		match.Start("Alice", "Bob")

		// When: X plays cell 0
		playAll(t, match, 0)

		// Then: it is O's turn
		assert.Equal(t, entity.PlayerO, match.CurrentPlayer().Mark)

		// When: O plays cell 4
		playAll(t, match, 4)

		// Then: it is X's turn again
		assert.Equal(t, entity.PlayerX, match.CurrentPlayer().Mark)
		assert.Equal(t, entity.Board{entity.PlayerX, "", "", "", entity.PlayerO, "", "", "", ""}, *match.Board())
	})

	t.Run("Occupied cell does not advance the turn", func(t *testing.T) {
		// Given: a match where X took cell 0
		match := NewMatch()
		match.Start("Alice", "Bob")
		playAll(t, match, 0)
		before := *match.Board()

		// When: O tries cell 0
		placed, err := match.PlayTurn(0)

		// Then: nothing changes and O is still to move
		require.NoError(t, err)
		assert.False(t, placed)
		assert.Equal(t, before, *match.Board())
		assert.Equal(t, entity.PlayerO, match.CurrentPlayer().Mark)
	})

	t.Run("Column win ends the match on the fifth move", func(t *testing.T) {
		// Given: a started match
		match := NewMatch()
		match.Start("Alice", "Bob")

		// When: X,O,X,O,X play 0,1,3,4,6
		playAll(t, match, 0, 1, 3, 4)
		require.False(t, match.IsOver())
		playAll(t, match, 6)

		// Then: X wins with the first column and the winner stays current
		assert.True(t, match.IsOver())
		assert.Equal(t, entity.PlayerX, match.Board().Winner())
		assert.Equal(t, entity.PlayerX, match.CurrentPlayer().Mark)
		assert.Equal(t, Result{
			Outcome: OutcomeWin,
			Winner:  &entity.Player{Name: "Alice", Mark: entity.PlayerX},
		}, match.Result())
	})

	t.Run("Full board without line is a tie", func(t *testing.T) {
		// Given: a started match
		match := NewMatch()
		match.Start("Alice", "Bob")

		// When: all cells are filled leaving every line mixed
		// X O X
		// X O O
		// O X X
		playAll(t, match, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the match is a tie
		assert.True(t, match.IsOver())
		assert.True(t, match.Board().IsTie())
		assert.Equal(t, entity.EmptyCell, match.Board().Winner())
		assert.Equal(t, Result{Outcome: OutcomeTie}, match.Result())
	})

	t.Run("Win on the last cell is not a tie", func(t *testing.T) {
		// Given: a started match
		match := NewMatch()
		match.Start("Alice", "Bob")

		// When: X completes the main diagonal with the ninth move
		// X O X
		// O X O
		// O X X
		playAll(t, match, 0, 1, 2, 3, 4, 5, 7, 6, 8)

		// Then: X wins
		assert.True(t, match.IsOver())
		assert.False(t, match.Board().IsTie())
		assert.Equal(t, OutcomeWin, match.Result().Outcome)
	})

	t.Run("Move after game over is ignored", func(t *testing.T) {
		// Given: a match X has won
		match := NewMatch()
		match.Start("Alice", "Bob")
		playAll(t, match, 0, 1, 3, 4, 6)
		board, current := *match.Board(), match.CurrentPlayer()

		// When: another move is attempted
		placed, err := match.PlayTurn(8)

		// Then: board and current player are unchanged
		require.NoError(t, err)
		assert.False(t, placed)
		assert.Equal(t, board, *match.Board())
		assert.Equal(t, current, match.CurrentPlayer())
	})

	t.Run("Error before start", func(t *testing.T) {
		// Given: a match that was never started
		var match Match

		// When: a move is attempted
		placed, err := match.PlayTurn(0)

		// Then: ErrMatchNotStarted is returned
		require.ErrorIs(t, err, apperror.ErrMatchNotStarted)
		assert.False(t, placed)
		assert.Equal(t, Result{Outcome: OutcomeNotStarted}, match.Result())
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		for _, cell := range []int{-1, 9, 20} {
			// Given: a started match
			match := NewMatch()
			match.Start("Alice", "Bob")

			// When: an out of range cell is played
			placed, err := match.PlayTurn(cell)

			// Then: ErrInvalidIndex is returned and X is still to move
			require.ErrorIs(t, err, entity.ErrInvalidIndex)
			assert.False(t, placed)
			assert.Equal(t, entity.PlayerX, match.CurrentPlayer().Mark)
		}
	})
}

func TestMatch_BoardIsACopy(t *testing.T) {
	// Given: a started match
	match := NewMatch()
	match.Start("Alice", "Bob")

	// When: the returned board is modified
	board := match.Board()
	_, err := board.Place(0, entity.PlayerO)
	require.NoError(t, err)

	// Then: the match board stays empty
	assert.Equal(t, 0, match.Board().Count())
}

func TestAnnounce(t *testing.T) {
	match := NewMatch()
	assert.Equal(t, "Enter player names to start", Announce(match))

	match.Start("Alice", "Bob")
	assert.Equal(t, "Alice(X)'s turn", Announce(match))

	playAll(t, match, 0)
	assert.Equal(t, "Bob(O)'s turn", Announce(match))

	playAll(t, match, 1, 3, 4, 6)
	assert.Equal(t, "Alice(X) wins!", Announce(match))

	match.Start("Alice", "Bob")
	playAll(t, match, 0, 1, 2, 4, 3, 5, 7, 6, 8)
	assert.Equal(t, "Tie!", Announce(match))
}
