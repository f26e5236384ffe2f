package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedMatch(t *testing.T, cells ...int) *tictactoe.Match {
	t.Helper()

	match := tictactoe.NewMatch()
	match.Start("Alice", "Bob")

	for _, cell := range cells {
		_, err := match.PlayTurn(cell)
		require.NoError(t, err)
	}

	return match
}

func TestMemoryMatchRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Save_And_Get", func(t *testing.T) {
		repo := NewMemoryMatchRepository(time.Hour)

		// Given: a match with two moves
		match := startedMatch(t, 0, 4)

		// When: the match is saved and read back
		require.NoError(t, repo.Save(ctx, "session-1", match))
		stored, err := repo.GetBySessionID(ctx, "session-1")

		// Then: the stored match equals the saved one
		require.NoError(t, err)
		assert.Equal(t, *match.Board(), *stored.Board())
		assert.Equal(t, match.CurrentPlayer(), stored.CurrentPlayer())
		assert.Equal(t, match.Status(), stored.Status())
	})

	t.Run("Stored match is detached from the caller", func(t *testing.T) {
		repo := NewMemoryMatchRepository(0)

		// Given: a saved match
		match := startedMatch(t)
		require.NoError(t, repo.Save(ctx, "session-1", match))

		// When: the caller keeps playing without saving
		_, err := match.PlayTurn(0)
		require.NoError(t, err)

		// Then: the stored copy is unchanged
		stored, err := repo.GetBySessionID(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, 0, stored.Board().Count())
	})
}

func TestMemoryMatchRepository_GetBySessionID(t *testing.T) {
	ctx := context.Background()

	t.Run("GetBySessionID_NotFound", func(t *testing.T) {
		repo := NewMemoryMatchRepository(time.Hour)

		match, err := repo.GetBySessionID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		assert.Nil(t, match)
	})

	t.Run("GetBySessionID_Expired", func(t *testing.T) {
		// Given: a repository with a controllable clock
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		repo := &memoryMatch{
			matches: make(map[string]memoryEntry),
			ttl:     time.Minute,
			now:     func() time.Time { return now },
		}
		require.NoError(t, repo.Save(ctx, "session-1", startedMatch(t)))

		// When: the TTL passes
		now = now.Add(time.Minute)

		// Then: the match is gone and the read dropped it
		_, err := repo.GetBySessionID(ctx, "session-1")
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		assert.Empty(t, repo.matches)
	})
}

func TestMemoryMatchRepository_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("Save sweeps expired entries at most once per TTL", func(t *testing.T) {
		// Given: a repository with a controllable clock
		start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		now := start
		repo := &memoryMatch{
			matches: make(map[string]memoryEntry),
			ttl:     time.Minute,
			now:     func() time.Time { return now },
		}

		require.NoError(t, repo.Save(ctx, "session-1", startedMatch(t)))

		now = start.Add(30 * time.Second)
		require.NoError(t, repo.Save(ctx, "session-2", startedMatch(t)))

		// When: session-1 expires and another match is saved
		now = start.Add(time.Minute)
		require.NoError(t, repo.Save(ctx, "session-3", startedMatch(t)))

		// Then: the sweep dropped session-1 only
		assert.Len(t, repo.matches, 2)
		assert.NotContains(t, repo.matches, "session-1")

		// When: session-2 expires before the next sweep is due
		now = start.Add(100 * time.Second)
		require.NoError(t, repo.Save(ctx, "session-4", startedMatch(t)))

		// Then: the save does not scan again
		assert.Len(t, repo.matches, 3)
		assert.Contains(t, repo.matches, "session-2")

		// And: reading the expired entry drops it
		_, err := repo.GetBySessionID(ctx, "session-2")
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
		assert.Len(t, repo.matches, 2)
	})

	t.Run("Reading an expired entry keeps a fresh replacement", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		repo := &memoryMatch{
			matches: make(map[string]memoryEntry),
			ttl:     time.Minute,
			now:     func() time.Time { return now },
		}
		require.NoError(t, repo.Save(ctx, "session-1", startedMatch(t)))

		now = now.Add(time.Minute)
		require.NoError(t, repo.Save(ctx, "session-1", startedMatch(t, 4)))

		repo.evict("session-1")

		stored, err := repo.GetBySessionID(ctx, "session-1")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Board().Count())
	})
}

func TestMemoryMatchRepository_DeleteBySessionID(t *testing.T) {
	ctx := context.Background()

	t.Run("DeleteBySessionID_Success", func(t *testing.T) {
		repo := NewMemoryMatchRepository(time.Hour)
		require.NoError(t, repo.Save(ctx, "session-1", startedMatch(t)))

		require.NoError(t, repo.DeleteBySessionID(ctx, "session-1"))

		_, err := repo.GetBySessionID(ctx, "session-1")
		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})

	t.Run("DeleteBySessionID_NotFound", func(t *testing.T) {
		repo := NewMemoryMatchRepository(time.Hour)

		err := repo.DeleteBySessionID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrMatchNotFound)
	})
}
