package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type memoryEntry struct {
	matchJSON []byte
	expiresAt time.Time
}

type memoryMatch struct {
	mu        sync.RWMutex
	matches   map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	nextSweep time.Time
}

// NewMemoryMatchRepository keeps matches in process memory with the same TTL
// semantics as the redis store. A non-positive ttl disables expiry. Matches
// are stored encoded so callers never share a *Match with the store.
// Expired entries are dropped when read, and a full sweep runs at most once
// per ttl on save.
func NewMemoryMatchRepository(ttl time.Duration) MatchRepository {
	return &memoryMatch{
		matches: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (that *memoryMatch) Save(_ context.Context, sessionID string, match *tictactoe.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	entry := memoryEntry{matchJSON: matchJSON}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.sweep()
	that.matches[sessionID] = entry

	return nil
}

func (that *memoryMatch) GetBySessionID(_ context.Context, sessionID string) (*tictactoe.Match, error) {
	that.mu.RLock()
	entry, ok := that.matches[sessionID]
	that.mu.RUnlock()

	if !ok {
		return nil, apperror.ErrMatchNotFound
	}

	if that.expired(entry) {
		that.evict(sessionID)
		return nil, apperror.ErrMatchNotFound
	}

	match := tictactoe.NewMatch()
	if err := json.Unmarshal(entry.matchJSON, match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return match, nil
}

func (that *memoryMatch) DeleteBySessionID(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.matches[sessionID]
	if !ok {
		return apperror.ErrMatchNotFound
	}

	delete(that.matches, sessionID)

	if that.expired(entry) {
		return apperror.ErrMatchNotFound
	}

	return nil
}

func (that *memoryMatch) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}

// evict drops sessionID if it is still expired under the write lock. A
// concurrent save may have replaced the entry in between.
func (that *memoryMatch) evict(sessionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if entry, ok := that.matches[sessionID]; ok && that.expired(entry) {
		delete(that.matches, sessionID)
	}
}

// sweep must be called with the write lock held.
func (that *memoryMatch) sweep() {
	if that.ttl <= 0 {
		return
	}

	now := that.now()
	if now.Before(that.nextSweep) {
		return
	}

	for sessionID, entry := range that.matches {
		if that.expired(entry) {
			delete(that.matches, sessionID)
		}
	}

	that.nextSweep = now.Add(that.ttl)
}
