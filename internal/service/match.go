package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

type MatchService interface {
	Start(ctx context.Context, sessionID, firstName, secondName string) (*tictactoe.Match, error)
	PlayTurn(ctx context.Context, sessionID string, cell int) (*tictactoe.Match, error)
	GetMatch(ctx context.Context, sessionID string) (*tictactoe.Match, error)
	EndSession(ctx context.Context, sessionID string) error
}

type matchRepo interface {
	Save(ctx context.Context, sessionID string, match *tictactoe.Match) error
	GetBySessionID(ctx context.Context, sessionID string) (*tictactoe.Match, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type matchService struct {
	logger    *slog.Logger
	matchRepo matchRepo
	names     tictactoe.Names
	locks     *sessionLocks
}

// NewMatchService applies requests for one session one at a time. names
// replace blank player names when a match starts.
func NewMatchService(logger *slog.Logger, matchRepo matchRepo, names tictactoe.Names) MatchService {
	return &matchService{
		logger:    logger.With("component", "match_service"),
		matchRepo: matchRepo,
		names:     names,
		locks:     newSessionLocks(),
	}
}

func (that *matchService) Start(ctx context.Context, sessionID, firstName, secondName string) (*tictactoe.Match, error) {
	log := that.logger.With("method", "Start", "sessionID", sessionID)

	unlock := that.locks.lock(sessionID)
	defer unlock()

	match := tictactoe.NewMatch()
	match.StartWithNames(firstName, secondName, that.names)

	if err := that.matchRepo.Save(ctx, sessionID, match); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	players := match.Players()
	log.Info("match started", "first", players[0].Name, "second", players[1].Name)

	return match, nil
}

func (that *matchService) PlayTurn(ctx context.Context, sessionID string, cell int) (*tictactoe.Match, error) {
	log := that.logger.With("method", "PlayTurn", "sessionID", sessionID, "cell", cell)

	unlock := that.locks.lock(sessionID)
	defer unlock()

	match, err := that.getOrNew(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	player := match.CurrentPlayer()

	placed, err := match.PlayTurn(cell)
	if err != nil {
		return match, fmt.Errorf("failed to play turn: %w", err)
	}

	if !placed {
		log.Debug("move ignored", "status", match.Status())
		return match, nil
	}

	if err = that.matchRepo.Save(ctx, sessionID, match); err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	log.Debug("move applied", "mark", player.Mark)

	if match.IsOver() {
		log.Info("match finished", "result", tictactoe.Announce(match))
	}

	return match, nil
}

// GetMatch returns the session's match, or a match that has not been started
// when the session has none.
func (that *matchService) GetMatch(ctx context.Context, sessionID string) (*tictactoe.Match, error) {
	return that.getOrNew(ctx, sessionID)
}

func (that *matchService) EndSession(ctx context.Context, sessionID string) error {
	log := that.logger.With("method", "EndSession", "sessionID", sessionID)

	unlock := that.locks.lock(sessionID)
	defer unlock()

	err := that.matchRepo.DeleteBySessionID(ctx, sessionID)
	if errors.Is(err, apperror.ErrMatchNotFound) {
		log.Debug("no match to end")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	log.Info("match ended")

	return nil
}

func (that *matchService) getOrNew(ctx context.Context, sessionID string) (*tictactoe.Match, error) {
	match, err := that.matchRepo.GetBySessionID(ctx, sessionID)
	if errors.Is(err, apperror.ErrMatchNotFound) {
		return tictactoe.NewMatch(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}
