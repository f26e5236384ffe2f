package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const maxBodyBytes = 1 << 12

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	GetMatch(w http.ResponseWriter, r *http.Request)
	StartMatch(w http.ResponseWriter, r *http.Request)
	PlayTurn(w http.ResponseWriter, r *http.Request)
	EndMatch(w http.ResponseWriter, r *http.Request)
}

type matchService interface {
	Start(ctx context.Context, sessionID, firstName, secondName string) (*tictactoe.Match, error)
	PlayTurn(ctx context.Context, sessionID string, cell int) (*tictactoe.Match, error)
	GetMatch(ctx context.Context, sessionID string) (*tictactoe.Match, error)
	EndSession(ctx context.Context, sessionID string) error
}

type handlers struct {
	logger       *slog.Logger
	matchService matchService
	sessionTTL   time.Duration
}

func NewHandlers(logger *slog.Logger, matchService matchService, sessionTTL time.Duration) Handlers {
	return &handlers{
		logger:       logger.With("component", "rest"),
		matchService: matchService,
		sessionTTL:   sessionTTL,
	}
}

func (that *handlers) GetMatch(w http.ResponseWriter, r *http.Request) {
	sessionID := that.sessionID(w, r)

	match, err := that.matchService.GetMatch(r.Context(), sessionID)
	if err != nil {
		that.writeError(w, "GetMatch", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newMatchView(match))
}

func (that *handlers) StartMatch(w http.ResponseWriter, r *http.Request) {
	sessionID := that.sessionID(w, r)

	var req startRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorView{Error: "invalid request body"})
		return
	}

	match, err := that.matchService.Start(r.Context(), sessionID, req.Player1, req.Player2)
	if err != nil {
		that.writeError(w, "StartMatch", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newMatchView(match))
}

func (that *handlers) PlayTurn(w http.ResponseWriter, r *http.Request) {
	sessionID := that.sessionID(w, r)

	var req turnRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorView{Error: "cell is required"})
		return
	}

	match, err := that.matchService.PlayTurn(r.Context(), sessionID, *req.Cell)
	if err != nil {
		that.writeError(w, "PlayTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newMatchView(match))
}

func (that *handlers) EndMatch(w http.ResponseWriter, r *http.Request) {
	sessionID := that.sessionID(w, r)

	if err := that.matchService.EndSession(r.Context(), sessionID); err != nil {
		that.writeError(w, "EndMatch", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidIndex):
		that.writeJSON(w, http.StatusBadRequest, errorView{Error: "cell must be between 0 and 8"})
	case errors.Is(err, apperror.ErrMatchNotStarted):
		that.writeJSON(w, http.StatusConflict, errorView{Error: "match is not started"})
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorView{Error: "Internal Server Error"})
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
