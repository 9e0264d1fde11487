package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const maxBodyBytes = 1 << 20

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	AIMoveHandler(w http.ResponseWriter, r *http.Request)
}

type moveUseCase interface {
	MakeAIMove(ctx context.Context, req *entity.MoveRequest) (entity.Move, error)
}

type handlers struct {
	logger      *slog.Logger
	moveUseCase moveUseCase
}

func NewHandlers(logger *slog.Logger, moveUseCase moveUseCase) Handlers {
	return &handlers{
		logger:      logger,
		moveUseCase: moveUseCase,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// AIMoveHandler answers POST /ai_move. A body that is not a JSON object is treated as an empty request.
func (that *handlers) AIMoveHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "AIMoveHandler")

	req := that.decodeRequest(r)

	move, err := that.moveUseCase.MakeAIMove(r.Context(), req)
	if errors.Is(err, apperror.ErrInvalidArgument) {
		writeJSON(log, w, http.StatusBadRequest, entity.NewErrorResponse(err))
		return
	}

	if err != nil {
		log.Error("failed to make ai move", "error", err)
		writeJSON(log, w, http.StatusInternalServerError, entity.NewErrorResponse(err))
		return
	}

	writeJSON(log, w, http.StatusOK, entity.MoveResponse{Move: move})
}

func (that *handlers) decodeRequest(r *http.Request) *entity.MoveRequest {
	log := that.logger.With("method", "decodeRequest")

	var req entity.MoveRequest

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		log.Debug("failed to read request body", "error", err)
		return &entity.MoveRequest{}
	}

	if err = json.Unmarshal(body, &req); err != nil {
		log.Debug("malformed request body, using an empty request", "error", err)
		return &entity.MoveRequest{}
	}

	return &req
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("failed to write response", "status", status, "error", err)
	}
}
