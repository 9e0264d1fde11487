package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type MoveUseCase interface {
	MakeAIMove(ctx context.Context, req *entity.MoveRequest) (entity.Move, error)
}

type botService interface {
	SelectMove(ctx context.Context, board entity.Board, player entity.Mark, difficulty entity.Difficulty) (entity.Move, error)
}

type moveUseCase struct {
	logger     *slog.Logger
	botService botService
	defaults   entity.RequestDefaults
}

func NewMoveUseCase(logger *slog.Logger, botService botService, defaults entity.RequestDefaults) MoveUseCase {
	return &moveUseCase{
		logger:     logger,
		botService: botService,
		defaults:   defaults,
	}
}

// MakeAIMove cleans up a raw request and asks the bot for a move.
// The returned error wraps apperror.ErrInvalidArgument when the request is rejected.
func (that *moveUseCase) MakeAIMove(ctx context.Context, req *entity.MoveRequest) (entity.Move, error) {
	log := that.logger.With("method", "MakeAIMove")

	query, err := req.Normalize(that.defaults)
	if err != nil {
		log.Debug("rejected move request", "error", err)
		return entity.NoMove, fmt.Errorf("failed to normalize request: %w", err)
	}

	log = log.With("board", query.Board.String(), "player", query.Player, "difficulty", query.Difficulty)

	move, err := that.botService.SelectMove(ctx, query.Board, query.Player, query.Difficulty)
	if err != nil {
		log.Error("failed to select move", "error", err)
		return entity.NoMove, fmt.Errorf("failed to select move: %w", err)
	}

	log.Debug("move selected", "move", int(move))

	return move, nil
}
