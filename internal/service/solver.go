package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type SolverService interface {
	BestMove(ctx context.Context, board entity.Board, player entity.Mark) (entity.Move, error)
}

type moveCache interface {
	Get(ctx context.Context, board entity.Board, player entity.Mark) (entity.Move, error)
	Set(ctx context.Context, board entity.Board, player entity.Mark, move entity.Move) error
}

type solverService struct {
	logger *slog.Logger
	cache  moveCache
}

// NewSolverService runs the exact search, memoizing results in cache. A nil cache disables memoization.
func NewSolverService(logger *slog.Logger, cache moveCache) SolverService {
	return &solverService{
		logger: logger,
		cache:  cache,
	}
}

func (that *solverService) BestMove(ctx context.Context, board entity.Board, player entity.Mark) (entity.Move, error) {
	if that.cache == nil {
		return that.search(board, player)
	}

	log := that.logger.With("method", "BestMove", "board", board.String(), "player", player)

	move, err := that.cache.Get(ctx, board, player)
	if err == nil {
		log.Debug("solved position found in cache", "move", int(move))
		return move, nil
	}

	if !errors.Is(err, apperror.ErrMoveNotCached) {
		log.Error("failed to read move cache", "error", err)
	}

	move, err = that.search(board, player)
	if err != nil {
		return entity.NoMove, err
	}

	if err = that.cache.Set(ctx, board, player, move); err != nil {
		log.Error("failed to write move cache", "error", err)
	}

	return move, nil
}

func (that *solverService) search(board entity.Board, player entity.Mark) (entity.Move, error) {
	move, err := tictactoe.BestMove(board, player)
	if err != nil {
		return entity.NoMove, fmt.Errorf("failed to search best move: %w", err)
	}

	return move, nil
}
