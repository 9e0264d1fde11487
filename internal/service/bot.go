package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// DefaultOptimalRate is the share of medium turns played with the exact search.
const DefaultOptimalRate = 0.6

type BotService interface {
	SelectMove(ctx context.Context, board entity.Board, player entity.Mark, difficulty entity.Difficulty) (entity.Move, error)
}

type botService struct {
	logger      *slog.Logger
	solver      SolverService
	rnd         Random
	optimalRate float64
}

func NewBotService(logger *slog.Logger, solver SolverService, rnd Random, optimalRate float64) BotService {
	return &botService{
		logger:      logger,
		solver:      solver,
		rnd:         rnd,
		optimalRate: optimalRate,
	}
}

// SelectMove picks a move for player according to difficulty. A full board yields entity.NoMove.
func (that *botService) SelectMove(ctx context.Context, board entity.Board, player entity.Mark, difficulty entity.Difficulty) (entity.Move, error) {
	log := that.logger.With("method", "SelectMove", "player", player, "difficulty", difficulty)

	if !player.IsPlayer() {
		return entity.NoMove, fmt.Errorf("%w: got %q", apperror.ErrInvalidPlayer, player)
	}

	if board.IsFull() {
		log.Debug("board is full, no move to make")
		return entity.NoMove, nil
	}

	switch difficulty {
	case entity.EasyDifficulty:
		return RandomMove(board, that.rnd), nil
	case entity.MediumDifficulty:
		if that.rnd.Float64() < that.optimalRate {
			return that.optimal(ctx, board, player)
		}
		return RandomMove(board, that.rnd), nil
	case entity.HardDifficulty:
		return that.optimal(ctx, board, player)
	default:
		return entity.NoMove, fmt.Errorf("%w: got %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

func (that *botService) optimal(ctx context.Context, board entity.Board, player entity.Mark) (entity.Move, error) {
	move, err := that.solver.BestMove(ctx, board, player)
	if err != nil {
		return entity.NoMove, fmt.Errorf("failed to get optimal move: %w", err)
	}

	return move, nil
}
