package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MoveRepository memoizes solved positions keyed by board and engine player.
type MoveRepository interface {
	Get(ctx context.Context, board entity.Board, player entity.Mark) (entity.Move, error)
	Set(ctx context.Context, board entity.Board, player entity.Mark, move entity.Move) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository stores entries for ttl. A zero ttl keeps them forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func moveKey(board entity.Board, player entity.Mark) string {
	return "move:" + string(player) + ":" + board.String()
}

func (that *dbMove) Get(ctx context.Context, board entity.Board, player entity.Mark) (entity.Move, error) {
	response, err := that.client.Get(ctx, moveKey(board, player)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.NoMove, apperror.ErrMoveNotCached
	}

	if err != nil {
		return entity.NoMove, fmt.Errorf("failed to get move: %w", err)
	}

	cell, err := strconv.Atoi(response)
	if err != nil {
		return entity.NoMove, fmt.Errorf("failed to parse cached move %q: %w", response, err)
	}

	if cell < int(entity.NoMove) || cell >= entity.BoardSize {
		return entity.NoMove, fmt.Errorf("%w: cached cell %d", apperror.ErrInvalidCell, cell)
	}

	return entity.Move(cell), nil
}

func (that *dbMove) Set(ctx context.Context, board entity.Board, player entity.Mark, move entity.Move) error {
	err := that.client.Set(ctx, moveKey(board, player), strconv.Itoa(int(move)), that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}
