package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-engine/mocks/service"
)

var errRedisDown = errors.New("redis down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// threatBoard has X threatening the right column; the only good reply is cell 8.
var threatBoard = entity.Board{
	entity.EmptyCell, entity.EmptyCell, entity.PlayerX,
	entity.EmptyCell, entity.PlayerO, entity.PlayerX,
	entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
}

func TestSolverService_BestMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Searches directly without a cache", func(t *testing.T) {
		// Given: a solver with memoization disabled
		solver := NewSolverService(discardLogger(), nil)

		// When: asking for the best O move
		move, err := solver.BestMove(ctx, threatBoard, entity.PlayerO)

		// Then: O blocks
		require.NoError(t, err)
		assert.Equal(t, entity.Move(8), move)
	})

	t.Run("Returns the cached move on a hit", func(t *testing.T) {
		// Given: a cache that already knows the position
		cache := mockedService.NewMockmoveCache(t)
		solver := NewSolverService(discardLogger(), cache)

		cache.EXPECT().
			Get(mock.Anything, threatBoard, entity.PlayerO).
			Return(entity.Move(8), nil).
			Once()

		// When: asking for the best move
		move, err := solver.BestMove(ctx, threatBoard, entity.PlayerO)

		// Then: the cached move is returned and nothing is written
		require.NoError(t, err)
		assert.Equal(t, entity.Move(8), move)
	})

	t.Run("Stores the searched move on a miss", func(t *testing.T) {
		// Given: a cache without the position
		cache := mockedService.NewMockmoveCache(t)
		solver := NewSolverService(discardLogger(), cache)

		cache.EXPECT().
			Get(mock.Anything, threatBoard, entity.PlayerO).
			Return(entity.NoMove, apperror.ErrMoveNotCached).
			Once()
		cache.EXPECT().
			Set(mock.Anything, threatBoard, entity.PlayerO, entity.Move(8)).
			Return(nil).
			Once()

		// When: asking for the best move
		move, err := solver.BestMove(ctx, threatBoard, entity.PlayerO)

		// Then: the search result is returned and memoized
		require.NoError(t, err)
		assert.Equal(t, entity.Move(8), move)
	})

	t.Run("Cache failures do not fail the request", func(t *testing.T) {
		// Given: a cache that is unreachable
		cache := mockedService.NewMockmoveCache(t)
		solver := NewSolverService(discardLogger(), cache)

		cache.EXPECT().
			Get(mock.Anything, threatBoard, entity.PlayerO).
			Return(entity.NoMove, errRedisDown).
			Once()
		cache.EXPECT().
			Set(mock.Anything, threatBoard, entity.PlayerO, entity.Move(8)).
			Return(errRedisDown).
			Once()

		// When: asking for the best move
		move, err := solver.BestMove(ctx, threatBoard, entity.PlayerO)

		// Then: the search still answers
		require.NoError(t, err)
		assert.Equal(t, entity.Move(8), move)
	})

	t.Run("Invalid player is not memoized", func(t *testing.T) {
		// Given: a cache without the position
		cache := mockedService.NewMockmoveCache(t)
		solver := NewSolverService(discardLogger(), cache)

		cache.EXPECT().
			Get(mock.Anything, entity.Board{}, entity.Mark("Z")).
			Return(entity.NoMove, apperror.ErrMoveNotCached).
			Once()

		// When: searching for an invalid player
		move, err := solver.BestMove(ctx, entity.Board{}, entity.Mark("Z"))

		// Then: the error surfaces and Set is never called
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.True(t, move.IsNone())
	})
}
