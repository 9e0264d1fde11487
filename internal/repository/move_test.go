package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

var board = entity.Board{
	entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
	entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
	entity.EmptyCell, entity.EmptyCell, entity.PlayerX,
}

func TestMoveRepository_Set(t *testing.T) {
	ctx, st := suite.New(t)

	moveRepo := NewMoveRepository(st.Storage, time.Hour)

	// Given: a solved position
	move := entity.Move(1)

	// When: Set is called
	err := moveRepo.Set(ctx, board, entity.PlayerO, move)

	// Then: the move is stored under the position key with a ttl
	require.NoError(t, err)

	value, err := st.Storage.Get(ctx, "move:O:X---O---X").Result()
	require.NoError(t, err)
	assert.Equal(t, "1", value)

	ttl, err := st.Storage.TTL(ctx, "move:O:X---O---X").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestMoveRepository_Get(t *testing.T) {
	t.Run("Get_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		// Given: a stored move
		err := moveRepo.Set(ctx, board, entity.PlayerO, entity.Move(1))
		require.NoError(t, err)

		// When: Get is called for the same position
		move, err := moveRepo.Get(ctx, board, entity.PlayerO)

		// Then: the stored move is returned
		require.NoError(t, err)
		assert.Equal(t, entity.Move(1), move)
	})

	t.Run("Get_NoMove", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		// Given: a full board memoized without a move
		full := entity.Board{
			entity.PlayerX, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerO, entity.PlayerX,
			entity.PlayerO, entity.PlayerX, entity.PlayerO,
		}
		err := moveRepo.Set(ctx, full, entity.PlayerX, entity.NoMove)
		require.NoError(t, err)

		// When: Get is called
		move, err := moveRepo.Get(ctx, full, entity.PlayerX)

		// Then: the absence sentinel round-trips
		require.NoError(t, err)
		assert.True(t, move.IsNone())
	})

	t.Run("Get_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		// Given: the position is stored for X only
		err := moveRepo.Set(ctx, board, entity.PlayerX, entity.Move(2))
		require.NoError(t, err)

		// When: Get is called for O
		move, err := moveRepo.Get(ctx, board, entity.PlayerO)

		// Then: ErrMoveNotCached is returned
		require.ErrorIs(t, err, apperror.ErrMoveNotCached)
		assert.True(t, move.IsNone())
	})

	t.Run("Get_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Storage, 0)

		// Given: an out of range value under the key
		require.NoError(t, st.Storage.Set(ctx, "move:O:X---O---X", "42", 0).Err())

		// When: Get is called
		_, err := moveRepo.Get(ctx, board, entity.PlayerO)

		// Then: the entry is rejected
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})
}
