package entity

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func decodeRequest(t *testing.T, body string) *MoveRequest {
	t.Helper()

	var req MoveRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	return &req
}

func TestMoveRequest_Normalize(t *testing.T) {
	t.Run("Missing fields take defaults", func(t *testing.T) {
		// Given: an empty request
		req := decodeRequest(t, `{}`)

		// When: normalizing it
		query, err := req.Normalize(DefaultRequestDefaults)

		// Then: the board is empty, O plays at hard
		require.NoError(t, err)
		assert.Equal(t, &MoveQuery{Board: Board{}, Player: PlayerO, Difficulty: HardDifficulty}, query)
	})

	t.Run("Short board is padded and unknown tokens are emptied", func(t *testing.T) {
		// Given: a board with four entries, two of them invalid
		req := decodeRequest(t, `{"board": ["X", null, "o", 7], "ai_player": "X", "difficulty": "easy"}`)

		// When: normalizing it
		query, err := req.Normalize(DefaultRequestDefaults)

		// Then: only the valid mark survives
		require.NoError(t, err)
		assert.Equal(t, Board{PlayerX}, query.Board)
		assert.Equal(t, PlayerX, query.Player)
		assert.Equal(t, EasyDifficulty, query.Difficulty)
	})

	t.Run("Extra cells are ignored", func(t *testing.T) {
		// Given: a board with eleven entries
		req := decodeRequest(t, `{"board": ["", "", "", "", "", "", "", "", "O", "X", "X"]}`)

		// When: normalizing it
		query, err := req.Normalize(DefaultRequestDefaults)

		// Then: everything past index 8 is dropped
		require.NoError(t, err)
		assert.Equal(t, Board{8: PlayerO}, query.Board)
	})

	t.Run("String board is read per character", func(t *testing.T) {
		req := decodeRequest(t, `{"board": "XO--x---O"}`)

		query, err := req.Normalize(DefaultRequestDefaults)

		require.NoError(t, err)
		assert.Equal(t, Board{0: PlayerX, 1: PlayerO, 8: PlayerO}, query.Board)
	})

	t.Run("Board of another type is empty", func(t *testing.T) {
		req := decodeRequest(t, `{"board": {"0": "X"}}`)

		query, err := req.Normalize(DefaultRequestDefaults)

		require.NoError(t, err)
		assert.Equal(t, Board{}, query.Board)
	})

	t.Run("Unknown difficulty falls back to the default", func(t *testing.T) {
		req := decodeRequest(t, `{"difficulty": "nightmare"}`)

		query, err := req.Normalize(RequestDefaults{Player: PlayerX, Difficulty: MediumDifficulty})

		require.NoError(t, err)
		assert.Equal(t, MediumDifficulty, query.Difficulty)
		assert.Equal(t, PlayerX, query.Player)
	})

	t.Run("Invalid player is rejected", func(t *testing.T) {
		for _, body := range []string{`{"ai_player": "Z"}`, `{"ai_player": ""}`, `{"ai_player": 1}`} {
			// Given: a request with an engine player other than X or O
			req := decodeRequest(t, body)

			// When: normalizing it
			query, err := req.Normalize(DefaultRequestDefaults)

			// Then: an invalid argument error is returned
			require.ErrorIs(t, err, apperror.ErrInvalidPlayer, body)
			assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
			assert.Nil(t, query)
		}
	})

	t.Run("Difficulty must match exactly", func(t *testing.T) {
		for _, raw := range []string{"Easy", "EASY", " medium ", "Medium", "HARD", "easy "} {
			// Given: a difficulty that differs from a known one only in case or spacing
			req := &MoveRequest{Difficulty: raw}

			// When: normalizing it
			query, err := req.Normalize(DefaultRequestDefaults)

			// Then: it is unrecognised and plays at hard
			require.NoError(t, err)
			assert.Equal(t, HardDifficulty, query.Difficulty, raw)
		}
	})

	t.Run("Known difficulties are kept", func(t *testing.T) {
		for _, difficulty := range []Difficulty{EasyDifficulty, MediumDifficulty, HardDifficulty} {
			query, err := (&MoveRequest{Difficulty: string(difficulty)}).Normalize(DefaultRequestDefaults)

			require.NoError(t, err)
			assert.Equal(t, difficulty, query.Difficulty)
		}
	})

	t.Run("Null player takes the default", func(t *testing.T) {
		req := decodeRequest(t, `{"ai_player": null}`)

		query, err := req.Normalize(DefaultRequestDefaults)

		require.NoError(t, err)
		assert.Equal(t, PlayerO, query.Player)
	})
}

func TestNewErrorResponse(t *testing.T) {
	t.Run("Invalid player names the field", func(t *testing.T) {
		_, err := ParseMark("Z")

		assert.Equal(t, `ai_player must be "X" or "O"`, NewErrorResponse(err).Error)
	})

	t.Run("Other failures stay opaque", func(t *testing.T) {
		assert.Equal(t, "internal server error", NewErrorResponse(errors.New("redis down")).Error)
	})

	t.Run("Response with no move encodes null", func(t *testing.T) {
		data, err := json.Marshal(MoveResponse{Move: NoMove})

		require.NoError(t, err)
		assert.JSONEq(t, `{"move": null}`, string(data))
	})
}
