package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// MoveRequest is the raw request as it arrives from a client. Fields are left
// untyped so that malformed values can be cleaned up instead of rejecting the request.
type MoveRequest struct {
	Board      any `json:"board"`
	AIPlayer   any `json:"ai_player"`
	Difficulty any `json:"difficulty"`
}

// MoveQuery is a fully specified, validated request for the engine.
type MoveQuery struct {
	Board      Board
	Player     Mark
	Difficulty Difficulty
}

type RequestDefaults struct {
	Player     Mark
	Difficulty Difficulty
}

var DefaultRequestDefaults = RequestDefaults{
	Player:     PlayerO,
	Difficulty: HardDifficulty,
}

// Normalize turns a raw request into a MoveQuery. The board is padded, truncated
// and cleaned; a missing player or difficulty takes the default. A player that is
// present but is neither X nor O is an error.
func (that *MoveRequest) Normalize(defaults RequestDefaults) (*MoveQuery, error) {
	player, err := normalizePlayer(that.AIPlayer, defaults.Player)
	if err != nil {
		return nil, err
	}

	return &MoveQuery{
		Board:      NormalizeBoard(that.Board),
		Player:     player,
		Difficulty: normalizeDifficulty(that.Difficulty, defaults.Difficulty),
	}, nil
}

// NormalizeBoard keeps "X" and "O" cells and empties everything else. A string
// board is read one character per cell, so "XO--X----" is accepted as well.
func NormalizeBoard(raw any) Board {
	var board Board

	var cells []any
	switch value := raw.(type) {
	case []any:
		cells = value
	case string:
		for _, char := range value {
			cells = append(cells, string(char))
		}
	default:
		return board
	}

	for i := 0; i < BoardSize && i < len(cells); i++ {
		value, ok := cells[i].(string)
		if !ok {
			continue
		}

		if mark := Mark(value); mark.IsPlayer() {
			board[i] = mark
		}
	}

	return board
}

func normalizePlayer(raw any, fallback Mark) (Mark, error) {
	switch value := raw.(type) {
	case nil:
		return fallback, nil
	case string:
		return ParseMark(value)
	default:
		return EmptyCell, fmt.Errorf("%w: got %v", apperror.ErrInvalidPlayer, value)
	}
}

func normalizeDifficulty(raw any, fallback Difficulty) Difficulty {
	value, ok := raw.(string)
	if !ok {
		return fallback
	}

	// matching is exact: "Easy" is not easy
	if difficulty := Difficulty(value); difficulty.IsValid() {
		return difficulty
	}

	return fallback
}

// MoveResponse is the reply to a move request. A NoMove is encoded as null.
type MoveResponse struct {
	Move Move `json:"move"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse turns a rejected request into a message fit for a client.
func NewErrorResponse(err error) ErrorResponse {
	switch {
	case errors.Is(err, apperror.ErrInvalidPlayer):
		return ErrorResponse{Error: `ai_player must be "X" or "O"`}
	case errors.Is(err, apperror.ErrInvalidDifficulty):
		return ErrorResponse{Error: `difficulty must be "easy", "medium" or "hard"`}
	case errors.Is(err, apperror.ErrInvalidArgument):
		return ErrorResponse{Error: "invalid request"}
	default:
		return ErrorResponse{Error: "internal server error"}
	}
}
