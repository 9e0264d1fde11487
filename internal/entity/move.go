package entity

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Move is a cell index in [0,8], or NoMove when the board has no empty cell.
type Move int

const NoMove Move = -1

func (that Move) IsNone() bool {
	return that == NoMove
}

// MarshalJSON encodes NoMove as null.
func (that Move) MarshalJSON() ([]byte, error) {
	if that.IsNone() {
		return []byte("null"), nil
	}

	return []byte(strconv.Itoa(int(that))), nil
}

func (that *Move) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = NoMove
		return nil
	}

	var cell int
	if err := json.Unmarshal(data, &cell); err != nil {
		return fmt.Errorf("failed to unmarshal move: %w", err)
	}

	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	*that = Move(cell)

	return nil
}

type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

func (that Difficulty) IsValid() bool {
	switch that {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return true
	default:
		return false
	}
}

func ParseMark(value string) (Mark, error) {
	mark := Mark(value)
	if !mark.IsPlayer() {
		return EmptyCell, fmt.Errorf("%w: got %q", apperror.ErrInvalidPlayer, value)
	}

	return mark, nil
}
