package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidPlayer     = fmt.Errorf("%w: engine player must be X or O", ErrInvalidArgument)
	ErrInvalidDifficulty = fmt.Errorf("%w: unknown difficulty", ErrInvalidArgument)
	ErrInvalidCell       = fmt.Errorf("%w: invalid cell index", ErrInvalidArgument)

	ErrMoveNotCached = errors.New("move is not cached")
)
