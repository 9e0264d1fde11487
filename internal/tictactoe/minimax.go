package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// winScore is the value of an immediate win; every ply of delay costs one point.
const winScore = 10

// search owns the working board for the lifetime of one BestMove call.
type search struct {
	board    entity.Board
	player   entity.Mark
	opponent entity.Mark
}

// BestMove returns the optimal move for player using exhaustive minimax. Ties go to
// the lowest cell index. It returns entity.NoMove when the board has no empty cell.
func BestMove(board entity.Board, player entity.Mark) (entity.Move, error) {
	if !player.IsPlayer() {
		return entity.NoMove, fmt.Errorf("%w: got %q", apperror.ErrInvalidPlayer, player)
	}

	return newSearch(board, player).root(), nil
}

func newSearch(board entity.Board, player entity.Mark) *search {
	return &search{
		board:    board,
		player:   player,
		opponent: player.Opponent(),
	}
}

func (that *search) root() entity.Move {
	bestMove, bestScore := entity.NoMove, math.MinInt

	for cell := range that.board {
		if that.board[cell] != entity.EmptyCell {
			continue
		}

		// strict comparison keeps the first cell among equal scores
		if score := that.try(cell, that.player, 0, false); score > bestScore {
			bestMove, bestScore = entity.Move(cell), score
		}
	}

	return bestMove
}

// try places mark on cell, scores the position and clears the cell again.
func (that *search) try(cell int, mark entity.Mark, depth int, maximizing bool) int {
	that.board[cell] = mark
	score := that.score(depth, maximizing)
	that.board[cell] = entity.EmptyCell

	return score
}

func (that *search) score(depth int, maximizing bool) int {
	switch outcome := that.board.Evaluate(); outcome.Status {
	case entity.StatusWin:
		if outcome.Winner == that.player {
			return winScore - depth
		}
		return depth - winScore
	case entity.StatusDraw:
		return 0
	case entity.StatusInProgress:
	}

	if maximizing {
		best := math.MinInt
		for cell := range that.board {
			if that.board[cell] == entity.EmptyCell {
				best = max(best, that.try(cell, that.player, depth+1, false))
			}
		}
		return best
	}

	best := math.MaxInt
	for cell := range that.board {
		if that.board[cell] == entity.EmptyCell {
			best = min(best, that.try(cell, that.opponent, depth+1, true))
		}
	}

	return best
}
