package sos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/sos-client/internal/entity"
)

func boardWith(line entity.Line, a, b, c entity.Cell) entity.Board {
	var board entity.Board
	board[line[0]] = a
	board[line[1]] = b
	board[line[2]] = c

	return board
}

func TestEvaluate_EveryLine(t *testing.T) {
	for _, line := range Lines {
		t.Run("S-O-S wins on "+formatLine(line), func(t *testing.T) {
			// Given: S, O, S along the line and nothing else
			board := boardWith(line, entity.S, entity.O, entity.S)

			// When: the board is evaluated
			verdict := Evaluate(board)

			// Then: the line is reported as the winner
			assert.Equal(t, Verdict{Kind: Winner, Line: line}, verdict)
		})

		t.Run("O-S-O does not win on "+formatLine(line), func(t *testing.T) {
			board := boardWith(line, entity.O, entity.S, entity.O)
			assert.Equal(t, InProgress, Evaluate(board).Kind)
		})

		t.Run("S-S-S does not win on "+formatLine(line), func(t *testing.T) {
			board := boardWith(line, entity.S, entity.S, entity.S)
			assert.Equal(t, InProgress, Evaluate(board).Kind)
		})
	}
}

func TestEvaluate_WinnerWithNoiseElsewhere(t *testing.T) {
	// Given: S-O-S on the anti-diagonal and other symbols around it
	board := entity.Board{
		entity.O, entity.O, entity.S,
		entity.S, entity.O, entity.Blank,
		entity.S, entity.Blank, entity.O,
	}

	// When: the board is evaluated
	verdict := Evaluate(board)

	// Then: the anti-diagonal wins
	assert.Equal(t, Winner, verdict.Kind)
	assert.Equal(t, entity.Line{2, 4, 6}, verdict.Line)
}

func TestEvaluate_Draw(t *testing.T) {
	// Given: a full board without any S-O-S line
	board := entity.Board{
		entity.O, entity.S, entity.O,
		entity.S, entity.S, entity.S,
		entity.O, entity.S, entity.O,
	}

	// When: the board is evaluated
	verdict := Evaluate(board)

	// Then: it is a draw, never a winner or in progress
	assert.Equal(t, Draw, verdict.Kind)
}

func TestEvaluate_FullBoardWithWinnerIsNotDraw(t *testing.T) {
	// Given: a full board whose first row is S-O-S
	board := entity.Board{
		entity.S, entity.O, entity.S,
		entity.S, entity.S, entity.S,
		entity.O, entity.S, entity.O,
	}

	// Then: the winner takes precedence over the draw
	assert.Equal(t, Winner, Evaluate(board).Kind)
}

func TestEvaluate_IsPure(t *testing.T) {
	// Given: a mid-game board
	board := entity.Board{
		entity.S, entity.Blank, entity.Blank,
		entity.Blank, entity.O, entity.Blank,
		entity.Blank, entity.Blank, entity.Blank,
	}

	// When: it is evaluated repeatedly, interleaved with other boards
	first := Evaluate(board)
	_ = Evaluate(entity.Board{entity.S, entity.O, entity.S})
	second := Evaluate(board)

	// Then: the result never changes and the board is untouched
	assert.Equal(t, first, second)
	assert.Equal(t, InProgress, first.Kind)
	assert.Equal(t, entity.S, board[0])
}

func formatLine(line entity.Line) string {
	out := ""
	for i, placement := range line.Placements() {
		if i > 0 {
			out += "-"
		}
		out += string(rune('0' + placement))
	}

	return out
}
