package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places a symbol on a blank cell", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: S is placed on the center cell
		next, err := board.Place(4, S)

		// Then: only the center cell holds S and the original board is untouched
		require.NoError(t, err)
		assert.Equal(t, S, next.SymbolAt(4))
		assert.Equal(t, Board{}, board)
	})

	t.Run("Error on occupied cell leaves the board unchanged", func(t *testing.T) {
		// Given: a board with O in cell 0
		board := Board{O}

		// When: S is placed on the same cell
		next, err := board.Place(0, S)

		// Then: ErrIllegalPlacement is returned and the board still holds O
		require.ErrorIs(t, err, apperror.ErrIllegalPlacement)
		assert.Equal(t, Board{O}, next)

		// And: failing again gives the same result
		again, err := next.Place(0, S)
		require.ErrorIs(t, err, apperror.ErrIllegalPlacement)
		assert.Equal(t, next, again)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: cells outside the board are targeted
		_, errHigh := board.Place(9, S)
		_, errLow := board.Place(-1, O)

		// Then: ErrInvalidCell is returned for both
		assert.ErrorIs(t, errHigh, apperror.ErrInvalidCell)
		assert.ErrorIs(t, errLow, apperror.ErrInvalidCell)
	})

	t.Run("Error on blank symbol", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: Blank is placed
		_, err := board.Place(3, Blank)

		// Then: ErrInvalidSymbol is returned
		assert.ErrorIs(t, err, apperror.ErrInvalidSymbol)
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		assert.False(t, Board{}.IsFull())
	})

	t.Run("Board with one blank cell is not full", func(t *testing.T) {
		board := Board{S, O, S, O, S, O, S, O, Blank}
		assert.False(t, board.IsFull())
	})

	t.Run("Board without blank cells is full", func(t *testing.T) {
		board := Board{S, O, S, O, S, O, S, O, S}
		assert.True(t, board.IsFull())
	})
}

func TestBoard_SymbolAt(t *testing.T) {
	board := Board{S, O}

	assert.Equal(t, S, board.SymbolAt(0))
	assert.Equal(t, O, board.SymbolAt(1))
	assert.Equal(t, Blank, board.SymbolAt(2))
	assert.Equal(t, Blank, board.SymbolAt(42))
}

func TestParseCell(t *testing.T) {
	cell, err := ParseCell("S")
	require.NoError(t, err)
	assert.Equal(t, S, cell)

	cell, err = ParseCell("o")
	require.NoError(t, err)
	assert.Equal(t, O, cell)

	cell, err = ParseCell("")
	require.NoError(t, err)
	assert.Equal(t, Blank, cell)

	_, err = ParseCell("X")
	assert.ErrorIs(t, err, apperror.ErrInvalidSymbol)
}
