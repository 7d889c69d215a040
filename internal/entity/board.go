package entity

import (
	"fmt"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
)

// Cell is the content of one board square. S and O match the ledger's symbol codes.
type Cell uint8

const (
	Blank Cell = 0
	S     Cell = 1
	O     Cell = 2
)

const BoardSize = 9

func (that Cell) String() string {
	switch that {
	case S:
		return "S"
	case O:
		return "O"
	case Blank:
		return ""
	default:
		return fmt.Sprintf("Cell(%d)", uint8(that))
	}
}

// IsSymbol reports whether the cell value is a placeable symbol.
func (that Cell) IsSymbol() bool {
	return that == S || that == O
}

// ParseCell accepts "S", "O" and "" (blank).
func ParseCell(value string) (Cell, error) {
	switch value {
	case "S", "s":
		return S, nil
	case "O", "o":
		return O, nil
	case "":
		return Blank, nil
	default:
		return Blank, fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, value)
	}
}

// Line is a triple of 0-based board indices.
type Line [3]int

// Placements returns the line as 1-based placement indices.
func (that Line) Placements() []int {
	return []int{that[0] + 1, that[1] + 1, that[2] + 1}
}

// Board is laid out row-major: 0-1-2 / 3-4-5 / 6-7-8.
type Board [BoardSize]Cell

// Place returns a copy of the board with symbol written at index.
// The receiver is never modified, so a failed placement leaves the board as it was.
func (that Board) Place(index int, symbol Cell) (Board, error) {
	if index < 0 || index >= BoardSize {
		return that, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, index)
	}

	if !symbol.IsSymbol() {
		return that, fmt.Errorf("%w: %s", apperror.ErrInvalidSymbol, symbol)
	}

	if that[index] != Blank {
		return that, fmt.Errorf("%w: cell %d holds %s", apperror.ErrIllegalPlacement, index, that[index])
	}

	that[index] = symbol

	return that, nil
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Blank {
			return false
		}
	}

	return true
}

// SymbolAt returns Blank for indices outside the board.
func (that Board) SymbolAt(index int) Cell {
	if index < 0 || index >= BoardSize {
		return Blank
	}

	return that[index]
}

func (that Board) Strings() [BoardSize]string {
	var out [BoardSize]string
	for i, cell := range that {
		out[i] = cell.String()
	}

	return out
}
