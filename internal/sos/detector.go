package sos

import "github.com/rocketscienceinc/sos-client/internal/entity"

// Lines lists every row, column and diagonal, in that order.
var Lines = [8]entity.Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type VerdictKind uint8

const (
	InProgress VerdictKind = iota
	Winner
	Draw
)

func (that VerdictKind) String() string {
	switch that {
	case Winner:
		return "winner"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// Verdict is the state of a board. Line is meaningful only for Winner.
type Verdict struct {
	Kind VerdictKind
	Line entity.Line
}

// Evaluate depends on the nine cells alone. The first line holding S-O-S wins;
// a full board without one is a draw.
func Evaluate(board entity.Board) Verdict {
	for _, line := range Lines {
		if isSOS(board, line) {
			return Verdict{Kind: Winner, Line: line}
		}
	}

	if board.IsFull() {
		return Verdict{Kind: Draw}
	}

	return Verdict{Kind: InProgress}
}

func isSOS(board entity.Board, line entity.Line) bool {
	return board[line[0]] == entity.S && board[line[1]] == entity.O && board[line[2]] == entity.S
}
