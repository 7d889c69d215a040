package entity

import "math/big"

// Command is a user action forwarded to the ledger.
type Command interface {
	isCommand()
	Name() string
}

type CreateOrJoin struct {
	Stake *big.Int
}

// PlaceSymbol targets a 0-based cell. Symbol Blank means nothing is selected.
type PlaceSymbol struct {
	Cell   int
	Symbol Cell
}

type Cancel struct{}

// ForceForfeit claims the opponent let its turn budget run out.
type ForceForfeit struct{}

func (CreateOrJoin) isCommand() {}
func (PlaceSymbol) isCommand()  {}
func (Cancel) isCommand()       {}
func (ForceForfeit) isCommand() {}

func (CreateOrJoin) Name() string { return "create_or_join" }
func (PlaceSymbol) Name() string  { return "place_symbol" }
func (Cancel) Name() string       { return "cancel" }
func (ForceForfeit) Name() string { return "force_forfeit" }
