package entity

import "github.com/ethereum/go-ethereum/common"

// Event is anything the reconciler ingests: ledger events plus the local
// acknowledgements of accepted commands.
type Event interface {
	isEvent()
	Kind() string
}

// SessionCreated is the ledger's NewGame event. SecondPlayer is NoOpponent
// while the creator waits in the lobby.
type SessionCreated struct {
	FirstPlayer  common.Address
	SecondPlayer common.Address
	SessionID    SessionID
}

// MoveMade is the ledger's MoveEvent. Symbol Blank together with Placement 0
// marks a timeout forfeit of Player.
type MoveMade struct {
	Player    common.Address
	Symbol    Cell
	Placement uint8
	SessionID SessionID
}

// JoinAcknowledged is raised locally once the ledger accepted the stake.
type JoinAcknowledged struct{}

// CancelAcknowledged is raised locally once the ledger accepted a cancel.
type CancelAcknowledged struct{}

func (SessionCreated) isEvent()     {}
func (MoveMade) isEvent()           {}
func (JoinAcknowledged) isEvent()   {}
func (CancelAcknowledged) isEvent() {}

func (SessionCreated) Kind() string     { return "session_created" }
func (MoveMade) Kind() string           { return "move_made" }
func (JoinAcknowledged) Kind() string   { return "join_acknowledged" }
func (CancelAcknowledged) Kind() string { return "cancel_acknowledged" }

func (that SessionCreated) Involves(player common.Address) bool {
	if player == NoOpponent {
		return false
	}

	return that.FirstPlayer == player || that.SecondPlayer == player
}

func (that MoveMade) IsForfeit() bool {
	return that.Symbol == Blank && that.Placement == 0
}

// Subscription is a live, ordered feed of ledger events.
// Err yields at most one value; Events is closed when the feed stops.
// Replayed is closed once the requested history has been received from
// Events; without a replay it is closed from the start.
type Subscription interface {
	Events() <-chan Event
	Replayed() <-chan struct{}
	Err() <-chan error
	Unsubscribe()
}
