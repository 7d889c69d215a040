package entity

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
)

// SessionID identifies a game on a multi-session ledger. It is empty on a
// single-session ledger, where the contract hosts exactly one game.
type SessionID string

// NoOpponent is the ledger's "second seat is free" marker.
var NoOpponent = common.Address{}

// GameSession is the local view of one game. It is a value: every transition
// returns a new session with Version incremented and leaves the receiver untouched.
type GameSession struct {
	ID           SessionID
	Local        common.Address
	FirstPlayer  common.Address
	SecondPlayer common.Address
	Board        Board
	Phase        Phase
	Version      uint64
}

func NewSession(local common.Address) GameSession {
	return GameSession{
		Local: local,
		Phase: Configuring{},
	}
}

// Supersede discards the session and starts a fresh one for the same local player.
// The version keeps growing so observers can order snapshots across games.
func (that GameSession) Supersede() GameSession {
	fresh := NewSession(that.Local)
	fresh.Version = that.Version + 1

	return fresh
}

// IsBound reports whether the ledger has announced which game this session is.
func (that GameSession) IsBound() bool {
	return that.FirstPlayer != NoOpponent
}

func (that GameSession) HasOpponent() bool {
	return that.IsBound() && that.SecondPlayer != NoOpponent
}

// IsParticipant reports whether player holds one of the two seats.
func (that GameSession) IsParticipant(player common.Address) bool {
	if player == NoOpponent {
		return false
	}

	return player == that.FirstPlayer || player == that.SecondPlayer
}

func (that GameSession) Opponent() common.Address {
	if that.FirstPlayer == that.Local {
		return that.SecondPlayer
	}

	return that.FirstPlayer
}

func (that GameSession) IsEnded() bool {
	_, ok := that.Phase.(Ended)
	return ok
}

func (that GameSession) IsPlaying() bool {
	_, ok := that.Phase.(Playing)
	return ok
}

func (that GameSession) IsWaiting() bool {
	_, ok := that.Phase.(WaitingInLobby)
	return ok
}

func (that GameSession) IsConfiguring() bool {
	_, ok := that.Phase.(Configuring)
	return ok
}

func (that GameSession) Result() Result {
	if ended, ok := that.Phase.(Ended); ok {
		return ended.Result
	}

	return ResultNone
}

// Bind records the seats announced by the ledger. Phase is left as is.
func (that GameSession) Bind(id SessionID, first, second common.Address) (GameSession, error) {
	if that.IsEnded() {
		return that, apperror.ErrSessionEnded
	}

	that.ID = id
	that.FirstPlayer = first
	that.SecondPlayer = second
	that.Version++

	return that, nil
}

// AwaitOpponent moves Configuring to WaitingInLobby.
func (that GameSession) AwaitOpponent() (GameSession, error) {
	switch that.Phase.(type) {
	case Configuring:
		return that.enter(WaitingInLobby{}), nil
	case Ended:
		return that, apperror.ErrSessionEnded
	default:
		return that, fmt.Errorf("%w: %s to %s", apperror.ErrIllegalTransition, that.Phase, WaitingInLobby{})
	}
}

// Start moves Configuring or WaitingInLobby to Playing once both seats are taken.
func (that GameSession) Start() (GameSession, error) {
	switch that.Phase.(type) {
	case Configuring, WaitingInLobby:
		if !that.HasOpponent() {
			return that, fmt.Errorf("%w: %s to %s without an opponent", apperror.ErrIllegalTransition, that.Phase, Playing{})
		}

		return that.enter(Playing{}), nil
	case Ended:
		return that, apperror.ErrSessionEnded
	default:
		return that, fmt.Errorf("%w: %s to %s", apperror.ErrIllegalTransition, that.Phase, Playing{})
	}
}

// End moves the session to Ended. A lobby can only end by cancellation;
// a game in progress can end with any other result.
func (that GameSession) End(result Result, line *Line) (GameSession, error) {
	switch that.Phase.(type) {
	case WaitingInLobby:
		if result != ResultCancelled {
			return that, fmt.Errorf("%w: lobby cannot end as %s", apperror.ErrIllegalTransition, result)
		}
	case Playing:
		if result == ResultNone || result == ResultCancelled {
			return that, fmt.Errorf("%w: game cannot end as %s", apperror.ErrIllegalTransition, result)
		}
	case Ended:
		return that, apperror.ErrSessionEnded
	default:
		return that, fmt.Errorf("%w: %s to %s", apperror.ErrIllegalTransition, that.Phase, Ended{})
	}

	return that.enter(Ended{Result: result, Line: line}), nil
}

// Place writes a confirmed move onto the board. Only a game in progress accepts moves.
func (that GameSession) Place(index int, symbol Cell) (GameSession, error) {
	if !that.IsPlaying() {
		return that, fmt.Errorf("%w: session is %s", apperror.ErrIllegalPlacement, that.Phase)
	}

	board, err := that.Board.Place(index, symbol)
	if err != nil {
		return that, err
	}

	that.Board = board
	that.Version++

	return that, nil
}

func (that GameSession) enter(phase Phase) GameSession {
	that.Phase = phase
	that.Version++

	return that
}

// SessionView is the JSON shape of a session handed to the presentation layer.
type SessionView struct {
	SessionID    string            `json:"session_id,omitempty"`
	LocalPlayer  string            `json:"local_player"`
	FirstPlayer  string            `json:"first_player,omitempty"`
	SecondPlayer string            `json:"second_player,omitempty"`
	Phase        string            `json:"phase"`
	Result       string            `json:"result"`
	Board        [BoardSize]string `json:"board"`
	WinningLine  []int             `json:"winning_line,omitempty"`
	Version      uint64            `json:"version"`
}

func (that GameSession) View() SessionView {
	view := SessionView{
		SessionID:   string(that.ID),
		LocalPlayer: that.Local.Hex(),
		Phase:       that.Phase.String(),
		Result:      that.Result().String(),
		Board:       that.Board.Strings(),
		Version:     that.Version,
	}

	if that.FirstPlayer != NoOpponent {
		view.FirstPlayer = that.FirstPlayer.Hex()
	}

	if that.SecondPlayer != NoOpponent {
		view.SecondPlayer = that.SecondPlayer.Hex()
	}

	if ended, ok := that.Phase.(Ended); ok && ended.Line != nil {
		view.WinningLine = ended.Line.Placements()
	}

	return view
}

// PlayerKey is the storage key fragment for a player address.
func PlayerKey(player common.Address) string {
	return strings.ToLower(player.Hex())
}
