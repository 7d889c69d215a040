package entity

// Phase is one of Configuring, WaitingInLobby, Playing or Ended.
// The set is closed: only types in this package implement it.
type Phase interface {
	isPhase()
	String() string
}

type Configuring struct{}

type WaitingInLobby struct{}

type Playing struct{}

// Ended is terminal. Line is set only when the game was decided on the board.
type Ended struct {
	Result Result
	Line   *Line
}

func (Configuring) isPhase()    {}
func (WaitingInLobby) isPhase() {}
func (Playing) isPhase()        {}
func (Ended) isPhase()          {}

func (Configuring) String() string    { return "configuring" }
func (WaitingInLobby) String() string { return "waiting_in_lobby" }
func (Playing) String() string        { return "playing" }
func (Ended) String() string          { return "ended" }

type Result uint8

const (
	ResultNone Result = iota
	ResultWon
	ResultLost
	ResultDraw
	ResultWonByOpponentTimeout
	ResultLostByOwnTimeout
	ResultCancelled
)

func (that Result) String() string {
	switch that {
	case ResultWon:
		return "won"
	case ResultLost:
		return "lost"
	case ResultDraw:
		return "draw"
	case ResultWonByOpponentTimeout:
		return "won_by_opponent_timeout"
	case ResultLostByOwnTimeout:
		return "lost_by_own_timeout"
	case ResultCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// Message is the user-facing text shown when a session ends with this result.
func (that Result) Message() string {
	switch that {
	case ResultWon:
		return "The game has ended, you won!"
	case ResultLost:
		return "The game has ended, you lost!"
	case ResultDraw:
		return "The game has ended in a draw!"
	case ResultWonByOpponentTimeout:
		return "You won, your opponent ran out of time."
	case ResultLostByOwnTimeout:
		return "You lost, you ran out of time."
	case ResultCancelled:
		return "You left the lobby."
	default:
		return ""
	}
}
