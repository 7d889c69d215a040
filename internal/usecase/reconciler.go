package usecase

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
	"github.com/rocketscienceinc/sos-client/internal/entity"
	"github.com/rocketscienceinc/sos-client/internal/sos"
)

const moveNotice = "A move was made. If it was your move, wait for your opponent move."

// Outcome is the typed result of one reconciliation step.
type Outcome struct {
	Event   entity.Event
	Session entity.GameSession

	// Applied is set when Session differs from the session before the step.
	Applied bool
	// Moved is set when a move landed and the game goes on.
	Moved bool
	// Fault wraps apperror.ErrReconciliationFault when the event was dropped.
	Fault error
	// Resync asks the caller to rebuild the session from the ledger.
	Resync bool
}

func (that Outcome) Notice() entity.Notice {
	notice := entity.Notice{
		Session: that.Session.View(),
	}

	if that.Event != nil {
		notice.Event = that.Event.Kind()
	}

	switch {
	case that.Resync:
		notice.Kind = entity.NoticeResync
		notice.Message = that.Fault.Error()
	case that.Fault != nil:
		notice.Kind = entity.NoticeFault
		notice.Message = that.Fault.Error()
	case !that.Applied:
		notice.Kind = entity.NoticeIgnored
	case that.Session.IsEnded():
		notice.Kind = entity.NoticeEnded
		notice.Message = that.Session.Result().Message()
	case that.Moved:
		notice.Kind = entity.NoticeMove
		notice.Message = moveNotice
	default:
		notice.Kind = entity.NoticeApplied
	}

	return notice
}

// Reconcile folds one event into session. A fault or an ignored event returns
// the session it was given.
func Reconcile(session entity.GameSession, event entity.Event) (entity.GameSession, Outcome) {
	switch ev := event.(type) {
	case entity.SessionCreated:
		return reconcileSessionCreated(session, ev)
	case entity.MoveMade:
		return reconcileMove(session, ev)
	case entity.JoinAcknowledged:
		return reconcileJoinAck(session, ev)
	case entity.CancelAcknowledged:
		return reconcileCancelAck(session, ev)
	default:
		return faulted(session, event, fmt.Sprintf("unknown event %T", event))
	}
}

func reconcileSessionCreated(session entity.GameSession, event entity.SessionCreated) (entity.GameSession, Outcome) {
	if !event.Involves(session.Local) {
		return ignored(session, event)
	}

	current := session

	// Once a game has ended, every announcement for the local player is a new
	// game, even with the same seats: single-session ledgers reuse the empty id.
	if session.IsBound() && !session.IsEnded() && sameGame(session, event) {
		switch {
		case event.SecondPlayer == session.SecondPlayer && !session.IsConfiguring():
			return ignored(session, event)
		case session.IsPlaying():
			return faulted(session, event, "seats changed while the game is in progress")
		}
	} else if session.IsBound() || session.IsEnded() {
		current = session.Supersede()
	}

	next, err := current.Bind(event.SessionID, event.FirstPlayer, event.SecondPlayer)
	if err != nil {
		return faultedErr(session, event, err)
	}

	if event.SecondPlayer == entity.NoOpponent {
		if next.IsConfiguring() {
			if next, err = next.AwaitOpponent(); err != nil {
				return faultedErr(session, event, err)
			}
		}

		return applied(next, event)
	}

	if next, err = next.Start(); err != nil {
		return faultedErr(session, event, err)
	}

	return applied(next, event)
}

func reconcileMove(session entity.GameSession, event entity.MoveMade) (entity.GameSession, Outcome) {
	if session.IsEnded() || !session.IsBound() || event.SessionID != session.ID {
		return ignored(session, event)
	}

	if !session.IsParticipant(event.Player) {
		return faulted(session, event, fmt.Sprintf("move by %s who is not seated in this session", event.Player.Hex()))
	}

	if !session.IsPlaying() {
		return faulted(session, event, fmt.Sprintf("move while the session is %s", session.Phase))
	}

	if event.IsForfeit() {
		result := entity.ResultWonByOpponentTimeout
		if event.Player == session.Local {
			result = entity.ResultLostByOwnTimeout
		}

		next, err := session.End(result, nil)
		if err != nil {
			return faultedErr(session, event, err)
		}

		return applied(next, event)
	}

	if event.Placement < 1 || int(event.Placement) > entity.BoardSize {
		return faulted(session, event, fmt.Sprintf("placement %d out of 1..%d", event.Placement, entity.BoardSize))
	}

	if !event.Symbol.IsSymbol() {
		return faulted(session, event, fmt.Sprintf("symbol %s with placement %d", event.Symbol, event.Placement))
	}

	next, err := session.Place(int(event.Placement)-1, event.Symbol)
	if err != nil {
		return faultedErr(session, event, err)
	}

	verdict := sos.Evaluate(next.Board)
	switch verdict.Kind {
	case sos.Winner:
		line := verdict.Line
		next, err = next.End(resultFor(session.Local, event.Player), &line)
	case sos.Draw:
		next, err = next.End(entity.ResultDraw, nil)
	default:
		outcome := Outcome{Event: event, Session: next, Applied: true, Moved: true}
		return next, outcome
	}

	if err != nil {
		return faultedErr(session, event, err)
	}

	return applied(next, event)
}

func reconcileJoinAck(session entity.GameSession, event entity.JoinAcknowledged) (entity.GameSession, Outcome) {
	current := session
	if session.IsEnded() {
		current = session.Supersede()
	}

	if !current.IsConfiguring() {
		// The ledger's event overtook the acknowledgement.
		return ignored(session, event)
	}

	next, err := current.AwaitOpponent()
	if err != nil {
		return faultedErr(session, event, err)
	}

	return applied(next, event)
}

func reconcileCancelAck(session entity.GameSession, event entity.CancelAcknowledged) (entity.GameSession, Outcome) {
	if !session.IsWaiting() {
		return ignored(session, event)
	}

	next, err := session.End(entity.ResultCancelled, nil)
	if err != nil {
		return faultedErr(session, event, err)
	}

	return applied(next, event)
}

func sameGame(session entity.GameSession, event entity.SessionCreated) bool {
	return session.ID == event.SessionID && session.FirstPlayer == event.FirstPlayer
}

// resultFor attributes a board win to whoever completed the pattern.
func resultFor(local, mover common.Address) entity.Result {
	if mover == local {
		return entity.ResultWon
	}

	return entity.ResultLost
}

func applied(next entity.GameSession, event entity.Event) (entity.GameSession, Outcome) {
	return next, Outcome{Event: event, Session: next, Applied: true}
}

func ignored(session entity.GameSession, event entity.Event) (entity.GameSession, Outcome) {
	return session, Outcome{Event: event, Session: session}
}

func faulted(session entity.GameSession, event entity.Event, reason string) (entity.GameSession, Outcome) {
	return session, Outcome{
		Event:   event,
		Session: session,
		Fault:   fmt.Errorf("%w: %s", apperror.ErrReconciliationFault, reason),
	}
}

func faultedErr(session entity.GameSession, event entity.Event, err error) (entity.GameSession, Outcome) {
	return session, Outcome{
		Event:   event,
		Session: session,
		Fault:   fmt.Errorf("%w: %w", apperror.ErrReconciliationFault, err),
	}
}

// Reconciler owns the current session. Ingest must be called from a single
// goroutine; Session may be read from anywhere.
type Reconciler struct {
	logger         *slog.Logger
	faultThreshold int

	current atomic.Pointer[entity.GameSession]

	mu     sync.Mutex
	faults int
}

func NewReconciler(logger *slog.Logger, local common.Address, faultThreshold int) *Reconciler {
	reconciler := &Reconciler{
		logger:         logger.With("component", "reconciler"),
		faultThreshold: faultThreshold,
	}

	session := entity.NewSession(local)
	reconciler.current.Store(&session)

	return reconciler
}

func (that *Reconciler) Session() entity.GameSession {
	return *that.current.Load()
}

// Ingest applies one event and reports what happened.
func (that *Reconciler) Ingest(event entity.Event) Outcome {
	log := that.logger.With("method", "Ingest", "event", event.Kind())

	previous := that.Session()
	next, outcome := Reconcile(previous, event)

	that.mu.Lock()
	defer that.mu.Unlock()

	if outcome.Fault != nil {
		that.faults++
		log.Warn("reconciliation fault, event dropped", "error", outcome.Fault, "consecutive", that.faults)

		if that.faultThreshold > 0 && that.faults >= that.faultThreshold {
			outcome.Resync = true
			log.Warn("session looks desynchronized, resync requested")
		}

		return outcome
	}

	if !outcome.Applied {
		log.Debug("event ignored", "phase", previous.Phase.String())
		return outcome
	}

	that.faults = 0
	that.current.Store(&next)

	if previous.Phase.String() != next.Phase.String() {
		log.Info("phase changed", "from", previous.Phase.String(), "to", next.Phase.String(), "result", next.Result().String())
	}

	return outcome
}

// Reset drops the session so it can be rebuilt from a replay.
func (that *Reconciler) Reset() {
	that.mu.Lock()
	defer that.mu.Unlock()

	fresh := that.Session().Supersede()
	that.current.Store(&fresh)
	that.faults = 0

	that.logger.Info("session reset", "version", fresh.Version)
}
