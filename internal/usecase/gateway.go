package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
	"github.com/rocketscienceinc/sos-client/internal/entity"
)

type ledgerDep interface {
	JoinOrCreate(ctx context.Context, stake *big.Int) error
	Place(ctx context.Context, id entity.SessionID, placement uint8, symbol entity.Cell) error
	Cancel(ctx context.Context, id entity.SessionID) error
	ForceForfeit(ctx context.Context, id entity.SessionID) error
}

type sessionDep interface {
	Session() entity.GameSession
}

type acknowledgerDep interface {
	Acknowledge(ctx context.Context, event entity.Event) error
}

// CommandRecorder counts submitted commands by outcome.
type CommandRecorder interface {
	Command(name, outcome string)
}

const (
	OutcomeAccepted     = "accepted"
	OutcomeIllegal      = "illegal"
	OutcomeRejected     = "rejected"
	OutcomeConnectivity = "connectivity"
)

// Gateway checks commands against the current session and forwards the
// legal ones to the ledger. It never changes the session itself.
type Gateway struct {
	logger   *slog.Logger
	ledger   ledgerDep
	sessions sessionDep
	acks     acknowledgerDep
	recorder CommandRecorder

	mu       sync.Mutex
	selected entity.Cell
}

func NewGateway(logger *slog.Logger, ledger ledgerDep, sessions sessionDep, acks acknowledgerDep, recorder CommandRecorder) *Gateway {
	return &Gateway{
		logger:   logger.With("component", "gateway"),
		ledger:   ledger,
		sessions: sessions,
		acks:     acks,
		recorder: recorder,
	}
}

// Select remembers the symbol the local player intends to place next.
func (that *Gateway) Select(symbol entity.Cell) error {
	if !symbol.IsSymbol() {
		return fmt.Errorf("%w: %w: %s", apperror.ErrIllegalCommand, apperror.ErrInvalidSymbol, symbol)
	}

	that.mu.Lock()
	that.selected = symbol
	that.mu.Unlock()

	return nil
}

func (that *Gateway) Selected() entity.Cell {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.selected
}

// PlaceSelected places the selected symbol on a 0-based cell. The selection is
// cleared whatever the result.
func (that *Gateway) PlaceSelected(ctx context.Context, cell int) error {
	that.mu.Lock()
	symbol := that.selected
	that.selected = entity.Blank
	that.mu.Unlock()

	return that.Submit(ctx, entity.PlaceSymbol{Cell: cell, Symbol: symbol})
}

// Submit returns nil or an error matching one of apperror.ErrIllegalCommand,
// apperror.ErrCommandRejected or apperror.ErrConnectivityFault.
func (that *Gateway) Submit(ctx context.Context, command entity.Command) error {
	log := that.logger.With("method", "Submit", "command", command.Name(), "command_id", uuid.NewString())

	session := that.sessions.Session()

	if err := precondition(session, command); err != nil {
		log.Info("command refused locally", "phase", session.Phase.String(), "error", err)
		that.recorder.Command(command.Name(), OutcomeIllegal)

		return fmt.Errorf("%w: %w", apperror.ErrIllegalCommand, err)
	}

	log.Debug("forwarding command to ledger", "session_id", session.ID)

	ack, err := that.forward(ctx, session, command)
	if err != nil {
		err = classify(err)
		log.Warn("command failed", "error", err)
		that.recorder.Command(command.Name(), outcomeOf(err))

		return fmt.Errorf("failed to %s: %w", command.Name(), err)
	}

	that.recorder.Command(command.Name(), OutcomeAccepted)
	log.Info("command accepted by ledger")

	if ack != nil {
		if err = that.acks.Acknowledge(ctx, ack); err != nil {
			log.Warn("acknowledgement not delivered", "error", err)
		}
	}

	return nil
}

func (that *Gateway) forward(ctx context.Context, session entity.GameSession, command entity.Command) (entity.Event, error) {
	switch cmd := command.(type) {
	case entity.CreateOrJoin:
		return entity.JoinAcknowledged{}, that.ledger.JoinOrCreate(ctx, cmd.Stake)
	case entity.PlaceSymbol:
		return nil, that.ledger.Place(ctx, session.ID, uint8(cmd.Cell+1), cmd.Symbol)
	case entity.Cancel:
		return entity.CancelAcknowledged{}, that.ledger.Cancel(ctx, session.ID)
	case entity.ForceForfeit:
		return nil, that.ledger.ForceForfeit(ctx, session.ID)
	default:
		return nil, fmt.Errorf("%w: unknown command %T", apperror.ErrIllegalCommand, command)
	}
}

func precondition(session entity.GameSession, command entity.Command) error {
	switch cmd := command.(type) {
	case entity.CreateOrJoin:
		if !session.IsConfiguring() && !session.IsEnded() {
			return fmt.Errorf("cannot join while %s", session.Phase)
		}

		if cmd.Stake == nil || cmd.Stake.Sign() <= 0 {
			return errors.New("stake must be positive")
		}
	case entity.PlaceSymbol:
		if !session.IsPlaying() {
			return fmt.Errorf("cannot place while %s", session.Phase)
		}

		if !cmd.Symbol.IsSymbol() {
			return fmt.Errorf("%w: select S or O first", apperror.ErrInvalidSymbol)
		}

		if cmd.Cell < 0 || cmd.Cell >= entity.BoardSize {
			return fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cmd.Cell)
		}

		if session.Board.SymbolAt(cmd.Cell) != entity.Blank {
			return apperror.ErrIllegalPlacement
		}
	case entity.Cancel:
		if !session.IsWaiting() {
			return fmt.Errorf("cannot cancel while %s", session.Phase)
		}
	case entity.ForceForfeit:
		if !session.IsPlaying() {
			return fmt.Errorf("cannot claim a timeout while %s", session.Phase)
		}
	default:
		return fmt.Errorf("unknown command %T", command)
	}

	return nil
}

// classify keeps the ledger's own verdict and treats anything else as a
// connectivity problem.
func classify(err error) error {
	if errors.Is(err, apperror.ErrIllegalCommand) ||
		errors.Is(err, apperror.ErrCommandRejected) ||
		errors.Is(err, apperror.ErrConnectivityFault) {
		return err
	}

	return fmt.Errorf("%w: %w", apperror.ErrConnectivityFault, err)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, apperror.ErrIllegalCommand):
		return OutcomeIllegal
	case errors.Is(err, apperror.ErrCommandRejected):
		return OutcomeRejected
	}

	return OutcomeConnectivity
}
