package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
	"github.com/rocketscienceinc/sos-client/internal/entity"
)

func (that *Server) handleSessionGet(_ context.Context, c *client, msg *Message) error {
	that.sendSession(c, msg.Action)
	return nil
}

func (that *Server) handleSymbolSelect(_ context.Context, c *client, msg *Message) error {
	var payload SelectPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		that.sendError(c, msg.Action, "symbol is required")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	symbol, err := entity.ParseCell(payload.Symbol)
	if err == nil {
		err = that.gateway.Select(symbol)
	}

	if err != nil {
		that.sendError(c, msg.Action, "Select S or O.")
		return nil
	}

	that.sendSession(c, msg.Action)

	return nil
}

func (that *Server) handleGameJoin(ctx context.Context, c *client, msg *Message) error {
	err := that.gateway.Submit(ctx, entity.CreateOrJoin{Stake: that.stake})
	that.reply(c, msg.Action, err, "Failed to join. Check that your account holds the stake.")

	return nil
}

func (that *Server) handleGamePlace(ctx context.Context, c *client, msg *Message) error {
	var payload PlacePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		that.sendError(c, msg.Action, "cell is required")
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Symbol != "" {
		symbol, err := entity.ParseCell(payload.Symbol)
		if err == nil {
			err = that.gateway.Select(symbol)
		}

		if err != nil {
			that.sendError(c, msg.Action, "Select S or O.")
			return nil
		}
	}

	err := that.gateway.PlaceSelected(ctx, payload.Cell)
	that.reply(c, msg.Action, err, "The move was not accepted by the ledger.")

	return nil
}

func (that *Server) handleGameCancel(ctx context.Context, c *client, msg *Message) error {
	err := that.gateway.Submit(ctx, entity.Cancel{})
	that.reply(c, msg.Action, err, fmt.Sprintf("Failed to cancel. Maybe %s have not passed.", that.timing.CancelWait))

	return nil
}

func (that *Server) handleGameForfeit(ctx context.Context, c *client, msg *Message) error {
	err := that.gateway.Submit(ctx, entity.ForceForfeit{})
	that.reply(c, msg.Action, err, fmt.Sprintf("Failed to call ur2Slow. Maybe %s has not passed.", that.timing.TurnTimeout))

	return nil
}

// reply reports a command result. Rejections carry the given explanation.
func (that *Server) reply(c *client, action string, err error, rejected string) {
	switch {
	case err == nil:
		that.sendSession(c, action)
	case errors.Is(err, apperror.ErrIllegalCommand):
		that.sendError(c, action, err.Error())
	case errors.Is(err, apperror.ErrCommandRejected):
		that.sendError(c, action, rejected)
	default:
		that.sendError(c, action, "The ledger is unreachable, try again later.")
	}
}

func selectedString(symbol entity.Cell) string {
	if !symbol.IsSymbol() {
		return ""
	}

	return symbol.String()
}
