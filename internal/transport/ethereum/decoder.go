package ethereum

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/rocketscienceinc/sos-client/internal/entity"
)

var errMalformedLog = errors.New("malformed contract log")

type decoder struct {
	addressing addressing
}

// Decode turns a NewGame or MoveEvent log into an entity event.
func (that decoder) Decode(log types.Log) (entity.Event, error) {
	if len(log.Topics) == 0 {
		return nil, fmt.Errorf("%w: no topics", errMalformedLog)
	}

	contractABI := that.addressing.ABI()

	event, err := contractABI.EventByID(log.Topics[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedLog, err)
	}

	values := make(map[string]any)
	if err = contractABI.UnpackIntoMap(values, event.Name, log.Data); err != nil {
		return nil, fmt.Errorf("%w: failed to unpack %s: %w", errMalformedLog, event.Name, err)
	}

	sessionID, err := that.addressing.SessionID(values)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errMalformedLog, event.Name, err)
	}

	switch event.Name {
	case eventNewGame:
		first, firstOK := values[fieldFirstPlayer].(common.Address)
		second, secondOK := values[fieldSecondPlayer].(common.Address)
		if !firstOK || !secondOK {
			return nil, fmt.Errorf("%w: %s without player addresses", errMalformedLog, event.Name)
		}

		return entity.SessionCreated{
			FirstPlayer:  first,
			SecondPlayer: second,
			SessionID:    sessionID,
		}, nil
	case eventMove:
		player, playerOK := values[fieldPlayer].(common.Address)
		symbol, symbolOK := values[fieldSymbol].(uint8)
		placement, placementOK := values[fieldPlacement].(uint8)
		if !playerOK || !symbolOK || !placementOK {
			return nil, fmt.Errorf("%w: %s with unexpected field types", errMalformedLog, event.Name)
		}

		return entity.MoveMade{
			Player:    player,
			Symbol:    entity.Cell(symbol),
			Placement: placement,
			SessionID: sessionID,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected event %s", errMalformedLog, event.Name)
	}
}
