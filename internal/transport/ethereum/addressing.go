package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
	"github.com/rocketscienceinc/sos-client/internal/entity"
)

const (
	VariantSingle = "single"
	VariantMulti  = "multi"
)

// addressing decides how a session is named on the wire. It is picked once,
// when the client connects.
type addressing interface {
	Variant() string
	ABI() abi.ABI
	// Args prepends the session identifier when the contract needs one.
	Args(id entity.SessionID, args ...any) ([]any, error)
	SessionID(values map[string]any) (entity.SessionID, error)
}

type singleSession struct{}

func (singleSession) Variant() string { return VariantSingle }
func (singleSession) ABI() abi.ABI    { return singleSessionABI }

func (singleSession) Args(_ entity.SessionID, args ...any) ([]any, error) {
	return args, nil
}

func (singleSession) SessionID(map[string]any) (entity.SessionID, error) {
	return "", nil
}

type multiSession struct{}

func (multiSession) Variant() string { return VariantMulti }
func (multiSession) ABI() abi.ABI    { return multiSessionABI }

func (multiSession) Args(id entity.SessionID, args ...any) ([]any, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: the ledger has not announced the game id yet", apperror.ErrIllegalCommand)
	}

	gameID, ok := new(big.Int).SetString(string(id), 10)
	if !ok || gameID.Sign() < 0 {
		return nil, fmt.Errorf("%w: malformed game id %q", apperror.ErrIllegalCommand, id)
	}

	return append([]any{gameID}, args...), nil
}

func (multiSession) SessionID(values map[string]any) (entity.SessionID, error) {
	gameID, ok := values[fieldGameID].(*big.Int)
	if !ok || gameID == nil {
		return "", fmt.Errorf("missing %s", fieldGameID)
	}

	return entity.SessionID(gameID.String()), nil
}

// detectAddressing asks the contract for its single-game state. The call only
// succeeds on a single-session contract, so a failing call means multi-session.
func detectAddressing(ctx context.Context, caller bind.ContractCaller, contract, from common.Address) (addressing, error) {
	code, err := caller.CodeAt(ctx, contract, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read contract code: %w", apperror.ErrConnectivityFault, err)
	}

	if len(code) == 0 {
		return nil, fmt.Errorf("no contract deployed at %s: %w", contract.Hex(), bind.ErrNoCode)
	}

	probe := bind.NewBoundContract(contract, singleSessionABI, caller, nil, nil)

	var out []any
	if err = probe.Call(&bind.CallOpts{Context: ctx, From: from}, &out, methodGameState); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", apperror.ErrConnectivityFault, err)
		}

		return multiSession{}, nil
	}

	return singleSession{}, nil
}
