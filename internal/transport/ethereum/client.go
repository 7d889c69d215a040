package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
	"github.com/rocketscienceinc/sos-client/internal/config"
	"github.com/rocketscienceinc/sos-client/internal/entity"
)

type backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Client is the ledger: it sends the player's commands to the SOS contract
// and streams the contract's events back.
type Client struct {
	logger     *slog.Logger
	backend    backend
	closer     func()
	contract   common.Address
	addressing addressing
	key        *ecdsa.PrivateKey
	local      common.Address
	chainID    *big.Int
	gasLimit   uint64
	startBlock uint64
}

// Dial connects to the node, checks the chain and detects which contract
// variant is deployed at the configured address.
func Dial(ctx context.Context, logger *slog.Logger, conf config.Ledger) (*Client, error) {
	log := logger.With("method", "Dial")

	if !common.IsHexAddress(conf.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", conf.ContractAddress)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(conf.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	endpoint := conf.GetEndpoint()

	rpcClient, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to dial %s: %w", apperror.ErrConnectivityFault, endpoint, err)
	}

	chainID, err := rpcClient.ChainID(ctx)
	if err != nil {
		rpcClient.Close()
		return nil, fmt.Errorf("%w: failed to read chain id: %w", apperror.ErrConnectivityFault, err)
	}

	contract := common.HexToAddress(conf.ContractAddress)
	local := crypto.PubkeyToAddress(key.PublicKey)

	variant, err := detectAddressing(ctx, rpcClient, contract, local)
	if err != nil {
		rpcClient.Close()
		return nil, err
	}

	log.Info("connected to ledger",
		"endpoint", endpoint,
		"chain_id", chainID.String(),
		"contract", contract.Hex(),
		"variant", variant.Variant(),
		"player", local.Hex(),
	)

	client := newClient(logger, rpcClient, contract, variant, key, chainID, conf)
	client.closer = rpcClient.Close

	return client, nil
}

func newClient(
	logger *slog.Logger,
	backend backend,
	contract common.Address,
	variant addressing,
	key *ecdsa.PrivateKey,
	chainID *big.Int,
	conf config.Ledger,
) *Client {
	return &Client{
		logger:     logger.With("component", "ledger", "variant", variant.Variant()),
		backend:    backend,
		closer:     func() {},
		contract:   contract,
		addressing: variant,
		key:        key,
		local:      crypto.PubkeyToAddress(key.PublicKey),
		chainID:    chainID,
		gasLimit:   conf.GasLimit,
		startBlock: conf.StartBlock,
	}
}

func (that *Client) LocalAddress() common.Address {
	return that.local
}

func (that *Client) Variant() string {
	return that.addressing.Variant()
}

func (that *Client) Close() {
	that.closer()
}

func (that *Client) JoinOrCreate(ctx context.Context, stake *big.Int) error {
	return that.transact(ctx, stake, methodPlay)
}

// Place sends a 1-based placement.
func (that *Client) Place(ctx context.Context, id entity.SessionID, placement uint8, symbol entity.Cell) error {
	var method string

	switch symbol {
	case entity.S:
		method = methodPlaceS
	case entity.O:
		method = methodPlaceO
	default:
		return fmt.Errorf("%w: %w: %s", apperror.ErrIllegalCommand, apperror.ErrInvalidSymbol, symbol)
	}

	args, err := that.addressing.Args(id, placement)
	if err != nil {
		return err
	}

	return that.transact(ctx, nil, method, args...)
}

func (that *Client) Cancel(ctx context.Context, id entity.SessionID) error {
	args, err := that.addressing.Args(id)
	if err != nil {
		return err
	}

	return that.transact(ctx, nil, methodCancel, args...)
}

func (that *Client) ForceForfeit(ctx context.Context, id entity.SessionID) error {
	args, err := that.addressing.Args(id)
	if err != nil {
		return err
	}

	return that.transact(ctx, nil, methodForceForfeit, args...)
}

// transact sends one transaction and waits until it is mined. A reverted
// transaction is reported as apperror.ErrCommandRejected.
func (that *Client) transact(ctx context.Context, value *big.Int, method string, args ...any) error {
	log := that.logger.With("method", method)

	opts, err := bind.NewKeyedTransactorWithChainID(that.key, that.chainID)
	if err != nil {
		return fmt.Errorf("failed to build transactor: %w", err)
	}

	opts.Context = ctx
	opts.GasLimit = that.gasLimit
	opts.Value = value

	contract := bind.NewBoundContract(that.contract, that.addressing.ABI(), that.backend, that.backend, that.backend)

	tx, err := contract.Transact(opts, method, args...)
	if err != nil {
		return classify(err)
	}

	log.Debug("transaction sent", "tx", tx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, that.backend, tx)
	if err != nil {
		return fmt.Errorf("%w: waiting for %s: %w", apperror.ErrConnectivityFault, tx.Hash().Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		log.Info("transaction reverted", "tx", tx.Hash().Hex(), "block", receipt.BlockNumber)
		return fmt.Errorf("%w: %s reverted in tx %s", apperror.ErrCommandRejected, method, tx.Hash().Hex())
	}

	log.Debug("transaction mined", "tx", tx.Hash().Hex(), "gas_used", receipt.GasUsed)

	return nil
}

// classify treats any JSON-RPC error answered by the node as a rejection and
// everything else as a lost connection.
func classify(err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return fmt.Errorf("%w: %w", apperror.ErrCommandRejected, err)
	}

	return fmt.Errorf("%w: %w", apperror.ErrConnectivityFault, err)
}
