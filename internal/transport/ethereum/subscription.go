package ethereum

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/rocketscienceinc/sos-client/internal/apperror"
	"github.com/rocketscienceinc/sos-client/internal/entity"
)

const logBuffer = 64

type logKey struct {
	block uint64
	index uint
}

// subscription merges past logs with the live feed. Logs seen in both are
// delivered once, history first.
type subscription struct {
	logger  *slog.Logger
	decoder decoder

	events   chan entity.Event
	errs     chan error
	replayed chan struct{}
	quit     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

func (that *subscription) Events() <-chan entity.Event { return that.events }
func (that *subscription) Err() <-chan error          { return that.errs }
func (that *subscription) Replayed() <-chan struct{}  { return that.replayed }

func (that *subscription) Unsubscribe() {
	that.once.Do(func() {
		close(that.quit)
	})

	that.wg.Wait()
}

// Subscribe opens the live feed before reading history so that nothing
// emitted in between is lost.
func (that *Client) Subscribe(ctx context.Context, replay bool) (entity.Subscription, error) {
	log := that.logger.With("method", "Subscribe", "replay", replay)

	contractABI := that.addressing.ABI()
	query := goethereum.FilterQuery{
		Addresses: []common.Address{that.contract},
		Topics: [][]common.Hash{{
			contractABI.Events[eventNewGame].ID,
			contractABI.Events[eventMove].ID,
		}},
	}

	logs := make(chan types.Log, logBuffer)

	live, err := that.backend.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to subscribe to contract logs: %w", apperror.ErrConnectivityFault, err)
	}

	var history []types.Log
	if replay {
		past := query
		past.FromBlock = new(big.Int).SetUint64(that.startBlock)

		if history, err = that.backend.FilterLogs(ctx, past); err != nil {
			live.Unsubscribe()
			return nil, fmt.Errorf("%w: failed to read past contract logs: %w", apperror.ErrConnectivityFault, err)
		}

		log.Info("replaying contract history", "logs", len(history), "from_block", that.startBlock)
	}

	sub := &subscription{
		logger:  that.logger.With("component", "subscription"),
		decoder: decoder{addressing: that.addressing},
		events:   make(chan entity.Event),
		errs:     make(chan error, 1),
		replayed: make(chan struct{}),
		quit:     make(chan struct{}),
	}

	sub.wg.Add(1)
	go sub.pump(history, live, logs)

	return sub, nil
}

func (that *subscription) pump(history []types.Log, live goethereum.Subscription, logs <-chan types.Log) {
	defer that.wg.Done()
	defer live.Unsubscribe()
	defer close(that.events)

	seen := make(map[logKey]struct{}, len(history))

	for _, entry := range history {
		if !that.deliver(entry, seen) {
			return
		}
	}

	// events is unbuffered, so the last history event has been taken by now
	close(that.replayed)

	for {
		select {
		case <-that.quit:
			return
		case err := <-live.Err():
			if err != nil {
				that.errs <- fmt.Errorf("%w: %w", apperror.ErrConnectivityFault, err)
			}

			return
		case entry := <-logs:
			if !that.deliver(entry, seen) {
				return
			}
		}
	}
}

// deliver reports false once the subscription was cancelled.
func (that *subscription) deliver(entry types.Log, seen map[logKey]struct{}) bool {
	if entry.Removed {
		that.logger.Warn("log removed by chain reorganisation", "block", entry.BlockNumber, "index", entry.Index)
		return true
	}

	key := logKey{block: entry.BlockNumber, index: entry.Index}
	if _, ok := seen[key]; ok {
		return true
	}

	seen[key] = struct{}{}

	decoded, err := that.decoder.Decode(entry)
	if err != nil {
		that.logger.Warn("skipping undecodable log", "block", entry.BlockNumber, "tx", entry.TxHash.Hex(), "error", err)
		return true
	}

	select {
	case that.events <- decoded:
		return true
	case <-that.quit:
		return false
	}
}
