package ethereum

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-client/internal/entity"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

func forgeLog(t *testing.T, contractABI abi.ABI, name string, block uint64, index uint, values ...any) types.Log {
	t.Helper()

	event := contractABI.Events[name]

	data, err := event.Inputs.Pack(values...)
	require.NoError(t, err)

	return types.Log{
		Topics:      []common.Hash{event.ID},
		Data:        data,
		BlockNumber: block,
		Index:       index,
	}
}

func TestDecoder_SingleSession(t *testing.T) {
	decode := decoder{addressing: singleSession{}}

	t.Run("NewGame with a free seat", func(t *testing.T) {
		// Given: a NewGame log where nobody joined alice yet
		log := forgeLog(t, singleSessionABI, eventNewGame, 1, 0, alice, common.Address{})

		// When: it is decoded
		event, err := decode.Decode(log)

		// Then: the second seat is the no-opponent marker
		require.NoError(t, err)
		assert.Equal(t, entity.SessionCreated{FirstPlayer: alice, SecondPlayer: entity.NoOpponent}, event)
	})

	t.Run("MoveEvent", func(t *testing.T) {
		log := forgeLog(t, singleSessionABI, eventMove, 2, 1, bob, uint8(2), uint8(5))

		event, err := decode.Decode(log)

		require.NoError(t, err)
		assert.Equal(t, entity.MoveMade{Player: bob, Symbol: entity.O, Placement: 5}, event)
	})

	t.Run("Forfeit marker", func(t *testing.T) {
		log := forgeLog(t, singleSessionABI, eventMove, 3, 0, bob, uint8(0), uint8(0))

		event, err := decode.Decode(log)

		require.NoError(t, err)
		assert.True(t, event.(entity.MoveMade).IsForfeit())
	})

	t.Run("Unknown topic", func(t *testing.T) {
		log := types.Log{Topics: []common.Hash{common.HexToHash("0xdead")}}

		_, err := decode.Decode(log)

		assert.ErrorIs(t, err, errMalformedLog)
	})

	t.Run("Truncated data", func(t *testing.T) {
		log := forgeLog(t, singleSessionABI, eventMove, 2, 1, bob, uint8(1), uint8(5))
		log.Data = log.Data[:40]

		_, err := decode.Decode(log)

		assert.ErrorIs(t, err, errMalformedLog)
	})
}

func TestDecoder_MultiSession(t *testing.T) {
	decode := decoder{addressing: multiSession{}}

	t.Run("Carries the game id", func(t *testing.T) {
		log := forgeLog(t, multiSessionABI, eventNewGame, 1, 0, big.NewInt(17), alice, bob)

		event, err := decode.Decode(log)

		require.NoError(t, err)
		assert.Equal(t, entity.SessionCreated{FirstPlayer: alice, SecondPlayer: bob, SessionID: "17"}, event)
	})

	t.Run("Move of a specific game", func(t *testing.T) {
		log := forgeLog(t, multiSessionABI, eventMove, 4, 2, big.NewInt(17), alice, uint8(1), uint8(9))

		event, err := decode.Decode(log)

		require.NoError(t, err)
		assert.Equal(t, entity.MoveMade{Player: alice, Symbol: entity.S, Placement: 9, SessionID: "17"}, event)
	})

	t.Run("Single session logs do not decode", func(t *testing.T) {
		log := forgeLog(t, singleSessionABI, eventNewGame, 1, 0, alice, bob)

		_, err := decode.Decode(log)

		assert.ErrorIs(t, err, errMalformedLog)
	})
}
