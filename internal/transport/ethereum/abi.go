package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	methodPlay         = "play"
	methodPlaceS       = "placeS"
	methodPlaceO       = "placeO"
	methodCancel       = "cancel"
	methodForceForfeit = "ur2slow"
	methodGameState    = "getGameState"

	eventNewGame = "NewGame"
	eventMove    = "MoveEvent"

	fieldGameID       = "_gameID"
	fieldFirstPlayer  = "_firstPlayer"
	fieldSecondPlayer = "_secondPlayer"
	fieldPlayer       = "_playerAddress"
	fieldSymbol       = "_symbol"
	fieldPlacement    = "_placement"
)

// CryptoSOS: one game per contract.
const singleSessionJSON = `[
	{"type":"function","name":"play","inputs":[],"outputs":[],"stateMutability":"payable"},
	{"type":"function","name":"placeS","inputs":[{"name":"_placement","type":"uint8"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"placeO","inputs":[{"name":"_placement","type":"uint8"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"cancel","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"ur2slow","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"getGameState","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"},
	{"type":"event","name":"NewGame","anonymous":false,"inputs":[
		{"name":"_firstPlayer","type":"address","indexed":false},
		{"name":"_secondPlayer","type":"address","indexed":false}]},
	{"type":"event","name":"MoveEvent","anonymous":false,"inputs":[
		{"name":"_playerAddress","type":"address","indexed":false},
		{"name":"_symbol","type":"uint8","indexed":false},
		{"name":"_placement","type":"uint8","indexed":false}]}
]`

// MultySOS: many games per contract, addressed by _gameID.
const multiSessionJSON = `[
	{"type":"function","name":"play","inputs":[],"outputs":[],"stateMutability":"payable"},
	{"type":"function","name":"placeS","inputs":[{"name":"_gameID","type":"uint256"},{"name":"_placement","type":"uint8"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"placeO","inputs":[{"name":"_gameID","type":"uint256"},{"name":"_placement","type":"uint8"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"cancel","inputs":[{"name":"_gameID","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"ur2slow","inputs":[{"name":"_gameID","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"getGameState","inputs":[{"name":"_gameID","type":"uint256"}],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"},
	{"type":"event","name":"NewGame","anonymous":false,"inputs":[
		{"name":"_gameID","type":"uint256","indexed":false},
		{"name":"_firstPlayer","type":"address","indexed":false},
		{"name":"_secondPlayer","type":"address","indexed":false}]},
	{"type":"event","name":"MoveEvent","anonymous":false,"inputs":[
		{"name":"_gameID","type":"uint256","indexed":false},
		{"name":"_playerAddress","type":"address","indexed":false},
		{"name":"_symbol","type":"uint8","indexed":false},
		{"name":"_placement","type":"uint8","indexed":false}]}
]`

var (
	singleSessionABI = mustParseABI(singleSessionJSON)
	multiSessionABI  = mustParseABI(multiSessionJSON)
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Errorf("invalid contract abi: %w", err))
	}

	return parsed
}
