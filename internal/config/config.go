package config

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"SOS_LOG_LEVEL" env-default:"info"`
	HTTPPort   string     `yaml:"http-port" env:"SOS_HTTP_PORT" env-default:"9090"`
	SocketPort string     `yaml:"socket-port" env:"SOS_SOCKET_PORT" env-default:"9091"`
	Ledger     Ledger     `yaml:"ledger"`
	Reconciler Reconciler `yaml:"reconciler"`
	Redis      Redis      `yaml:"redis"`
	Metrics    Metrics    `yaml:"metrics"`
}

type Ledger struct {
	Host            string `yaml:"host" env:"SOS_LEDGER_HOST" env-default:"127.0.0.1"`
	Port            string `yaml:"port" env:"SOS_LEDGER_PORT" env-default:"8545"`
	ContractAddress string `yaml:"contract-address" env:"SOS_CONTRACT_ADDRESS"`
	PrivateKey      string `yaml:"private-key" env:"SOS_PRIVATE_KEY"`
	StakeWei        string `yaml:"stake-wei" env:"SOS_STAKE_WEI" env-default:"1000000000000000000"`
	GasLimit        uint64 `yaml:"gas-limit" env:"SOS_GAS_LIMIT" env-default:"3000000"`
	StartBlock      uint64 `yaml:"start-block" env:"SOS_START_BLOCK" env-default:"0"`
	AutoJoin        bool   `yaml:"auto-join" env:"SOS_AUTO_JOIN" env-default:"false"`

	// Enforced by the contract; only quoted back to the user.
	CancelWait  time.Duration `yaml:"cancel-wait" env-default:"2m"`
	TurnTimeout time.Duration `yaml:"turn-timeout" env-default:"1m"`
}

type Reconciler struct {
	FaultThreshold int `yaml:"fault-threshold" env:"SOS_FAULT_THRESHOLD" env-default:"3"`
}

type Redis struct {
	Host        string        `yaml:"host" env:"SOS_REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"SOS_REDIS_PORT" env-default:"6379"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env-default:"1h"`
}

type Metrics struct {
	Namespace string `yaml:"namespace" env-default:"sos_client"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GetEndpoint returns the websocket endpoint of the ledger node.
func (that *Ledger) GetEndpoint() string {
	return fmt.Sprintf("ws://%s:%s", that.Host, that.Port)
}

func (that *Ledger) GetStake() (*big.Int, error) {
	stake, ok := new(big.Int).SetString(that.StakeWei, 10)
	if !ok || stake.Sign() <= 0 {
		return nil, fmt.Errorf("invalid stake-wei %q", that.StakeWei)
	}

	return stake, nil
}
