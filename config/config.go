package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	RPC     RPCConfig     `mapstructure:"rpc"`
	Program ProgramConfig `mapstructure:"program"`
	Log     LogConfig     `mapstructure:"log"`
}

type RPCConfig struct {
	Endpoint     string        `mapstructure:"endpoint"`
	Commitment   string        `mapstructure:"commitment"` // processed, confirmed, finalized
	Timeout      time.Duration `mapstructure:"timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// ProgramConfig identifies the on-chain escrow program. Injected rather than
// hardcoded so tests can substitute their own program id.
type ProgramConfig struct {
	ID string `mapstructure:"id"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output
}

// DefaultProgramID is the devnet deployment of the escrow program.
const DefaultProgramID = "5dkhUQ8PtXMnyQLzmg1HquD7dypQv2xQqdw49Q8kEqf3"

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ESCROW.
// Nested keys use underscore: ESCROW_RPC_ENDPOINT, ESCROW_PROGRAM_ID, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("rpc.endpoint", "https://api.devnet.solana.com")
	v.SetDefault("rpc.commitment", "confirmed")
	v.SetDefault("rpc.timeout", "90s")
	v.SetDefault("rpc.poll_interval", "1s")
	v.SetDefault("program.id", DefaultProgramID)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: ESCROW_RPC_ENDPOINT -> rpc.endpoint
	v.SetEnvPrefix("ESCROW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars and defaults can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
