// Package cli is the inbound adapter: one cobra subcommand per protocol
// action, wiring config, logging and the solana adapters into the escrow
// service.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"escrowctl/config"
	"escrowctl/internal/adapter/keyfile"
	"escrowctl/internal/adapter/ledger"
	"escrowctl/internal/core/ports"
	"escrowctl/internal/service"
	"escrowctl/pkg/apperror"
	"escrowctl/pkg/logger"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "escrowctl",
	Short: "CLI client for the three-party escrow program",
	Long: `escrowctl drives a buyer/seller/arbiter escrow program on Solana:
create an offer, join it, fund it, then confirm or cancel. Each invocation
performs one protocol action end-to-end: read state, guard, build, sign,
simulate, submit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps structured errors to exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			os.Exit(appErr.ExitCode)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file path")
}

// app bundles everything a command invocation needs.
type app struct {
	cfg  *config.Config
	log  zerolog.Logger
	keys ports.KeySource
	svc  ports.EscrowService
}

// newApp loads configuration and wires the adapters into the service. Each
// invocation gets its own id in the log context.
func newApp() (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty).
		With().
		Str("invocation_id", uuid.NewString()).
		Logger()

	programID, err := solana.PublicKeyFromBase58(cfg.Program.ID)
	if err != nil {
		return nil, apperror.ErrBadAddress(cfg.Program.ID, err)
	}

	client := ledger.NewClient(cfg.RPC, log)

	return &app{
		cfg:  cfg,
		log:  log,
		keys: keyfile.NewSource(),
		svc:  service.NewEscrowService(client, client, programID, log),
	}, nil
}

// invocationContext bounds one end-to-end action with the configured timeout.
func (a *app) invocationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.cfg.RPC.Timeout)
}

// parseAddress converts a base58 address argument.
func parseAddress(input string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(input)
	if err != nil {
		return solana.PublicKey{}, apperror.ErrBadAddress(input, err)
	}
	return key, nil
}
