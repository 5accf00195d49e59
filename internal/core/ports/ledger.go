package ports

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

//go:generate mockgen -source=ledger.go -destination=mocks/ledger_mocks.go -package=mocks

// LedgerReader is the read-only surface of the remote ledger the client
// needs. All calls are blocking round trips.
type LedgerReader interface {
	// GetAccountData returns the raw account payload. Unknown addresses are
	// an error, never an empty buffer.
	GetAccountData(ctx context.Context, address solana.PublicKey) ([]byte, error)

	// MinimumBalance returns the rent-exempt reserve for an account of the
	// given data size.
	MinimumBalance(ctx context.Context, size uint64) (uint64, error)

	// LatestBlockhash returns a short-lived blockhash. It expires quickly,
	// so callers fetch it immediately before assembling a transaction and
	// never cache it.
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
}

// SimulationResult carries the dry-run diagnostic trace.
type SimulationResult struct {
	Logs []string
	Err  string // remote error detail, empty when the dry run succeeded
}

// Failed reports whether the ledger rejected the simulated transaction.
func (r *SimulationResult) Failed() bool {
	return r.Err != ""
}

// LedgerSubmitter is the write surface of the remote ledger.
type LedgerSubmitter interface {
	// Simulate dry-runs a fully signed transaction without committing it.
	Simulate(ctx context.Context, tx *solana.Transaction) (*SimulationResult, error)

	// Submit broadcasts a signed transaction and blocks until it reaches
	// the configured commitment, returning the signature as confirmation id.
	Submit(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

// KeySource loads signing keypairs from the local environment.
type KeySource interface {
	Load(path string) (solana.PrivateKey, error)
}
