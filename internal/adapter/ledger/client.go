// Package ledger adapts the gagliardetto/solana-go RPC client to the narrow
// reader/submitter ports the core uses.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"

	"escrowctl/config"
	"escrowctl/internal/core/ports"
)

// Client implements ports.LedgerReader and ports.LedgerSubmitter over a
// single JSON-RPC endpoint. All calls are blocking round trips; Submit
// additionally polls until the configured commitment is reached.
type Client struct {
	rpc          *rpc.Client
	commitment   rpc.CommitmentType
	pollInterval time.Duration
	log          zerolog.Logger
}

func NewClient(cfg config.RPCConfig, log zerolog.Logger) *Client {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &Client{
		rpc:          rpc.New(cfg.Endpoint),
		commitment:   commitmentFromString(cfg.Commitment),
		pollInterval: pollInterval,
		log:          log,
	}
}

func commitmentFromString(s string) rpc.CommitmentType {
	switch s {
	case "processed":
		return rpc.CommitmentProcessed
	case "finalized":
		return rpc.CommitmentFinalized
	default:
		return rpc.CommitmentConfirmed
	}
}

// GetAccountData returns the raw payload of an account. An unknown address
// is an error.
func (c *Client) GetAccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	res, err := c.rpc.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
		Commitment: c.commitment,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, fmt.Errorf("account %s not found", address)
		}
		return nil, err
	}
	if res.Value == nil {
		return nil, fmt.Errorf("account %s not found", address)
	}
	return res.Value.Data.GetBinary(), nil
}

func (c *Client) MinimumBalance(ctx context.Context, size uint64) (uint64, error) {
	return c.rpc.GetMinimumBalanceForRentExemption(ctx, size, c.commitment)
}

func (c *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	res, err := c.rpc.GetLatestBlockhash(ctx, c.commitment)
	if err != nil {
		return solana.Hash{}, err
	}
	return res.Value.Blockhash, nil
}

// Simulate dry-runs the signed transaction. RPC transport errors are
// returned as errors; a rejection by the ledger comes back inside the
// result so the caller can surface the trace first.
func (c *Client) Simulate(ctx context.Context, tx *solana.Transaction) (*ports.SimulationResult, error) {
	res, err := c.rpc.SimulateTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}

	out := &ports.SimulationResult{Logs: res.Value.Logs}
	if res.Value.Err != nil {
		out.Err = fmt.Sprintf("%v", res.Value.Err)
	}
	return out, nil
}

// Submit broadcasts the transaction and blocks until its signature reaches
// the configured commitment. Preflight is skipped: the pipeline has already
// simulated. No retry on failure.
func (c *Client) Submit(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       true,
		PreflightCommitment: c.commitment,
	})
	if err != nil {
		return solana.Signature{}, err
	}

	c.log.Debug().Str("signature", sig.String()).Msg("transaction broadcast, awaiting confirmation")

	for {
		res, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			c.log.Warn().Err(err).Msg("signature status poll failed")
		} else if len(res.Value) > 0 && res.Value[0] != nil {
			status := res.Value[0]
			if status.Err != nil {
				return sig, fmt.Errorf("transaction failed on chain: %v", status.Err)
			}
			if commitmentReached(status.ConfirmationStatus, c.commitment) {
				return sig, nil
			}
		}

		select {
		case <-ctx.Done():
			return sig, fmt.Errorf("awaiting confirmation: %w", ctx.Err())
		case <-time.After(c.pollInterval):
		}
	}
}

var commitmentRank = map[rpc.ConfirmationStatusType]int{
	rpc.ConfirmationStatusProcessed: 1,
	rpc.ConfirmationStatusConfirmed: 2,
	rpc.ConfirmationStatusFinalized: 3,
}

func commitmentReached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	wantRank := 2
	switch want {
	case rpc.CommitmentProcessed:
		wantRank = 1
	case rpc.CommitmentFinalized:
		wantRank = 3
	}
	return commitmentRank[status] >= wantRank
}
