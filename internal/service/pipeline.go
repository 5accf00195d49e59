package service

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	"escrowctl/internal/core/ports"
	"escrowctl/pkg/apperror"
)

// SubmissionPipeline dry-runs a signed transaction and submits it only when
// the simulation is clean. A transaction known to fail is never submitted.
type SubmissionPipeline struct {
	submitter ports.LedgerSubmitter
	log       zerolog.Logger
}

func NewSubmissionPipeline(submitter ports.LedgerSubmitter, log zerolog.Logger) *SubmissionPipeline {
	return &SubmissionPipeline{submitter: submitter, log: log}
}

// Run simulates then submits. The diagnostic trace is surfaced line by line
// before any error is returned. There is no retry; the caller re-invokes
// after correcting state.
func (p *SubmissionPipeline) Run(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sim, err := p.submitter.Simulate(ctx, tx)
	if err != nil {
		return solana.Signature{}, apperror.ErrRemote("simulate transaction", err)
	}

	for _, line := range sim.Logs {
		p.log.Info().Str("trace", "simulation").Msg(line)
	}

	if sim.Failed() {
		return solana.Signature{}, apperror.ErrSimulation(sim.Err)
	}

	sig, err := p.submitter.Submit(ctx, tx)
	if err != nil {
		return solana.Signature{}, apperror.ErrRemote("submit transaction", err)
	}

	p.log.Info().Str("signature", sig.String()).Msg("transaction confirmed")
	return sig, nil
}
