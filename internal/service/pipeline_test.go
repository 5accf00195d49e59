package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"escrowctl/internal/core/ports"
	"escrowctl/internal/core/ports/mocks"
	"escrowctl/pkg/apperror"
)

func TestPipeline_CleanSimulationSubmits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submitter := mocks.NewMockLedgerSubmitter(ctrl)
	tx := &solana.Transaction{}
	wantSig := solana.Signature{1, 2, 3}

	submitter.EXPECT().Simulate(gomock.Any(), tx).Return(&ports.SimulationResult{
		Logs: []string{"Program log: ok"},
	}, nil)
	submitter.EXPECT().Submit(gomock.Any(), tx).Return(wantSig, nil)

	p := NewSubmissionPipeline(submitter, zerolog.Nop())
	sig, err := p.Run(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, wantSig, sig)
}

// A dry run reporting any error aborts: Submit must never be invoked.
func TestPipeline_SimulationErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submitter := mocks.NewMockLedgerSubmitter(ctrl)
	tx := &solana.Transaction{}

	submitter.EXPECT().Simulate(gomock.Any(), tx).Return(&ports.SimulationResult{
		Logs: []string{"Program log: insufficient funds"},
		Err:  `{"InstructionError":[0,"Custom(2)"]}`,
	}, nil)
	// No Submit expectation: any call would fail the controller.

	p := NewSubmissionPipeline(submitter, zerolog.Nop())
	_, err := p.Run(context.Background(), tx)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SIM_001", appErr.Code)
	assert.Contains(t, appErr.Message, "Custom(2)")
}

func TestPipeline_SimulateRPCFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submitter := mocks.NewMockLedgerSubmitter(ctrl)
	tx := &solana.Transaction{}

	submitter.EXPECT().Simulate(gomock.Any(), tx).Return(nil, errors.New("connection reset"))

	p := NewSubmissionPipeline(submitter, zerolog.Nop())
	_, err := p.Run(context.Background(), tx)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RPC_001", appErr.Code)
}

func TestPipeline_SubmitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submitter := mocks.NewMockLedgerSubmitter(ctrl)
	tx := &solana.Transaction{}

	submitter.EXPECT().Simulate(gomock.Any(), tx).Return(&ports.SimulationResult{}, nil)
	submitter.EXPECT().Submit(gomock.Any(), tx).Return(solana.Signature{}, errors.New("blockhash expired"))

	p := NewSubmissionPipeline(submitter, zerolog.Nop())
	_, err := p.Run(context.Background(), tx)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "RPC_001", appErr.Code)
}
