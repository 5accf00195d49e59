package ledger

import (
	"testing"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"escrowctl/config"
)

func TestCommitmentFromString(t *testing.T) {
	tests := []struct {
		in   string
		want rpc.CommitmentType
	}{
		{"processed", rpc.CommitmentProcessed},
		{"confirmed", rpc.CommitmentConfirmed},
		{"finalized", rpc.CommitmentFinalized},
		{"", rpc.CommitmentConfirmed},
		{"bogus", rpc.CommitmentConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, commitmentFromString(tt.in))
		})
	}
}

func TestCommitmentReached(t *testing.T) {
	tests := []struct {
		status rpc.ConfirmationStatusType
		want   rpc.CommitmentType
		ok     bool
	}{
		{rpc.ConfirmationStatusProcessed, rpc.CommitmentProcessed, true},
		{rpc.ConfirmationStatusProcessed, rpc.CommitmentConfirmed, false},
		{rpc.ConfirmationStatusConfirmed, rpc.CommitmentConfirmed, true},
		{rpc.ConfirmationStatusConfirmed, rpc.CommitmentFinalized, false},
		{rpc.ConfirmationStatusFinalized, rpc.CommitmentConfirmed, true},
		{rpc.ConfirmationStatusFinalized, rpc.CommitmentFinalized, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, commitmentReached(tt.status, tt.want),
			"status=%s want=%s", tt.status, tt.want)
	}
}

func TestNewClient_PollIntervalDefault(t *testing.T) {
	c := NewClient(config.RPCConfig{Endpoint: "http://localhost:8899"}, zerolog.Nop())
	assert.Equal(t, time.Second, c.pollInterval)
}
