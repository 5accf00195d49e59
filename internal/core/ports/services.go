package ports

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"escrowctl/internal/core/domain"
)

// EscrowService is the inbound port the CLI drives: one method per protocol
// action, each performing a full read-guard-build-sign-simulate-submit pass.
type EscrowService interface {
	CreateOffer(ctx context.Context, req CreateOfferRequest) (solana.Signature, error)
	JoinOffer(ctx context.Context, req JoinOfferRequest) (solana.Signature, error)
	Fund(ctx context.Context, req FundRequest) (solana.Signature, error)
	Confirm(ctx context.Context, req ConfirmRequest) (solana.Signature, error)
	ArbiterConfirm(ctx context.Context, req ArbiterConfirmRequest) (solana.Signature, error)
	ArbiterCancel(ctx context.Context, req ArbiterCancelRequest) (solana.Signature, error)
	MutualCancel(ctx context.Context, req MutualCancelRequest) (solana.Signature, error)
	Close(ctx context.Context, req CloseRequest) (solana.Signature, error)

	// Info is a pure read: fetch and decode, no guard, no submission.
	Info(ctx context.Context, escrow solana.PublicKey) (*domain.EscrowRecord, error)
}

// CreateOfferRequest allocates and initializes a fresh escrow record. The
// record keypair co-signs its own allocation.
type CreateOfferRequest struct {
	Buyer   solana.PrivateKey
	Escrow  solana.PrivateKey
	Arbiter solana.PublicKey
	Amount  uint64 // lamports
}

type JoinOfferRequest struct {
	Seller solana.PrivateKey
	Escrow solana.PublicKey
}

type FundRequest struct {
	Buyer  solana.PrivateKey
	Escrow solana.PublicKey
}

type ConfirmRequest struct {
	Seller solana.PrivateKey
	Escrow solana.PublicKey
}

type ArbiterConfirmRequest struct {
	Arbiter solana.PrivateKey
	Escrow  solana.PublicKey
	Seller  solana.PublicKey
}

type ArbiterCancelRequest struct {
	Arbiter solana.PrivateKey
	Escrow  solana.PublicKey
	Buyer   solana.PublicKey
}

type MutualCancelRequest struct {
	Buyer  solana.PrivateKey
	Seller solana.PrivateKey
	Escrow solana.PublicKey
}

type CloseRequest struct {
	Closer solana.PrivateKey
	Escrow solana.PublicKey
}
