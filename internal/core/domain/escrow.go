package domain

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"escrowctl/pkg/apperror"
)

// Escrow account layout: three raw 32-byte public keys, a little-endian u64
// amount, the state discriminant and the vault bump. This is the only wire
// format the client must reproduce exactly; the on-chain program owns it.
const (
	RecordSize = 106

	buyerOffset   = 0
	sellerOffset  = 32
	arbiterOffset = 64
	amountOffset  = 96
	stateOffset   = 104
	bumpOffset    = 105
)

// EscrowState is the lifecycle discriminant stored at byte 104 of the record.
type EscrowState byte

const (
	StateUninitialized EscrowState = iota
	StateCreated
	StateInitialized
	StateFunded
	StateCompleted
	StateCancelled
)

func (s EscrowState) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateCreated:
		return "Created"
	case StateInitialized:
		return "Initialized"
	case StateFunded:
		return "Funded"
	case StateCompleted:
		return "Completed"
	case StateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true once the escrow can only be closed.
func (s EscrowState) IsTerminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// EscrowRecord is the decoded on-chain escrow account.
type EscrowRecord struct {
	Buyer     solana.PublicKey
	Seller    solana.PublicKey
	Arbiter   solana.PublicKey
	Amount    uint64 // lamports
	State     EscrowState
	VaultBump uint8
}

// DecodeEscrowRecord interprets raw account data as an escrow record. The
// buffer length is checked before any field is read; decoding is total for
// any buffer that passes the length and state checks.
func DecodeEscrowRecord(data []byte) (*EscrowRecord, error) {
	if len(data) < RecordSize {
		return nil, apperror.ErrRecordTooShort(len(data), RecordSize)
	}

	state := data[stateOffset]
	if state > byte(StateCancelled) {
		return nil, apperror.ErrInvalidStateByte(state)
	}

	return &EscrowRecord{
		Buyer:     solana.PublicKeyFromBytes(data[buyerOffset : buyerOffset+32]),
		Seller:    solana.PublicKeyFromBytes(data[sellerOffset : sellerOffset+32]),
		Arbiter:   solana.PublicKeyFromBytes(data[arbiterOffset : arbiterOffset+32]),
		Amount:    binary.LittleEndian.Uint64(data[amountOffset:stateOffset]),
		State:     EscrowState(state),
		VaultBump: data[bumpOffset],
	}, nil
}
