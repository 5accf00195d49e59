package service

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"escrowctl/internal/core/domain"
)

// escrowInstruction satisfies solana.Instruction for the escrow program's
// opcode-indexed wire format.
type escrowInstruction struct {
	programID solana.PublicKey
	accounts  solana.AccountMetaSlice
	data      []byte
}

func (ix *escrowInstruction) ProgramID() solana.PublicKey {
	return ix.programID
}

func (ix *escrowInstruction) Accounts() []*solana.AccountMeta {
	return ix.accounts
}

func (ix *escrowInstruction) Data() ([]byte, error) {
	return ix.data, nil
}

// InstructionBuilder composes escrow program instructions. The account
// ordering, writable/signer flags and opcode bytes are the wire contract
// with the on-chain program and must match it exactly: a mismatch is not
// caught locally, it only surfaces as a rejected submission.
type InstructionBuilder struct {
	programID solana.PublicKey
}

func NewInstructionBuilder(programID solana.PublicKey) *InstructionBuilder {
	return &InstructionBuilder{programID: programID}
}

// payload builds [opcode] ++ fields with the record's fixed serialization:
// little-endian integers, raw 32-byte public keys.
func payload(action domain.Action, fields ...[]byte) []byte {
	data := []byte{action.Opcode()}
	for _, f := range fields {
		data = append(data, f...)
	}
	return data
}

func uint64LE(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}

func (b *InstructionBuilder) vault(escrow solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := domain.DeriveVault(escrow, b.programID)
	return addr, err
}

// CreateOffer initializes a freshly allocated record. The record co-signs
// because its allocation happens in the same transaction.
func (b *InstructionBuilder) CreateOffer(buyer, record, arbiter solana.PublicKey, amount uint64) (solana.Instruction, error) {
	vault, err := b.vault(record)
	if err != nil {
		return nil, err
	}
	return &escrowInstruction{
		programID: b.programID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(buyer).WRITE().SIGNER(),
			solana.Meta(record).WRITE().SIGNER(),
			solana.Meta(vault).WRITE(),
			solana.Meta(solana.SystemProgramID),
		},
		data: payload(domain.ActionCreateOffer, uint64LE(amount), arbiter.Bytes()),
	}, nil
}

func (b *InstructionBuilder) JoinOffer(seller, record solana.PublicKey) solana.Instruction {
	return &escrowInstruction{
		programID: b.programID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(seller).WRITE().SIGNER(),
			solana.Meta(record).WRITE(),
		},
		data: payload(domain.ActionJoinOffer, seller.Bytes()),
	}
}

func (b *InstructionBuilder) Fund(buyer, record solana.PublicKey) (solana.Instruction, error) {
	vault, err := b.vault(record)
	if err != nil {
		return nil, err
	}
	return &escrowInstruction{
		programID: b.programID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(buyer).WRITE().SIGNER(),
			solana.Meta(record).WRITE(),
			solana.Meta(vault).WRITE(),
			solana.Meta(solana.SystemProgramID),
		},
		data: payload(domain.ActionFund),
	}, nil
}

func (b *InstructionBuilder) Confirm(seller, record solana.PublicKey) (solana.Instruction, error) {
	vault, err := b.vault(record)
	if err != nil {
		return nil, err
	}
	return &escrowInstruction{
		programID: b.programID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(seller).WRITE().SIGNER(),
			solana.Meta(record).WRITE(),
			solana.Meta(vault).WRITE(),
			solana.Meta(solana.SystemProgramID),
		},
		data: payload(domain.ActionConfirm),
	}, nil
}

// ArbiterConfirm releases the vault to the seller, so the seller account is
// writable but does not sign.
func (b *InstructionBuilder) ArbiterConfirm(arbiter, record, seller solana.PublicKey) (solana.Instruction, error) {
	vault, err := b.vault(record)
	if err != nil {
		return nil, err
	}
	return &escrowInstruction{
		programID: b.programID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(arbiter).WRITE().SIGNER(),
			solana.Meta(record).WRITE(),
			solana.Meta(vault).WRITE(),
			solana.Meta(seller).WRITE(),
		},
		data: payload(domain.ActionArbiterConfirm),
	}, nil
}

// ArbiterCancel refunds the vault to the buyer.
func (b *InstructionBuilder) ArbiterCancel(arbiter, record, buyer solana.PublicKey) (solana.Instruction, error) {
	vault, err := b.vault(record)
	if err != nil {
		return nil, err
	}
	return &escrowInstruction{
		programID: b.programID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(arbiter).WRITE().SIGNER(),
			solana.Meta(record).WRITE(),
			solana.Meta(vault).WRITE(),
			solana.Meta(buyer).WRITE(),
		},
		data: payload(domain.ActionArbiterCancel),
	}, nil
}

// MutualCancel requires both parties to sign the same message.
func (b *InstructionBuilder) MutualCancel(buyer, seller, record solana.PublicKey) (solana.Instruction, error) {
	vault, err := b.vault(record)
	if err != nil {
		return nil, err
	}
	return &escrowInstruction{
		programID: b.programID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(buyer).WRITE().SIGNER(),
			solana.Meta(seller).WRITE().SIGNER(),
			solana.Meta(record).WRITE(),
			solana.Meta(vault).WRITE(),
			solana.Meta(solana.SystemProgramID),
		},
		data: payload(domain.ActionMutualCancel),
	}, nil
}

func (b *InstructionBuilder) Close(closer, record solana.PublicKey) solana.Instruction {
	return &escrowInstruction{
		programID: b.programID,
		accounts: solana.AccountMetaSlice{
			solana.Meta(closer).WRITE().SIGNER(),
			solana.Meta(record).WRITE(),
		},
		data: payload(domain.ActionClose),
	}
}
