package service

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escrowctl/internal/core/domain"
)

type builderFixture struct {
	builder *InstructionBuilder
	program solana.PublicKey
	buyer   solana.PublicKey
	seller  solana.PublicKey
	arbiter solana.PublicKey
	record  solana.PublicKey
	vault   solana.PublicKey
}

func newBuilderFixture(t *testing.T) *builderFixture {
	t.Helper()
	program := solana.NewWallet().PublicKey()
	record := solana.NewWallet().PublicKey()
	vault, _, err := domain.DeriveVault(record, program)
	require.NoError(t, err)

	return &builderFixture{
		builder: NewInstructionBuilder(program),
		program: program,
		buyer:   solana.NewWallet().PublicKey(),
		seller:  solana.NewWallet().PublicKey(),
		arbiter: solana.NewWallet().PublicKey(),
		record:  record,
		vault:   vault,
	}
}

// assertMeta checks one account reference of the wire contract.
func assertMeta(t *testing.T, meta *solana.AccountMeta, key solana.PublicKey, writable, signer bool) {
	t.Helper()
	assert.Equal(t, key, meta.PublicKey)
	assert.Equal(t, writable, meta.IsWritable, "writable flag for %s", key)
	assert.Equal(t, signer, meta.IsSigner, "signer flag for %s", key)
}

func instructionData(t *testing.T, ix solana.Instruction) []byte {
	t.Helper()
	data, err := ix.Data()
	require.NoError(t, err)
	return data
}

func TestInstructionBuilder_CreateOffer(t *testing.T) {
	f := newBuilderFixture(t)

	ix, err := f.builder.CreateOffer(f.buyer, f.record, f.arbiter, 2_000_000)
	require.NoError(t, err)
	assert.Equal(t, f.program, ix.ProgramID())

	accounts := ix.Accounts()
	require.Len(t, accounts, 4)
	assertMeta(t, accounts[0], f.buyer, true, true)
	assertMeta(t, accounts[1], f.record, true, true)
	assertMeta(t, accounts[2], f.vault, true, false)
	assertMeta(t, accounts[3], solana.SystemProgramID, false, false)

	data := instructionData(t, ix)
	require.Len(t, data, 1+8+32)
	assert.Equal(t, byte(0), data[0])
	assert.Equal(t, uint64(2_000_000), binary.LittleEndian.Uint64(data[1:9]))
	assert.Equal(t, f.arbiter.Bytes(), data[9:41])
}

func TestInstructionBuilder_JoinOffer(t *testing.T) {
	f := newBuilderFixture(t)

	ix := f.builder.JoinOffer(f.seller, f.record)

	accounts := ix.Accounts()
	require.Len(t, accounts, 2)
	assertMeta(t, accounts[0], f.seller, true, true)
	assertMeta(t, accounts[1], f.record, true, false)

	data := instructionData(t, ix)
	require.Len(t, data, 1+32)
	assert.Equal(t, byte(1), data[0])
	assert.Equal(t, f.seller.Bytes(), data[1:])
}

func TestInstructionBuilder_Fund(t *testing.T) {
	f := newBuilderFixture(t)

	ix, err := f.builder.Fund(f.buyer, f.record)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 4)
	assertMeta(t, accounts[0], f.buyer, true, true)
	assertMeta(t, accounts[1], f.record, true, false)
	assertMeta(t, accounts[2], f.vault, true, false)
	assertMeta(t, accounts[3], solana.SystemProgramID, false, false)

	assert.Equal(t, []byte{2}, instructionData(t, ix))
}

func TestInstructionBuilder_Confirm(t *testing.T) {
	f := newBuilderFixture(t)

	ix, err := f.builder.Confirm(f.seller, f.record)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 4)
	assertMeta(t, accounts[0], f.seller, true, true)
	assertMeta(t, accounts[1], f.record, true, false)
	assertMeta(t, accounts[2], f.vault, true, false)
	assertMeta(t, accounts[3], solana.SystemProgramID, false, false)

	assert.Equal(t, []byte{3}, instructionData(t, ix))
}

func TestInstructionBuilder_ArbiterConfirm(t *testing.T) {
	f := newBuilderFixture(t)

	ix, err := f.builder.ArbiterConfirm(f.arbiter, f.record, f.seller)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 4)
	assertMeta(t, accounts[0], f.arbiter, true, true)
	assertMeta(t, accounts[1], f.record, true, false)
	assertMeta(t, accounts[2], f.vault, true, false)
	assertMeta(t, accounts[3], f.seller, true, false)

	assert.Equal(t, []byte{4}, instructionData(t, ix))
}

func TestInstructionBuilder_ArbiterCancel(t *testing.T) {
	f := newBuilderFixture(t)

	ix, err := f.builder.ArbiterCancel(f.arbiter, f.record, f.buyer)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 4)
	assertMeta(t, accounts[0], f.arbiter, true, true)
	assertMeta(t, accounts[1], f.record, true, false)
	assertMeta(t, accounts[2], f.vault, true, false)
	assertMeta(t, accounts[3], f.buyer, true, false)

	assert.Equal(t, []byte{5}, instructionData(t, ix))
}

func TestInstructionBuilder_MutualCancel(t *testing.T) {
	f := newBuilderFixture(t)

	ix, err := f.builder.MutualCancel(f.buyer, f.seller, f.record)
	require.NoError(t, err)

	accounts := ix.Accounts()
	require.Len(t, accounts, 5)
	assertMeta(t, accounts[0], f.buyer, true, true)
	assertMeta(t, accounts[1], f.seller, true, true)
	assertMeta(t, accounts[2], f.record, true, false)
	assertMeta(t, accounts[3], f.vault, true, false)
	assertMeta(t, accounts[4], solana.SystemProgramID, false, false)

	// MutualCancel skips the reserved opcode 7.
	assert.Equal(t, []byte{8}, instructionData(t, ix))
}

func TestInstructionBuilder_Close(t *testing.T) {
	f := newBuilderFixture(t)

	ix := f.builder.Close(f.buyer, f.record)

	accounts := ix.Accounts()
	require.Len(t, accounts, 2)
	assertMeta(t, accounts[0], f.buyer, true, true)
	assertMeta(t, accounts[1], f.record, true, false)

	assert.Equal(t, []byte{6}, instructionData(t, ix))
}
