package domain

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveVault_Deterministic(t *testing.T) {
	escrow := solana.NewWallet().PublicKey()
	program := solana.NewWallet().PublicKey()

	addr1, bump1, err := DeriveVault(escrow, program)
	require.NoError(t, err)
	addr2, bump2, err := DeriveVault(escrow, program)
	require.NoError(t, err)

	assert.Equal(t, addr1, addr2)
	assert.Equal(t, bump1, bump2)
}

func TestDeriveVault_DependsOnEscrowAndProgram(t *testing.T) {
	program := solana.NewWallet().PublicKey()
	escrowA := solana.NewWallet().PublicKey()
	escrowB := solana.NewWallet().PublicKey()

	addrA, _, err := DeriveVault(escrowA, program)
	require.NoError(t, err)
	addrB, _, err := DeriveVault(escrowB, program)
	require.NoError(t, err)
	assert.NotEqual(t, addrA, addrB)

	otherProgram := solana.NewWallet().PublicKey()
	addrA2, _, err := DeriveVault(escrowA, otherProgram)
	require.NoError(t, err)
	assert.NotEqual(t, addrA, addrA2)
}

func TestDeriveVault_OffCurve(t *testing.T) {
	// A PDA must never be a valid signing key.
	escrow := solana.NewWallet().PublicKey()
	program := solana.NewWallet().PublicKey()

	addr, _, err := DeriveVault(escrow, program)
	require.NoError(t, err)
	assert.False(t, addr.IsOnCurve())
}
