package domain

import (
	"github.com/gagliardetto/solana-go"
)

// vaultSeed is the domain-separation tag for vault derivation. It must match
// the seed the on-chain program uses; a divergence here only surfaces as a
// rejected submission, never as a local error.
var vaultSeed = []byte("vault")

// DeriveVault computes the program-derived vault address for an escrow
// record. Deterministic and pure: the bump returned is the one the program
// stores in the record's vault_bump field at creation.
func DeriveVault(escrow, program solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{vaultSeed, escrow.Bytes()}, program)
}
