// Package keyfile loads ed25519 keypairs from solana-keygen JSON files.
package keyfile

import (
	"github.com/gagliardetto/solana-go"

	"escrowctl/pkg/apperror"
)

// Source implements ports.KeySource for keypair files on disk.
type Source struct{}

func NewSource() *Source {
	return &Source{}
}

// Load reads a keypair file. Any failure is fatal for the invocation and
// happens before the first network call.
func (s *Source) Load(path string) (solana.PrivateKey, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, apperror.ErrKeypairFile(path, err)
	}
	return key, nil
}
