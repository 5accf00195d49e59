package service

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"escrowctl/internal/core/ports"
	"escrowctl/pkg/apperror"
)

// TransactionAssembler wraps built instructions into a signed transaction.
type TransactionAssembler struct {
	reader ports.LedgerReader
}

func NewTransactionAssembler(reader ports.LedgerReader) *TransactionAssembler {
	return &TransactionAssembler{reader: reader}
}

// Assemble builds a transaction paid by payer and signs it with every
// keypair whose public key is flagged as a signer. The blockhash is fetched
// here, immediately before signing, so it is as fresh as possible; it is
// never cached across invocations.
//
// Gathering the correct signer set is this client's responsibility; a
// partial set is rejected by the ledger, not locally.
func (a *TransactionAssembler) Assemble(
	ctx context.Context,
	instructions []solana.Instruction,
	payer solana.PublicKey,
	signers []solana.PrivateKey,
) (*solana.Transaction, error) {
	blockhash, err := a.reader.LatestBlockhash(ctx)
	if err != nil {
		return nil, apperror.ErrRemote("get latest blockhash", err)
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("building transaction: %w", err))
	}

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if signers[i].PublicKey().Equals(key) {
				return &signers[i]
			}
		}
		return nil
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("signing transaction: %w", err))
	}

	return tx, nil
}
