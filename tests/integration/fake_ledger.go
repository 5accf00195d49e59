package integration

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"

	"escrowctl/internal/core/domain"
	"escrowctl/internal/core/ports"
)

// fakeLedger is an in-memory stand-in for the remote ledger: it stores raw
// account payloads and interprets submitted transactions the way the escrow
// program would, so full invocations can run without a validator.
type fakeLedger struct {
	mu       sync.Mutex
	program  solana.PublicKey
	accounts map[solana.PublicKey][]byte
	nextSig  byte
}

func newFakeLedger(program solana.PublicKey) *fakeLedger {
	return &fakeLedger{
		program:  program,
		accounts: make(map[solana.PublicKey][]byte),
	}
}

// ---- ports.LedgerReader ----

func (f *fakeLedger) GetAccountData(_ context.Context, address solana.PublicKey) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.accounts[address]
	if !ok {
		return nil, fmt.Errorf("account %s not found", address)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (f *fakeLedger) MinimumBalance(_ context.Context, size uint64) (uint64, error) {
	return size * 6960, nil
}

func (f *fakeLedger) LatestBlockhash(_ context.Context) (solana.Hash, error) {
	var h solana.Hash
	copy(h[:], []byte("fake-ledger-blockhash-0123456789"))
	return h, nil
}

// ---- ports.LedgerSubmitter ----

func (f *fakeLedger) Simulate(_ context.Context, tx *solana.Transaction) (*ports.SimulationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	scratch := make(map[solana.PublicKey][]byte, len(f.accounts))
	for k, v := range f.accounts {
		cp := make([]byte, len(v))
		copy(cp, v)
		scratch[k] = cp
	}

	logs, err := applyTransaction(scratch, f.program, tx)
	res := &ports.SimulationResult{Logs: logs}
	if err != nil {
		res.Err = err.Error()
	}
	return res, nil
}

func (f *fakeLedger) Submit(_ context.Context, tx *solana.Transaction) (solana.Signature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := applyTransaction(f.accounts, f.program, tx); err != nil {
		return solana.Signature{}, err
	}

	f.nextSig++
	return solana.Signature{f.nextSig}, nil
}

// applyTransaction interprets every instruction against the account map.
func applyTransaction(accounts map[solana.PublicKey][]byte, program solana.PublicKey, tx *solana.Transaction) ([]string, error) {
	var logs []string

	for i, inst := range tx.Message.Instructions {
		progID := tx.Message.AccountKeys[inst.ProgramIDIndex]

		metas := make([]solana.PublicKey, len(inst.Accounts))
		for j, idx := range inst.Accounts {
			metas[j] = tx.Message.AccountKeys[idx]
		}

		var err error
		switch {
		case progID.Equals(solana.SystemProgramID):
			err = applySystemInstruction(accounts, metas, inst.Data)
		case progID.Equals(program):
			logs = append(logs, fmt.Sprintf("Program %s invoke [1]", program))
			err = applyEscrowInstruction(accounts, program, metas, inst.Data)
		default:
			err = fmt.Errorf("unknown program %s", progID)
		}
		if err != nil {
			logs = append(logs, fmt.Sprintf("Program log: instruction %d failed: %v", i, err))
			return logs, err
		}
	}

	return logs, nil
}

// applySystemInstruction understands just enough of the system program to
// allocate accounts: discriminant 0 is CreateAccount.
func applySystemInstruction(accounts map[solana.PublicKey][]byte, metas []solana.PublicKey, data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("system instruction too short")
	}
	if binary.LittleEndian.Uint32(data[0:4]) != 0 {
		return fmt.Errorf("unsupported system instruction")
	}
	if len(data) < 4+8+8+32 || len(metas) < 2 {
		return fmt.Errorf("malformed create account instruction")
	}

	space := binary.LittleEndian.Uint64(data[12:20])
	newAccount := metas[1]
	if _, exists := accounts[newAccount]; exists {
		return fmt.Errorf("account %s already in use", newAccount)
	}
	accounts[newAccount] = make([]byte, space)
	return nil
}

func applyEscrowInstruction(accounts map[solana.PublicKey][]byte, program solana.PublicKey, metas []solana.PublicKey, data []byte) error {
	if len(data) < 1 {
		return fmt.Errorf("missing opcode")
	}
	opcode := domain.Action(data[0])

	recordIndex := 1 // record is the second account for every action but MutualCancel
	if opcode == domain.ActionMutualCancel {
		recordIndex = 2
	}
	if len(metas) <= recordIndex {
		return fmt.Errorf("missing record account")
	}
	recordKey := metas[recordIndex]

	record, ok := accounts[recordKey]
	if !ok {
		return fmt.Errorf("record %s not found", recordKey)
	}
	if len(record) < domain.RecordSize {
		return fmt.Errorf("record too small")
	}
	state := domain.EscrowState(record[104])

	switch opcode {
	case domain.ActionCreateOffer:
		if state != domain.StateUninitialized {
			return fmt.Errorf("record already initialized")
		}
		if len(data) != 1+8+32 {
			return fmt.Errorf("malformed create offer payload")
		}
		_, bump, err := domain.DeriveVault(recordKey, program)
		if err != nil {
			return err
		}
		copy(record[0:32], metas[0].Bytes()) // buyer
		copy(record[64:96], data[9:41])      // arbiter
		copy(record[96:104], data[1:9])      // amount, already little-endian
		record[104] = byte(domain.StateCreated)
		record[105] = bump

	case domain.ActionJoinOffer:
		if state != domain.StateCreated {
			return fmt.Errorf("escrow not in Created state")
		}
		if len(data) != 1+32 {
			return fmt.Errorf("malformed join payload")
		}
		copy(record[32:64], data[1:33])
		record[104] = byte(domain.StateInitialized)

	case domain.ActionFund:
		if state != domain.StateInitialized {
			return fmt.Errorf("escrow not in Initialized state")
		}
		record[104] = byte(domain.StateFunded)

	case domain.ActionConfirm, domain.ActionArbiterConfirm:
		if state != domain.StateFunded {
			return fmt.Errorf("escrow not in Funded state")
		}
		record[104] = byte(domain.StateCompleted)

	case domain.ActionArbiterCancel:
		if state != domain.StateFunded {
			return fmt.Errorf("escrow not in Funded state")
		}
		record[104] = byte(domain.StateCancelled)

	case domain.ActionMutualCancel:
		if state != domain.StateInitialized && state != domain.StateFunded {
			return fmt.Errorf("escrow not cancellable")
		}
		record[104] = byte(domain.StateCancelled)

	case domain.ActionClose:
		if !state.IsTerminal() {
			return fmt.Errorf("escrow not settled")
		}
		delete(accounts, recordKey)

	default:
		return fmt.Errorf("unknown opcode %d", data[0])
	}

	return nil
}
