package service

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/rs/zerolog"

	"escrowctl/internal/core/domain"
	"escrowctl/internal/core/ports"
	"escrowctl/pkg/apperror"
)

// EscrowServiceImpl implements ports.EscrowService. Each method performs one
// synchronous invocation end-to-end: read state, guard, build, sign,
// simulate, submit. Nothing local mutates, so errors need no rollback.
//
// The read-then-act sequence is racy by design: a precondition true at read
// time may be false by submission time, in which case the program rejects
// the transaction and the rejection is surfaced verbatim.
type EscrowServiceImpl struct {
	reader    ports.LedgerReader
	builder   *InstructionBuilder
	assembler *TransactionAssembler
	pipeline  *SubmissionPipeline
	programID solana.PublicKey
	log       zerolog.Logger
}

// NewEscrowService creates a new EscrowServiceImpl bound to one program id.
func NewEscrowService(
	reader ports.LedgerReader,
	submitter ports.LedgerSubmitter,
	programID solana.PublicKey,
	log zerolog.Logger,
) *EscrowServiceImpl {
	return &EscrowServiceImpl{
		reader:    reader,
		builder:   NewInstructionBuilder(programID),
		assembler: NewTransactionAssembler(reader),
		pipeline:  NewSubmissionPipeline(submitter, log),
		programID: programID,
		log:       log,
	}
}

// readRecord fetches and decodes the escrow account.
func (s *EscrowServiceImpl) readRecord(ctx context.Context, escrow solana.PublicKey) (*domain.EscrowRecord, error) {
	data, err := s.reader.GetAccountData(ctx, escrow)
	if err != nil {
		return nil, apperror.ErrRemote("get account data", err)
	}
	return domain.DecodeEscrowRecord(data)
}

// guard reads current state and authorizes the action before anything is
// built. No instruction exists yet when this fails.
func (s *EscrowServiceImpl) guard(ctx context.Context, escrow solana.PublicKey, action domain.Action) (*domain.EscrowRecord, error) {
	rec, err := s.readRecord(ctx, escrow)
	if err != nil {
		return nil, err
	}
	if err := Authorize(rec.State, action); err != nil {
		s.log.Debug().
			Str("escrow", escrow.String()).
			Str("action", action.String()).
			Str("state", rec.State.String()).
			Msg("guard rejected action")
		return nil, err
	}
	return rec, nil
}

// CreateOffer allocates the 106-byte record funded to its rent-exempt
// reserve and initializes it, in a single transaction signed by the buyer
// and the fresh record keypair.
func (s *EscrowServiceImpl) CreateOffer(ctx context.Context, req ports.CreateOfferRequest) (solana.Signature, error) {
	buyer := req.Buyer.PublicKey()
	record := req.Escrow.PublicKey()

	s.log.Info().
		Str("escrow", record.String()).
		Uint64("amount", req.Amount).
		Msg("creating escrow offer")

	rent, err := s.reader.MinimumBalance(ctx, domain.RecordSize)
	if err != nil {
		return solana.Signature{}, apperror.ErrRemote("get minimum balance", err)
	}

	allocIx := system.NewCreateAccountInstruction(
		rent,
		domain.RecordSize,
		s.programID,
		buyer,
		record,
	).Build()

	offerIx, err := s.builder.CreateOffer(buyer, record, req.Arbiter, req.Amount)
	if err != nil {
		return solana.Signature{}, apperror.InternalError(err)
	}

	tx, err := s.assembler.Assemble(ctx,
		[]solana.Instruction{allocIx, offerIx},
		buyer,
		[]solana.PrivateKey{req.Buyer, req.Escrow},
	)
	if err != nil {
		return solana.Signature{}, err
	}

	return s.pipeline.Run(ctx, tx)
}

func (s *EscrowServiceImpl) JoinOffer(ctx context.Context, req ports.JoinOfferRequest) (solana.Signature, error) {
	if _, err := s.guard(ctx, req.Escrow, domain.ActionJoinOffer); err != nil {
		return solana.Signature{}, err
	}

	seller := req.Seller.PublicKey()
	ix := s.builder.JoinOffer(seller, req.Escrow)

	tx, err := s.assembler.Assemble(ctx, []solana.Instruction{ix}, seller, []solana.PrivateKey{req.Seller})
	if err != nil {
		return solana.Signature{}, err
	}

	return s.pipeline.Run(ctx, tx)
}

func (s *EscrowServiceImpl) Fund(ctx context.Context, req ports.FundRequest) (solana.Signature, error) {
	if _, err := s.guard(ctx, req.Escrow, domain.ActionFund); err != nil {
		return solana.Signature{}, err
	}

	buyer := req.Buyer.PublicKey()
	ix, err := s.builder.Fund(buyer, req.Escrow)
	if err != nil {
		return solana.Signature{}, apperror.InternalError(err)
	}

	tx, err := s.assembler.Assemble(ctx, []solana.Instruction{ix}, buyer, []solana.PrivateKey{req.Buyer})
	if err != nil {
		return solana.Signature{}, err
	}

	return s.pipeline.Run(ctx, tx)
}

func (s *EscrowServiceImpl) Confirm(ctx context.Context, req ports.ConfirmRequest) (solana.Signature, error) {
	if _, err := s.guard(ctx, req.Escrow, domain.ActionConfirm); err != nil {
		return solana.Signature{}, err
	}

	seller := req.Seller.PublicKey()
	ix, err := s.builder.Confirm(seller, req.Escrow)
	if err != nil {
		return solana.Signature{}, apperror.InternalError(err)
	}

	tx, err := s.assembler.Assemble(ctx, []solana.Instruction{ix}, seller, []solana.PrivateKey{req.Seller})
	if err != nil {
		return solana.Signature{}, err
	}

	return s.pipeline.Run(ctx, tx)
}

func (s *EscrowServiceImpl) ArbiterConfirm(ctx context.Context, req ports.ArbiterConfirmRequest) (solana.Signature, error) {
	if _, err := s.guard(ctx, req.Escrow, domain.ActionArbiterConfirm); err != nil {
		return solana.Signature{}, err
	}

	arbiter := req.Arbiter.PublicKey()
	ix, err := s.builder.ArbiterConfirm(arbiter, req.Escrow, req.Seller)
	if err != nil {
		return solana.Signature{}, apperror.InternalError(err)
	}

	tx, err := s.assembler.Assemble(ctx, []solana.Instruction{ix}, arbiter, []solana.PrivateKey{req.Arbiter})
	if err != nil {
		return solana.Signature{}, err
	}

	return s.pipeline.Run(ctx, tx)
}

func (s *EscrowServiceImpl) ArbiterCancel(ctx context.Context, req ports.ArbiterCancelRequest) (solana.Signature, error) {
	if _, err := s.guard(ctx, req.Escrow, domain.ActionArbiterCancel); err != nil {
		return solana.Signature{}, err
	}

	arbiter := req.Arbiter.PublicKey()
	ix, err := s.builder.ArbiterCancel(arbiter, req.Escrow, req.Buyer)
	if err != nil {
		return solana.Signature{}, apperror.InternalError(err)
	}

	tx, err := s.assembler.Assemble(ctx, []solana.Instruction{ix}, arbiter, []solana.PrivateKey{req.Arbiter})
	if err != nil {
		return solana.Signature{}, err
	}

	return s.pipeline.Run(ctx, tx)
}

// MutualCancel needs both the buyer and the seller to sign over the same
// message bytes; the buyer pays the fee.
func (s *EscrowServiceImpl) MutualCancel(ctx context.Context, req ports.MutualCancelRequest) (solana.Signature, error) {
	if _, err := s.guard(ctx, req.Escrow, domain.ActionMutualCancel); err != nil {
		return solana.Signature{}, err
	}

	buyer := req.Buyer.PublicKey()
	seller := req.Seller.PublicKey()
	ix, err := s.builder.MutualCancel(buyer, seller, req.Escrow)
	if err != nil {
		return solana.Signature{}, apperror.InternalError(err)
	}

	tx, err := s.assembler.Assemble(ctx, []solana.Instruction{ix}, buyer, []solana.PrivateKey{req.Buyer, req.Seller})
	if err != nil {
		return solana.Signature{}, err
	}

	return s.pipeline.Run(ctx, tx)
}

// Close releases the record's storage. Only legal once the escrow reached a
// terminal state.
func (s *EscrowServiceImpl) Close(ctx context.Context, req ports.CloseRequest) (solana.Signature, error) {
	if _, err := s.guard(ctx, req.Escrow, domain.ActionClose); err != nil {
		return solana.Signature{}, err
	}

	closer := req.Closer.PublicKey()
	ix := s.builder.Close(closer, req.Escrow)

	tx, err := s.assembler.Assemble(ctx, []solana.Instruction{ix}, closer, []solana.PrivateKey{req.Closer})
	if err != nil {
		return solana.Signature{}, err
	}

	return s.pipeline.Run(ctx, tx)
}

// Info reads and decodes the record. No guard, no submission.
func (s *EscrowServiceImpl) Info(ctx context.Context, escrow solana.PublicKey) (*domain.EscrowRecord, error) {
	return s.readRecord(ctx, escrow)
}
