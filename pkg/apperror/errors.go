package apperror

import (
	"fmt"
	"strings"
)

// Exit codes per error class. Anything that reaches main with an AppError
// terminates the invocation with its ExitCode.
const (
	ExitUsage      = 2 // bad local input: keypair file, address string
	ExitLayout     = 3 // malformed account data
	ExitGuard      = 4 // precondition not met
	ExitRemote     = 5 // RPC / network failure
	ExitSimulation = 6 // dry run reported a failure
)

// AppError is a structured error that maps to CLI exit codes.
type AppError struct {
	Code     string `json:"error_code"`
	Message  string `json:"message"`
	ExitCode int    `json:"-"`
	Err      error  `json:"-"` // Wrapped underlying error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, exitCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
	}
}

// Wrap wraps an underlying error with an AppError.
func Wrap(code string, message string, exitCode int, err error) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: exitCode,
		Err:      err,
	}
}

// ---- Local input (KEY, ADDR) ----

// ErrKeypairFile reports an unreadable or malformed keypair file. Raised
// before any network call is made.
func ErrKeypairFile(path string, err error) *AppError {
	return Wrap("KEY_001", fmt.Sprintf("invalid keypair file %q", path), ExitUsage, err)
}

// ErrBadAddress reports a malformed base58 address string.
func ErrBadAddress(input string, err error) *AppError {
	return Wrap("ADDR_001", fmt.Sprintf("invalid address %q", input), ExitUsage, err)
}

// ---- Account layout (LAYOUT) ----

// ErrRecordTooShort reports an escrow account shorter than the fixed record
// layout. The observed length is part of the message.
func ErrRecordTooShort(got int, want int) *AppError {
	return New("LAYOUT_001", fmt.Sprintf("escrow account data too short: got %d bytes, want %d", got, want), ExitLayout)
}

// ErrInvalidStateByte reports a state discriminant outside the known range.
func ErrInvalidStateByte(b byte) *AppError {
	return New("LAYOUT_002", fmt.Sprintf("invalid escrow state byte: %d", b), ExitLayout)
}

// ---- State machine guard (GUARD) ----

// ErrWrongState reports a pre-flight precondition failure: the escrow is not
// in any of the states the requested action accepts.
func ErrWrongState(expected []string, actual string) *AppError {
	return New("GUARD_001", fmt.Sprintf("wrong escrow state: want %s, have %s", strings.Join(expected, " or "), actual), ExitGuard)
}

// ---- Remote ledger (RPC, SIM) ----

// ErrRemote wraps a failed RPC round trip. No automatic retry happens; the
// caller re-invokes after correcting state.
func ErrRemote(op string, err error) *AppError {
	return Wrap("RPC_001", fmt.Sprintf("remote ledger call failed: %s", op), ExitRemote, err)
}

// ErrSimulation reports a dry run that the ledger rejected. The diagnostic
// trace has already been surfaced by the pipeline; the transaction is never
// submitted.
func ErrSimulation(detail string) *AppError {
	return New("SIM_001", fmt.Sprintf("transaction simulation failed: %s", detail), ExitSimulation)
}

// InternalError wraps an unexpected local failure.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "internal error", 1, err)
}
