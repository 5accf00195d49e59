package service

import (
	"escrowctl/internal/core/domain"
	"escrowctl/pkg/apperror"
)

// allowedStates lists, per mutating action, the states in which the on-chain
// program accepts it. CreateOffer is absent: it allocates a fresh record and
// has no precondition.
var allowedStates = map[domain.Action][]domain.EscrowState{
	domain.ActionJoinOffer:      {domain.StateCreated},
	domain.ActionFund:           {domain.StateInitialized},
	domain.ActionConfirm:        {domain.StateFunded},
	domain.ActionArbiterConfirm: {domain.StateFunded},
	domain.ActionArbiterCancel:  {domain.StateFunded},
	domain.ActionMutualCancel:   {domain.StateInitialized, domain.StateFunded},
	domain.ActionClose:          {domain.StateCompleted, domain.StateCancelled},
}

// Authorize checks whether an action is legal in the given escrow state.
// This is a pre-flight check that saves a doomed round trip; the program
// re-checks independently and remains the sole authority.
func Authorize(state domain.EscrowState, action domain.Action) error {
	allowed, ok := allowedStates[action]
	if !ok {
		return nil
	}

	for _, s := range allowed {
		if s == state {
			return nil
		}
	}

	expected := make([]string, len(allowed))
	for i, s := range allowed {
		expected[i] = s.String()
	}
	return apperror.ErrWrongState(expected, state.String())
}
