package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escrowctl/internal/core/domain"
	"escrowctl/pkg/apperror"
)

var allStates = []domain.EscrowState{
	domain.StateUninitialized,
	domain.StateCreated,
	domain.StateInitialized,
	domain.StateFunded,
	domain.StateCompleted,
	domain.StateCancelled,
}

// TestAuthorize_Table walks every (state, action) pair: listed states pass,
// every other state yields a GUARD_001 wrong-state error.
func TestAuthorize_Table(t *testing.T) {
	legal := map[domain.Action][]domain.EscrowState{
		domain.ActionJoinOffer:      {domain.StateCreated},
		domain.ActionFund:           {domain.StateInitialized},
		domain.ActionConfirm:        {domain.StateFunded},
		domain.ActionArbiterConfirm: {domain.StateFunded},
		domain.ActionArbiterCancel:  {domain.StateFunded},
		domain.ActionMutualCancel:   {domain.StateInitialized, domain.StateFunded},
		domain.ActionClose:          {domain.StateCompleted, domain.StateCancelled},
	}

	for action, okStates := range legal {
		for _, state := range allStates {
			allowed := false
			for _, s := range okStates {
				if s == state {
					allowed = true
				}
			}

			t.Run(action.String()+"_"+state.String(), func(t *testing.T) {
				err := Authorize(state, action)
				if allowed {
					assert.NoError(t, err)
					return
				}

				require.Error(t, err)
				var appErr *apperror.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, "GUARD_001", appErr.Code)
				assert.Contains(t, appErr.Message, state.String())
			})
		}
	}
}

func TestAuthorize_CreateOfferHasNoPrecondition(t *testing.T) {
	for _, state := range allStates {
		assert.NoError(t, Authorize(state, domain.ActionCreateOffer), state.String())
	}
}

func TestAuthorize_WrongStateListsExpectations(t *testing.T) {
	err := Authorize(domain.StateFunded, domain.ActionClose)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Message, "Completed or Cancelled")
	assert.Contains(t, appErr.Message, "have Funded")
}
