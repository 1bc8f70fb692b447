package seller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   ShopStatus
		requested ShopStatus
		wantErr   error
	}{
		{"pending to active", ShopStatusPending, ShopStatusActive, nil},
		{"pending cannot terminate directly", ShopStatusPending, ShopStatusTerminated, ErrInvalidTransition},
		{"pending cannot suspend", ShopStatusPending, ShopStatusSuspended, ErrInvalidTransition},

		{"active to terminating", ShopStatusActive, ShopStatusTerminating, nil},
		{"active to suspended", ShopStatusActive, ShopStatusSuspended, nil},
		{"active cannot go back to pending", ShopStatusActive, ShopStatusPending, ErrInvalidTransition},
		{"active cannot terminate directly", ShopStatusActive, ShopStatusTerminated, ErrInvalidTransition},

		{"terminating back to active", ShopStatusTerminating, ShopStatusActive, nil},
		{"terminating to suspended", ShopStatusTerminating, ShopStatusSuspended, nil},
		{"terminating to terminated", ShopStatusTerminating, ShopStatusTerminated, nil},

		{"suspended back to active", ShopStatusSuspended, ShopStatusActive, nil},
		{"suspended to terminating", ShopStatusSuspended, ShopStatusTerminating, nil},
		{"suspended cannot terminate directly", ShopStatusSuspended, ShopStatusTerminated, ErrInvalidTransition},

		{"terminated is terminal", ShopStatusTerminated, ShopStatusActive, ErrInvalidTransition},
		{"terminated stays terminated", ShopStatusTerminated, ShopStatusPending, ErrInvalidTransition},

		{"self transition rejected", ShopStatusActive, ShopStatusActive, ErrInvalidTransition},
		{"self transition on suspended rejected", ShopStatusSuspended, ShopStatusSuspended, ErrInvalidTransition},

		{"unknown target id", ShopStatusActive, ShopStatus(99), ErrUnknownShopStatus},
		{"zero target id", ShopStatusActive, ShopStatus(0), ErrUnknownShopStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.current, tt.requested)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// Every status rejects staying put; accepted transitions append audit
// rows, so re-submitting the current status must fail loudly.
func TestValidateTransition_NoSelfTransitions(t *testing.T) {
	statuses := []ShopStatus{
		ShopStatusPending,
		ShopStatusActive,
		ShopStatusTerminated,
		ShopStatusTerminating,
		ShopStatusSuspended,
	}

	for _, s := range statuses {
		assert.ErrorIs(t, ValidateTransition(s, s), ErrInvalidTransition, s.String())
	}
}
