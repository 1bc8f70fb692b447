package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the account data-access contract. Sign-up provisions
// the seller profile and seeds its first audit row, so those two writes
// live here rather than in the seller domain's write path.
type Repository interface {
	// InTx runs fn against a transaction-bound repository.
	InTx(ctx context.Context, fn func(Repository) error) error

	ExistsByAccount(ctx context.Context, handle string) (bool, error)

	// CreateAccount returns ErrAccountExists on a duplicate handle.
	CreateAccount(ctx context.Context, a *Account) error

	// FindByAccount returns ErrAccountNotFound for unknown handles.
	FindByAccount(ctx context.Context, handle string) (*Account, error)

	// CreateSellerProfile provisions the empty profile in pending state.
	CreateSellerProfile(ctx context.Context, sellerID uuid.UUID) error

	// SeedAuditRecord appends the first audit snapshot, taken from the
	// freshly provisioned profile.
	SeedAuditRecord(ctx context.Context, sellerID, modifierID uuid.UUID) error
}
