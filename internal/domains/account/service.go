package account

import "context"

// Service is the account business-logic contract.
type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (*AccountDTO, error)
	SignIn(ctx context.Context, req SignInRequest) (*SignInResponse, error)

	// GetByAccount resolves a verified login handle back to its account,
	// used by handlers to identify the modifier of a change.
	GetByAccount(ctx context.Context, handle string) (*Account, error)
}
