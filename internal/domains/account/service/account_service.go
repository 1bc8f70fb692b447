package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"selleradmin-backend/internal/domains/account"
	"selleradmin-backend/pkg/jwt"
)

// bcryptCost balances hashing latency against brute-force resistance.
const bcryptCost = 12

type accountService struct {
	repo       account.Repository
	jwtManager *jwt.Manager
}

// NewAccountService builds the account business-logic layer.
func NewAccountService(repo account.Repository, jwtManager *jwt.Manager) account.Service {
	return &accountService{repo: repo, jwtManager: jwtManager}
}

// SignUp registers a seller account: duplicate check, bcrypt hash,
// account row, empty seller profile in pending state, and the seeded
// first audit record - all in one transaction.
func (s *accountService) SignUp(ctx context.Context, req account.SignUpRequest) (*account.AccountDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	newAccount := &account.Account{
		ID:           uuid.New(),
		Account:      req.Account,
		PasswordHash: string(passwordHash),
		Role:         account.RoleSeller,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repo.InTx(ctx, func(r account.Repository) error {
		exists, err := r.ExistsByAccount(ctx, req.Account)
		if err != nil {
			return fmt.Errorf("check account exists: %w", err)
		}
		if exists {
			return account.ErrAccountExists
		}

		if err := r.CreateAccount(ctx, newAccount); err != nil {
			return err
		}

		if err := r.CreateSellerProfile(ctx, newAccount.ID); err != nil {
			return fmt.Errorf("create seller profile: %w", err)
		}

		if err := r.SeedAuditRecord(ctx, newAccount.ID, newAccount.ID); err != nil {
			return fmt.Errorf("seed audit record: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := newAccount.ToDTO()
	return &dto, nil
}

// SignIn verifies credentials and issues a 24h session token embedding
// the login handle. Unknown handle and wrong password return the same
// error so callers cannot probe for registered accounts.
func (s *accountService) SignIn(ctx context.Context, req account.SignInRequest) (*account.SignInResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByAccount(ctx, req.Account)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return nil, account.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, account.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateSessionToken(a.Account)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	return &account.SignInResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(jwt.SessionTTL),
	}, nil
}

func (s *accountService) GetByAccount(ctx context.Context, handle string) (*account.Account, error) {
	return s.repo.FindByAccount(ctx, handle)
}
