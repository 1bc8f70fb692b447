package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"selleradmin-backend/internal/domains/account"
	"selleradmin-backend/internal/domains/seller"
	"selleradmin-backend/pkg/database"
)

type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	pool *pgxpool.Pool
	db   querier
}

// NewPostgresRepository creates the account data-access layer on a pgx
// pool.
func NewPostgresRepository(pool *pgxpool.Pool) account.Repository {
	return &postgresRepository{pool: pool, db: pool}
}

func (r *postgresRepository) InTx(ctx context.Context, fn func(account.Repository) error) error {
	if r.pool == nil {
		return fn(r)
	}

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&postgresRepository{db: tx})
	})
}

func (r *postgresRepository) ExistsByAccount(ctx context.Context, handle string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE account = $1)`,
		handle,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check account exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) CreateAccount(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO accounts (id, account, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		a.ID,
		a.Account,
		a.PasswordHash,
		a.Role,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		// 23505 = unique_violation: a concurrent sign-up won the race
		// between the existence check and this insert.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return account.ErrAccountExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return account.ErrAccountExists
		}
		return fmt.Errorf("create account: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByAccount(ctx context.Context, handle string) (*account.Account, error) {
	query := `
		SELECT id, account, password_hash, role, created_at, updated_at
		FROM accounts
		WHERE account = $1`

	var a account.Account
	err := r.db.QueryRow(ctx, query, handle).Scan(
		&a.ID,
		&a.Account,
		&a.PasswordHash,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &a, nil
}

// CreateSellerProfile provisions the empty profile; business fields
// start blank and the lifecycle starts in pending.
func (r *postgresRepository) CreateSellerProfile(ctx context.Context, sellerID uuid.UUID) error {
	query := `
		INSERT INTO seller_profiles (
			seller_id, name, name_eng, ceo_name, contact_phone,
			service_center_number, site_url, category_id, commission_rate,
			short_introduction, detail_introduction, zip_code, address,
			address_detail, shop_status_id, updated_at
		) VALUES (
			$1, '', '', '', '', '', '', 0, 0, '', '', '', '', '', $2, NOW()
		)`

	_, err := r.db.Exec(ctx, query, sellerID, seller.ShopStatusPending)
	if err != nil {
		return fmt.Errorf("create seller profile: %w", err)
	}

	return nil
}

// SeedAuditRecord copies the freshly provisioned profile into the audit
// log as the seller's first snapshot.
func (r *postgresRepository) SeedAuditRecord(ctx context.Context, sellerID, modifierID uuid.UUID) error {
	query := `
		INSERT INTO seller_audit_logs (
			seller_id, name, name_eng, ceo_name, contact_phone,
			service_center_number, site_url, category_id, commission_rate,
			short_introduction, detail_introduction, zip_code, address,
			address_detail, shop_status_id, modifier_id, created_at
		)
		SELECT
			seller_id, name, name_eng, ceo_name, contact_phone,
			service_center_number, site_url, category_id, commission_rate,
			short_introduction, detail_introduction, zip_code, address,
			address_detail, shop_status_id, $2, NOW()
		FROM seller_profiles
		WHERE seller_id = $1`

	tag, err := r.db.Exec(ctx, query, sellerID, modifierID)
	if err != nil {
		return fmt.Errorf("seed audit record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return seller.ErrSellerNotFound
	}

	return nil
}
