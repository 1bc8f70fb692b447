package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"selleradmin-backend/internal/domains/seller"
	"selleradmin-backend/pkg/database"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the same
// query methods serve pooled reads and transaction-bound writes.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	pool *pgxpool.Pool
	db   querier
}

// NewPostgresRepository creates the seller data-access layer on a pgx
// pool.
func NewPostgresRepository(pool *pgxpool.Pool) seller.Repository {
	return &postgresRepository{pool: pool, db: pool}
}

// InTx runs fn against a transaction-bound copy of the repository.
func (r *postgresRepository) InTx(ctx context.Context, fn func(seller.Repository) error) error {
	if r.pool == nil {
		// Already transaction-bound; nested scopes join the same tx.
		return fn(r)
	}

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&postgresRepository{db: tx})
	})
}

const sellerProfileColumns = `
	seller_id, name, name_eng, ceo_name, contact_phone,
	service_center_number, site_url, category_id, commission_rate,
	short_introduction, detail_introduction, zip_code, address,
	address_detail, shop_status_id, updated_at`

func scanSellerProfile(row pgx.Row) (*seller.SellerProfile, error) {
	var p seller.SellerProfile
	err := row.Scan(
		&p.SellerID,
		&p.Name,
		&p.NameEng,
		&p.CEOName,
		&p.ContactPhone,
		&p.ServiceCenterNumber,
		&p.SiteURL,
		&p.CategoryID,
		&p.CommissionRate,
		&p.ShortIntroduction,
		&p.DetailIntroduction,
		&p.ZipCode,
		&p.Address,
		&p.AddressDetail,
		&p.ShopStatusID,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, seller.ErrSellerNotFound
		}
		return nil, fmt.Errorf("scan seller profile: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) GetSellerProfile(ctx context.Context, sellerID uuid.UUID) (*seller.SellerProfile, error) {
	query := `SELECT` + sellerProfileColumns + `
		FROM seller_profiles
		WHERE seller_id = $1`

	return scanSellerProfile(r.db.QueryRow(ctx, query, sellerID))
}

// GetSellerProfileForUpdate locks the profile row, serializing the
// read-decide-write sequence of concurrent updates to one seller.
func (r *postgresRepository) GetSellerProfileForUpdate(ctx context.Context, sellerID uuid.UUID) (*seller.SellerProfile, error) {
	query := `SELECT` + sellerProfileColumns + `
		FROM seller_profiles
		WHERE seller_id = $1
		FOR UPDATE`

	return scanSellerProfile(r.db.QueryRow(ctx, query, sellerID))
}

func (r *postgresRepository) UpdateSellerProfile(ctx context.Context, p *seller.SellerProfile) error {
	query := `
		UPDATE seller_profiles SET
			name = $2, name_eng = $3, ceo_name = $4, contact_phone = $5,
			service_center_number = $6, site_url = $7, category_id = $8,
			commission_rate = $9, short_introduction = $10,
			detail_introduction = $11, zip_code = $12, address = $13,
			address_detail = $14, updated_at = NOW()
		WHERE seller_id = $1`

	tag, err := r.db.Exec(ctx, query,
		p.SellerID,
		p.Name,
		p.NameEng,
		p.CEOName,
		p.ContactPhone,
		p.ServiceCenterNumber,
		p.SiteURL,
		p.CategoryID,
		p.CommissionRate,
		p.ShortIntroduction,
		p.DetailIntroduction,
		p.ZipCode,
		p.Address,
		p.AddressDetail,
	)
	if err != nil {
		return fmt.Errorf("update seller profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return seller.ErrSellerNotFound
	}

	return nil
}

func (r *postgresRepository) CountSellers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM seller_profiles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sellers: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) ListSellers(ctx context.Context, offset, limit int) ([]seller.SellerSummary, error) {
	query := `
		SELECT
			p.seller_id, a.account, p.name, p.name_eng, p.category_id,
			p.shop_status_id, s.name AS shop_status, p.updated_at
		FROM seller_profiles p
		JOIN accounts a ON a.id = p.seller_id
		JOIN shop_statuses s ON s.id = p.shop_status_id
		ORDER BY p.updated_at DESC, p.seller_id
		OFFSET $1 LIMIT $2`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	summaries := make([]seller.SellerSummary, 0, limit)
	for rows.Next() {
		var s seller.SellerSummary
		if err := rows.Scan(
			&s.SellerID,
			&s.Account,
			&s.Name,
			&s.NameEng,
			&s.CategoryID,
			&s.ShopStatusID,
			&s.ShopStatus,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan seller summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func (r *postgresRepository) GetManagers(ctx context.Context, sellerID uuid.UUID) ([]seller.ManagerAssignment, error) {
	query := `
		SELECT seller_id, ordering, name, phone, email
		FROM seller_managers
		WHERE seller_id = $1
		ORDER BY ordering`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("get managers: %w", err)
	}
	defer rows.Close()

	managers := make([]seller.ManagerAssignment, 0, seller.MaxManagers)
	for rows.Next() {
		var m seller.ManagerAssignment
		if err := rows.Scan(&m.SellerID, &m.Ordering, &m.Name, &m.Phone, &m.Email); err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		managers = append(managers, m)
	}

	return managers, rows.Err()
}

// GetManagerOrderingCount returns the highest ordering in use, which
// equals the row count because orderings are a contiguous 1-based
// prefix.
func (r *postgresRepository) GetManagerOrderingCount(ctx context.Context, sellerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(MAX(ordering), 0) FROM seller_managers WHERE seller_id = $1`,
		sellerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("get manager ordering count: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CreateManager(ctx context.Context, m seller.ManagerAssignment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO seller_managers (seller_id, ordering, name, phone, email)
		 VALUES ($1, $2, $3, $4, $5)`,
		m.SellerID, m.Ordering, m.Name, m.Phone, m.Email,
	)
	if err != nil {
		return fmt.Errorf("create manager: %w", err)
	}
	return nil
}

func (r *postgresRepository) UpdateManager(ctx context.Context, m seller.ManagerAssignment) error {
	_, err := r.db.Exec(ctx,
		`UPDATE seller_managers SET name = $3, phone = $4, email = $5
		 WHERE seller_id = $1 AND ordering = $2`,
		m.SellerID, m.Ordering, m.Name, m.Phone, m.Email,
	)
	if err != nil {
		return fmt.Errorf("update manager: %w", err)
	}
	return nil
}

func (r *postgresRepository) DeleteManager(ctx context.Context, sellerID uuid.UUID, ordering int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM seller_managers WHERE seller_id = $1 AND ordering = $2`,
		sellerID, ordering,
	)
	if err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetShopStatus(ctx context.Context, sellerID uuid.UUID) (seller.ShopStatus, error) {
	var status seller.ShopStatus
	err := r.db.QueryRow(ctx,
		`SELECT shop_status_id FROM seller_profiles WHERE seller_id = $1 FOR UPDATE`,
		sellerID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, seller.ErrSellerNotFound
		}
		return 0, fmt.Errorf("get shop status: %w", err)
	}
	return status, nil
}

func (r *postgresRepository) UpdateShopStatus(ctx context.Context, sellerID uuid.UUID, status seller.ShopStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE seller_profiles SET shop_status_id = $2, updated_at = NOW() WHERE seller_id = $1`,
		sellerID, status,
	)
	if err != nil {
		return fmt.Errorf("update shop status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return seller.ErrSellerNotFound
	}
	return nil
}

func (r *postgresRepository) GetAuditSnapshot(ctx context.Context, sellerID uuid.UUID) (*seller.AuditRecord, error) {
	query := `
		SELECT
			no, seller_id, name, name_eng, ceo_name, contact_phone,
			service_center_number, site_url, category_id, commission_rate,
			short_introduction, detail_introduction, zip_code, address,
			address_detail, shop_status_id, modifier_id, created_at
		FROM seller_audit_logs
		WHERE seller_id = $1
		ORDER BY no DESC
		LIMIT 1`

	var rec seller.AuditRecord
	err := r.db.QueryRow(ctx, query, sellerID).Scan(
		&rec.No,
		&rec.SellerID,
		&rec.Name,
		&rec.NameEng,
		&rec.CEOName,
		&rec.ContactPhone,
		&rec.ServiceCenterNumber,
		&rec.SiteURL,
		&rec.CategoryID,
		&rec.CommissionRate,
		&rec.ShortIntroduction,
		&rec.DetailIntroduction,
		&rec.ZipCode,
		&rec.Address,
		&rec.AddressDetail,
		&rec.ShopStatusID,
		&rec.ModifierID,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit snapshot: %w", err)
	}

	return &rec, nil
}

func (r *postgresRepository) AppendAuditRecord(ctx context.Context, rec *seller.AuditRecord) error {
	query := `
		INSERT INTO seller_audit_logs (
			seller_id, name, name_eng, ceo_name, contact_phone,
			service_center_number, site_url, category_id, commission_rate,
			short_introduction, detail_introduction, zip_code, address,
			address_detail, shop_status_id, modifier_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, NOW()
		)`

	_, err := r.db.Exec(ctx, query,
		rec.SellerID,
		rec.Name,
		rec.NameEng,
		rec.CEOName,
		rec.ContactPhone,
		rec.ServiceCenterNumber,
		rec.SiteURL,
		rec.CategoryID,
		rec.CommissionRate,
		rec.ShortIntroduction,
		rec.DetailIntroduction,
		rec.ZipCode,
		rec.Address,
		rec.AddressDetail,
		rec.ShopStatusID,
		rec.ModifierID,
	)
	if err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}

	return nil
}

func (r *postgresRepository) ListStatusHistory(ctx context.Context, sellerID uuid.UUID) ([]seller.StatusHistoryEntry, error) {
	query := `
		SELECT l.no, l.created_at, s.name AS shop_status, a.account AS modifier
		FROM seller_audit_logs l
		JOIN shop_statuses s ON s.id = l.shop_status_id
		JOIN accounts a ON a.id = l.modifier_id
		WHERE l.seller_id = $1
		ORDER BY l.no`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}
	defer rows.Close()

	var history []seller.StatusHistoryEntry
	for rows.Next() {
		var e seller.StatusHistoryEntry
		if err := rows.Scan(&e.No, &e.CreatedAt, &e.ShopStatus, &e.Modifier); err != nil {
			return nil, fmt.Errorf("scan status history entry: %w", err)
		}
		history = append(history, e)
	}

	return history, rows.Err()
}

func (r *postgresRepository) ListSellerCategories(ctx context.Context) ([]seller.SellerCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM seller_categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list seller categories: %w", err)
	}
	defer rows.Close()

	var categories []seller.SellerCategory
	for rows.Next() {
		var c seller.SellerCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan seller category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
