package seller

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data-access contract the seller domain consumes.
// Each call is atomic on its own; multi-step mutations go through InTx.
type Repository interface {
	// InTx runs fn against a transaction-bound repository. The
	// transaction rolls back when fn errors, so a failed reconciliation
	// or transition leaves no partial mutation.
	InTx(ctx context.Context, fn func(Repository) error) error

	// Profile
	//
	// GetSellerProfileForUpdate locks the profile row for the rest of
	// the transaction, serializing concurrent updates per seller.
	GetSellerProfile(ctx context.Context, sellerID uuid.UUID) (*SellerProfile, error)
	GetSellerProfileForUpdate(ctx context.Context, sellerID uuid.UUID) (*SellerProfile, error)
	UpdateSellerProfile(ctx context.Context, profile *SellerProfile) error
	CountSellers(ctx context.Context) (int, error)
	ListSellers(ctx context.Context, offset, limit int) ([]SellerSummary, error)

	// Managers. Write methods are reserved for the reconciler plan.
	GetManagers(ctx context.Context, sellerID uuid.UUID) ([]ManagerAssignment, error)
	GetManagerOrderingCount(ctx context.Context, sellerID uuid.UUID) (int, error)
	CreateManager(ctx context.Context, m ManagerAssignment) error
	UpdateManager(ctx context.Context, m ManagerAssignment) error
	DeleteManager(ctx context.Context, sellerID uuid.UUID, ordering int) error

	// Shop status
	GetShopStatus(ctx context.Context, sellerID uuid.UUID) (ShopStatus, error)
	UpdateShopStatus(ctx context.Context, sellerID uuid.UUID, status ShopStatus) error

	// Audit log. GetAuditSnapshot returns (nil, nil) when no record
	// exists yet; AppendAuditRecord never updates or deletes.
	GetAuditSnapshot(ctx context.Context, sellerID uuid.UUID) (*AuditRecord, error)
	AppendAuditRecord(ctx context.Context, rec *AuditRecord) error
	ListStatusHistory(ctx context.Context, sellerID uuid.UUID) ([]StatusHistoryEntry, error)

	// Lookups
	ListSellerCategories(ctx context.Context) ([]SellerCategory, error)
}
