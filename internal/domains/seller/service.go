package seller

import (
	"context"

	"github.com/google/uuid"
)

// Service is the seller-profile business logic contract.
type Service interface {
	GetSellerInformation(ctx context.Context, sellerID uuid.UUID) (*SellerDetail, error)
	ListSellers(ctx context.Context, req ListSellersRequest) (*SellerList, error)
	UpdateSellerInformation(ctx context.Context, sellerID, modifierID uuid.UUID, req UpdateSellerRequest) error
	UpdateShopStatus(ctx context.Context, sellerID, modifierID uuid.UUID, req UpdateShopStatusRequest) error
	ListStatusHistory(ctx context.Context, sellerID uuid.UUID) ([]StatusHistoryEntry, error)
	ListSellerCategories(ctx context.Context) ([]SellerCategory, error)
}
