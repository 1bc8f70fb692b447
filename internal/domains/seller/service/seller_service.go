package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"selleradmin-backend/internal/domains/seller"
	"selleradmin-backend/pkg/cache"
)

const (
	sellerDetailCacheTTL = 15 * time.Minute
	categoryCacheTTL     = time.Hour
	categoryCacheKey     = "seller:categories"
)

type sellerService struct {
	repo  seller.Repository
	cache cache.Cache
}

// NewSellerService builds the seller business-logic layer.
func NewSellerService(repo seller.Repository, c cache.Cache) seller.Service {
	return &sellerService{repo: repo, cache: c}
}

func sellerDetailCacheKey(sellerID uuid.UUID) string {
	return fmt.Sprintf("seller:%s", sellerID)
}

// GetSellerInformation returns the profile and ordered manager list.
// Cache-aside on the detail read; invalidated by every mutation.
func (s *sellerService) GetSellerInformation(ctx context.Context, sellerID uuid.UUID) (*seller.SellerDetail, error) {
	cacheKey := sellerDetailCacheKey(sellerID)

	var detail seller.SellerDetail
	if found, err := s.cache.Get(ctx, cacheKey, &detail); err == nil && found {
		return &detail, nil
	}

	profile, err := s.repo.GetSellerProfile(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	managers, err := s.repo.GetManagers(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("get managers: %w", err)
	}

	detail = seller.SellerDetail{
		SellerProfile: *profile,
		ShopStatus:    profile.ShopStatusID.String(),
		Managers:      managers,
	}

	_ = s.cache.Set(ctx, cacheKey, &detail, sellerDetailCacheTTL)

	return &detail, nil
}

// ListSellers returns one page of the seller list with the total count.
func (s *sellerService) ListSellers(ctx context.Context, req seller.ListSellersRequest) (*seller.SellerList, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	count, err := s.repo.CountSellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count sellers: %w", err)
	}

	sellers, err := s.repo.ListSellers(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}

	return &seller.SellerList{Count: count, Sellers: sellers}, nil
}

// UpdateSellerInformation applies a full profile update: the manager
// list is reconciled positionally, top-level fields are persisted, and
// one merged audit record is appended. The whole sequence runs in a
// single transaction under the seller's row lock.
func (s *sellerService) UpdateSellerInformation(ctx context.Context, sellerID, modifierID uuid.UUID, req seller.UpdateSellerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	err := s.repo.InTx(ctx, func(r seller.Repository) error {
		profile, err := r.GetSellerProfileForUpdate(ctx, sellerID)
		if err != nil {
			return err
		}

		existingCount, err := r.GetManagerOrderingCount(ctx, sellerID)
		if err != nil {
			return fmt.Errorf("get manager ordering count: %w", err)
		}

		plan, err := seller.PlanManagerOps(existingCount, req.ManagerPayloads())
		if err != nil {
			return err
		}

		if err := applyManagerPlan(ctx, r, sellerID, plan); err != nil {
			return err
		}

		applyProfileFields(profile, req)
		if err := r.UpdateSellerProfile(ctx, profile); err != nil {
			return fmt.Errorf("update seller profile: %w", err)
		}

		return appendMergedAudit(ctx, r, profile, modifierID)
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, sellerDetailCacheKey(sellerID))

	return nil
}

// UpdateShopStatus validates the lifecycle move against the whitelist,
// persists the new status and appends a merged audit snapshot.
func (s *sellerService) UpdateShopStatus(ctx context.Context, sellerID, modifierID uuid.UUID, req seller.UpdateShopStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	requested := seller.ShopStatus(req.ShopStatusID)
	if !requested.IsKnown() {
		return seller.ErrUnknownShopStatus
	}

	err := s.repo.InTx(ctx, func(r seller.Repository) error {
		current, err := r.GetShopStatus(ctx, sellerID)
		if err != nil {
			return err
		}

		if err := seller.ValidateTransition(current, requested); err != nil {
			return err
		}

		if err := r.UpdateShopStatus(ctx, sellerID, requested); err != nil {
			return fmt.Errorf("update shop status: %w", err)
		}

		snap, err := r.GetAuditSnapshot(ctx, sellerID)
		if err != nil {
			return fmt.Errorf("get audit snapshot: %w", err)
		}
		if snap == nil {
			profile, err := r.GetSellerProfile(ctx, sellerID)
			if err != nil {
				return err
			}
			fallback := seller.SnapshotFromProfile(profile)
			snap = &fallback
		}

		rec := *snap
		rec.ShopStatusID = requested
		rec.ModifierID = modifierID

		if err := r.AppendAuditRecord(ctx, &rec); err != nil {
			return fmt.Errorf("append audit record: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, sellerDetailCacheKey(sellerID))

	return nil
}

// ListStatusHistory returns the audit-derived lifecycle history.
func (s *sellerService) ListStatusHistory(ctx context.Context, sellerID uuid.UUID) ([]seller.StatusHistoryEntry, error) {
	if _, err := s.repo.GetSellerProfile(ctx, sellerID); err != nil {
		return nil, err
	}

	history, err := s.repo.ListStatusHistory(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}

	return history, nil
}

// ListSellerCategories returns the fixed category lookup, cached.
func (s *sellerService) ListSellerCategories(ctx context.Context) ([]seller.SellerCategory, error) {
	var categories []seller.SellerCategory
	if found, err := s.cache.Get(ctx, categoryCacheKey, &categories); err == nil && found {
		return categories, nil
	}

	categories, err := s.repo.ListSellerCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seller categories: %w", err)
	}

	_ = s.cache.Set(ctx, categoryCacheKey, categories, categoryCacheTTL)

	return categories, nil
}

// applyManagerPlan executes the reconciler plan in its emitted order.
// Order matters: deletes must not precede the re-rank of retained rows
// because orderings are reused as primary keys.
func applyManagerPlan(ctx context.Context, r seller.Repository, sellerID uuid.UUID, plan []seller.ManagerOp) error {
	for _, op := range plan {
		assignment := seller.ManagerAssignment{
			SellerID: sellerID,
			Ordering: op.Ordering,
			Name:     op.Payload.Name,
			Phone:    op.Payload.Phone,
			Email:    op.Payload.Email,
		}

		var err error
		switch op.Kind {
		case seller.ManagerOpUpdate:
			err = r.UpdateManager(ctx, assignment)
		case seller.ManagerOpCreate:
			err = r.CreateManager(ctx, assignment)
		case seller.ManagerOpDelete:
			err = r.DeleteManager(ctx, sellerID, op.Ordering)
		}
		if err != nil {
			return fmt.Errorf("%s manager ordering %d: %w", op.Kind, op.Ordering, err)
		}
	}

	return nil
}

// applyProfileFields copies the request's top-level fields onto the
// profile. The manager list is handled separately by the reconciler.
func applyProfileFields(p *seller.SellerProfile, req seller.UpdateSellerRequest) {
	p.Name = req.Name
	p.NameEng = req.NameEng
	p.CEOName = req.CEOName
	p.ContactPhone = req.ContactPhone
	p.ServiceCenterNumber = req.ServiceCenterNumber
	p.SiteURL = req.SiteURL
	p.CategoryID = req.CategoryID
	p.CommissionRate = req.CommissionRate
	p.ShortIntroduction = req.ShortIntroduction
	p.DetailIntroduction = req.DetailIntroduction
	p.ZipCode = req.ZipCode
	p.Address = req.Address
	p.AddressDetail = req.AddressDetail
}

// appendMergedAudit takes the last committed snapshot, overlays the
// just-persisted profile fields and appends the result. Record-replace,
// not a field-level patch log.
func appendMergedAudit(ctx context.Context, r seller.Repository, profile *seller.SellerProfile, modifierID uuid.UUID) error {
	snap, err := r.GetAuditSnapshot(ctx, profile.SellerID)
	if err != nil {
		return fmt.Errorf("get audit snapshot: %w", err)
	}
	if snap == nil {
		fallback := seller.SnapshotFromProfile(profile)
		snap = &fallback
	}

	rec := snap.WithProfileFields(profile)
	rec.ModifierID = modifierID

	if err := r.AppendAuditRecord(ctx, &rec); err != nil {
		return fmt.Errorf("append audit record: %w", err)
	}

	return nil
}
