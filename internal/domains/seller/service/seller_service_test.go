package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selleradmin-backend/internal/domains/seller"
)

// fakeRepository is an in-memory seller.Repository. InTx just runs the
// callback against the same state; transactional semantics are the
// database layer's concern, the service only needs the calls recorded.
type fakeRepository struct {
	profile  *seller.SellerProfile
	managers map[int]seller.ManagerAssignment
	audits   []seller.AuditRecord
	history  []seller.StatusHistoryEntry
	summary  []seller.SellerSummary

	opLog []string
}

func newFakeRepository(profile *seller.SellerProfile) *fakeRepository {
	return &fakeRepository{
		profile:  profile,
		managers: make(map[int]seller.ManagerAssignment),
	}
}

func (f *fakeRepository) InTx(ctx context.Context, fn func(seller.Repository) error) error {
	return fn(f)
}

func (f *fakeRepository) GetSellerProfile(ctx context.Context, sellerID uuid.UUID) (*seller.SellerProfile, error) {
	if f.profile == nil || f.profile.SellerID != sellerID {
		return nil, seller.ErrSellerNotFound
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeRepository) GetSellerProfileForUpdate(ctx context.Context, sellerID uuid.UUID) (*seller.SellerProfile, error) {
	f.opLog = append(f.opLog, "lock")
	return f.GetSellerProfile(ctx, sellerID)
}

func (f *fakeRepository) UpdateSellerProfile(ctx context.Context, profile *seller.SellerProfile) error {
	f.opLog = append(f.opLog, "update-profile")
	p := *profile
	f.profile = &p
	return nil
}

func (f *fakeRepository) CountSellers(ctx context.Context) (int, error) {
	return len(f.summary), nil
}

func (f *fakeRepository) ListSellers(ctx context.Context, offset, limit int) ([]seller.SellerSummary, error) {
	if offset >= len(f.summary) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.summary) {
		end = len(f.summary)
	}
	return f.summary[offset:end], nil
}

func (f *fakeRepository) GetManagers(ctx context.Context, sellerID uuid.UUID) ([]seller.ManagerAssignment, error) {
	out := make([]seller.ManagerAssignment, 0, len(f.managers))
	for _, m := range f.managers {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ordering < out[j].Ordering })
	return out, nil
}

func (f *fakeRepository) GetManagerOrderingCount(ctx context.Context, sellerID uuid.UUID) (int, error) {
	maxOrdering := 0
	for ordering := range f.managers {
		if ordering > maxOrdering {
			maxOrdering = ordering
		}
	}
	return maxOrdering, nil
}

func (f *fakeRepository) CreateManager(ctx context.Context, m seller.ManagerAssignment) error {
	f.opLog = append(f.opLog, fmt.Sprintf("create-manager:%d", m.Ordering))
	if _, exists := f.managers[m.Ordering]; exists {
		return fmt.Errorf("duplicate ordering %d", m.Ordering)
	}
	f.managers[m.Ordering] = m
	return nil
}

func (f *fakeRepository) UpdateManager(ctx context.Context, m seller.ManagerAssignment) error {
	f.opLog = append(f.opLog, fmt.Sprintf("update-manager:%d", m.Ordering))
	if _, exists := f.managers[m.Ordering]; !exists {
		return fmt.Errorf("no manager at ordering %d", m.Ordering)
	}
	f.managers[m.Ordering] = m
	return nil
}

func (f *fakeRepository) DeleteManager(ctx context.Context, sellerID uuid.UUID, ordering int) error {
	f.opLog = append(f.opLog, fmt.Sprintf("delete-manager:%d", ordering))
	if _, exists := f.managers[ordering]; !exists {
		return fmt.Errorf("no manager at ordering %d", ordering)
	}
	delete(f.managers, ordering)
	return nil
}

func (f *fakeRepository) GetShopStatus(ctx context.Context, sellerID uuid.UUID) (seller.ShopStatus, error) {
	if f.profile == nil || f.profile.SellerID != sellerID {
		return 0, seller.ErrSellerNotFound
	}
	return f.profile.ShopStatusID, nil
}

func (f *fakeRepository) UpdateShopStatus(ctx context.Context, sellerID uuid.UUID, status seller.ShopStatus) error {
	f.opLog = append(f.opLog, fmt.Sprintf("update-status:%d", status))
	f.profile.ShopStatusID = status
	return nil
}

func (f *fakeRepository) GetAuditSnapshot(ctx context.Context, sellerID uuid.UUID) (*seller.AuditRecord, error) {
	if len(f.audits) == 0 {
		return nil, nil
	}
	rec := f.audits[len(f.audits)-1]
	return &rec, nil
}

func (f *fakeRepository) AppendAuditRecord(ctx context.Context, rec *seller.AuditRecord) error {
	f.opLog = append(f.opLog, "append-audit")
	stored := *rec
	stored.No = int64(len(f.audits) + 1)
	stored.CreatedAt = time.Now()
	f.audits = append(f.audits, stored)
	return nil
}

func (f *fakeRepository) ListStatusHistory(ctx context.Context, sellerID uuid.UUID) ([]seller.StatusHistoryEntry, error) {
	return f.history, nil
}

func (f *fakeRepository) ListSellerCategories(ctx context.Context) ([]seller.SellerCategory, error) {
	return []seller.SellerCategory{{ID: 1, Name: "Shopping mall"}, {ID: 2, Name: "Market"}}, nil
}

// fakeCache never hits and records invalidations.
type fakeCache struct {
	deleted []string
	sets    []string
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.sets = append(f.sets, key)
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	return nil
}

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

func testProfile(sellerID uuid.UUID) *seller.SellerProfile {
	return &seller.SellerProfile{
		SellerID:       sellerID,
		Name:           "Acme Trading",
		CEOName:        "Kim",
		CategoryID:     1,
		CommissionRate: decimal.NewFromInt(10),
		ShopStatusID:   seller.ShopStatusActive,
	}
}

func seedManagers(repo *fakeRepository, sellerID uuid.UUID, n int) {
	for i := 1; i <= n; i++ {
		repo.managers[i] = seller.ManagerAssignment{
			SellerID: sellerID,
			Ordering: i,
			Name:     fmt.Sprintf("old-%d", i),
		}
	}
}

func updateRequest(managerNames ...string) seller.UpdateSellerRequest {
	req := seller.UpdateSellerRequest{
		Name:           "Acme Trading",
		CEOName:        "Lee",
		CategoryID:     2,
		CommissionRate: decimal.NewFromInt(12),
	}
	for _, name := range managerNames {
		req.Managers = append(req.Managers, seller.ManagerRequest{
			Name:  name,
			Email: name + "@example.com",
		})
	}
	return req
}

func TestUpdateSellerInformation_EqualCardinality(t *testing.T) {
	sellerID := uuid.New()
	modifierID := uuid.New()
	repo := newFakeRepository(testProfile(sellerID))
	seedManagers(repo, sellerID, 2)
	c := &fakeCache{}
	svc := NewSellerService(repo, c)

	err := svc.UpdateSellerInformation(context.Background(), sellerID, modifierID, updateRequest("alice", "bob"))
	require.NoError(t, err)

	// Two in-place updates, no creates or deletes.
	require.Len(t, repo.managers, 2)
	assert.Equal(t, "alice", repo.managers[1].Name)
	assert.Equal(t, "bob", repo.managers[2].Name)
	for _, entry := range repo.opLog {
		assert.NotContains(t, entry, "create-manager")
		assert.NotContains(t, entry, "delete-manager")
	}

	// Profile fields persisted.
	assert.Equal(t, "Lee", repo.profile.CEOName)
	assert.Equal(t, 2, repo.profile.CategoryID)

	// Exactly one audit row, carrying the new state and the modifier.
	require.Len(t, repo.audits, 1)
	assert.Equal(t, "Lee", repo.audits[0].CEOName)
	assert.Equal(t, modifierID, repo.audits[0].ModifierID)
	assert.Equal(t, seller.ShopStatusActive, repo.audits[0].ShopStatusID)

	assert.Contains(t, c.deleted, fmt.Sprintf("seller:%s", sellerID))
}

func TestUpdateSellerInformation_ShrinkDeletesTrailingRows(t *testing.T) {
	sellerID := uuid.New()
	repo := newFakeRepository(testProfile(sellerID))
	seedManagers(repo, sellerID, 3)
	svc := NewSellerService(repo, &fakeCache{})

	err := svc.UpdateSellerInformation(context.Background(), sellerID, uuid.New(), updateRequest("alice"))
	require.NoError(t, err)

	require.Len(t, repo.managers, 1)
	assert.Equal(t, "alice", repo.managers[1].Name)
}

func TestUpdateSellerInformation_GrowAppendsManagers(t *testing.T) {
	sellerID := uuid.New()
	repo := newFakeRepository(testProfile(sellerID))
	seedManagers(repo, sellerID, 1)
	svc := NewSellerService(repo, &fakeCache{})

	err := svc.UpdateSellerInformation(context.Background(), sellerID, uuid.New(), updateRequest("alice", "bob", "carol"))
	require.NoError(t, err)

	require.Len(t, repo.managers, 3)
	assert.Equal(t, "alice", repo.managers[1].Name)
	assert.Equal(t, "bob", repo.managers[2].Name)
	assert.Equal(t, "carol", repo.managers[3].Name)
}

func TestUpdateSellerInformation_TooManyManagers(t *testing.T) {
	sellerID := uuid.New()
	repo := newFakeRepository(testProfile(sellerID))
	seedManagers(repo, sellerID, 1)
	svc := NewSellerService(repo, &fakeCache{})

	err := svc.UpdateSellerInformation(context.Background(), sellerID, uuid.New(),
		updateRequest("a", "b", "c", "d"))

	assert.ErrorIs(t, err, seller.ErrTooManyManagers)

	// Planning failed before any write.
	assert.Len(t, repo.managers, 1)
	assert.Empty(t, repo.audits)
	assert.Equal(t, "old-1", repo.managers[1].Name)
}

func TestUpdateSellerInformation_UnknownSeller(t *testing.T) {
	repo := newFakeRepository(nil)
	svc := NewSellerService(repo, &fakeCache{})

	err := svc.UpdateSellerInformation(context.Background(), uuid.New(), uuid.New(), updateRequest())

	assert.ErrorIs(t, err, seller.ErrSellerNotFound)
}

func TestUpdateSellerInformation_MergesLastSnapshot(t *testing.T) {
	sellerID := uuid.New()
	modifierID := uuid.New()
	profile := testProfile(sellerID)
	repo := newFakeRepository(profile)

	// Prior snapshot in a non-default status; the merged record must
	// keep it while overlaying the new business fields.
	prior := seller.SnapshotFromProfile(profile)
	prior.ShopStatusID = seller.ShopStatusSuspended
	repo.audits = append(repo.audits, prior)
	profile.ShopStatusID = seller.ShopStatusSuspended

	svc := NewSellerService(repo, &fakeCache{})
	err := svc.UpdateSellerInformation(context.Background(), sellerID, modifierID, updateRequest())
	require.NoError(t, err)

	require.Len(t, repo.audits, 2)
	latest := repo.audits[1]
	assert.Equal(t, seller.ShopStatusSuspended, latest.ShopStatusID)
	assert.Equal(t, "Lee", latest.CEOName)
	assert.Equal(t, modifierID, latest.ModifierID)
}

func TestUpdateShopStatus_ValidTransition(t *testing.T) {
	sellerID := uuid.New()
	modifierID := uuid.New()
	repo := newFakeRepository(testProfile(sellerID))
	c := &fakeCache{}
	svc := NewSellerService(repo, c)

	err := svc.UpdateShopStatus(context.Background(), sellerID, modifierID,
		seller.UpdateShopStatusRequest{ShopStatusID: int(seller.ShopStatusSuspended)})
	require.NoError(t, err)

	assert.Equal(t, seller.ShopStatusSuspended, repo.profile.ShopStatusID)
	require.Len(t, repo.audits, 1)
	assert.Equal(t, seller.ShopStatusSuspended, repo.audits[0].ShopStatusID)
	assert.Equal(t, modifierID, repo.audits[0].ModifierID)
	assert.Contains(t, c.deleted, fmt.Sprintf("seller:%s", sellerID))
}

func TestUpdateShopStatus_InvalidTransition(t *testing.T) {
	sellerID := uuid.New()
	repo := newFakeRepository(testProfile(sellerID)) // active

	svc := NewSellerService(repo, &fakeCache{})
	err := svc.UpdateShopStatus(context.Background(), sellerID, uuid.New(),
		seller.UpdateShopStatusRequest{ShopStatusID: int(seller.ShopStatusTerminated)})

	assert.ErrorIs(t, err, seller.ErrInvalidTransition)
	assert.Equal(t, seller.ShopStatusActive, repo.profile.ShopStatusID)
	assert.Empty(t, repo.audits)
}

func TestUpdateShopStatus_SelfTransitionRejected(t *testing.T) {
	sellerID := uuid.New()
	repo := newFakeRepository(testProfile(sellerID))

	svc := NewSellerService(repo, &fakeCache{})
	err := svc.UpdateShopStatus(context.Background(), sellerID, uuid.New(),
		seller.UpdateShopStatusRequest{ShopStatusID: int(seller.ShopStatusActive)})

	assert.ErrorIs(t, err, seller.ErrInvalidTransition)
	assert.Empty(t, repo.audits)
}

func TestUpdateShopStatus_UnknownStatus(t *testing.T) {
	sellerID := uuid.New()
	repo := newFakeRepository(testProfile(sellerID))

	svc := NewSellerService(repo, &fakeCache{})
	err := svc.UpdateShopStatus(context.Background(), sellerID, uuid.New(),
		seller.UpdateShopStatusRequest{ShopStatusID: 99})

	assert.ErrorIs(t, err, seller.ErrUnknownShopStatus)
	assert.Empty(t, repo.opLog)
}

func TestListSellers_Pagination(t *testing.T) {
	repo := newFakeRepository(nil)
	for i := 0; i < 5; i++ {
		repo.summary = append(repo.summary, seller.SellerSummary{
			SellerID: uuid.New(),
			Name:     fmt.Sprintf("seller-%d", i),
		})
	}
	svc := NewSellerService(repo, &fakeCache{})

	list, err := svc.ListSellers(context.Background(), seller.ListSellersRequest{Offset: 0, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, list.Count)
	assert.Len(t, list.Sellers, 5)

	list, err = svc.ListSellers(context.Background(), seller.ListSellersRequest{Offset: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, list.Count)
	assert.Len(t, list.Sellers, 3)
	assert.Equal(t, "seller-2", list.Sellers[0].Name)
}

func TestListSellers_OffsetAboveLimitRejected(t *testing.T) {
	repo := newFakeRepository(nil)
	svc := NewSellerService(repo, &fakeCache{})

	_, err := svc.ListSellers(context.Background(), seller.ListSellersRequest{Offset: 5, Limit: 3})

	assert.ErrorIs(t, err, seller.ErrInvalidPagination)
}

func TestGetSellerInformation(t *testing.T) {
	sellerID := uuid.New()
	repo := newFakeRepository(testProfile(sellerID))
	seedManagers(repo, sellerID, 2)
	c := &fakeCache{}
	svc := NewSellerService(repo, c)

	detail, err := svc.GetSellerInformation(context.Background(), sellerID)
	require.NoError(t, err)

	assert.Equal(t, "Acme Trading", detail.Name)
	assert.Equal(t, "active", detail.ShopStatus)
	require.Len(t, detail.Managers, 2)
	assert.Equal(t, 1, detail.Managers[0].Ordering)
	assert.Contains(t, c.sets, fmt.Sprintf("seller:%s", sellerID))
}

func TestGetSellerInformation_NotFound(t *testing.T) {
	repo := newFakeRepository(nil)
	svc := NewSellerService(repo, &fakeCache{})

	_, err := svc.GetSellerInformation(context.Background(), uuid.New())

	assert.ErrorIs(t, err, seller.ErrSellerNotFound)
}

func TestListStatusHistory_UnknownSeller(t *testing.T) {
	repo := newFakeRepository(nil)
	svc := NewSellerService(repo, &fakeCache{})

	_, err := svc.ListStatusHistory(context.Background(), uuid.New())

	assert.ErrorIs(t, err, seller.ErrSellerNotFound)
}

func TestListSellerCategories_Cached(t *testing.T) {
	repo := newFakeRepository(nil)
	c := &fakeCache{}
	svc := NewSellerService(repo, c)

	categories, err := svc.ListSellerCategories(context.Background())
	require.NoError(t, err)

	assert.Len(t, categories, 2)
	assert.Contains(t, c.sets, "seller:categories")
}
