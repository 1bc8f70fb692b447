package seller

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopStatus is the seller's onboarding lifecycle state. The id set is
// closed and the values are fixed by the status lookup table.
type ShopStatus int

const (
	ShopStatusPending     ShopStatus = 1
	ShopStatusActive      ShopStatus = 2
	ShopStatusTerminated  ShopStatus = 3
	ShopStatusTerminating ShopStatus = 4
	ShopStatusSuspended   ShopStatus = 5
)

// IsKnown reports whether the id belongs to the closed status set.
func (s ShopStatus) IsKnown() bool {
	switch s {
	case ShopStatusPending, ShopStatusActive, ShopStatusTerminated,
		ShopStatusTerminating, ShopStatusSuspended:
		return true
	}
	return false
}

func (s ShopStatus) String() string {
	switch s {
	case ShopStatusPending:
		return "pending"
	case ShopStatusActive:
		return "active"
	case ShopStatusTerminated:
		return "terminated"
	case ShopStatusTerminating:
		return "terminating"
	case ShopStatusSuspended:
		return "suspended"
	}
	return "unknown"
}

// SellerProfile is the business-facing record of a marketplace seller,
// 1:1 with its login account. Created once at sign-up, mutated only by
// the profile-update and status-update paths.
type SellerProfile struct {
	SellerID            uuid.UUID       `db:"seller_id" json:"seller_id"`
	Name                string          `db:"name" json:"name"`
	NameEng             string          `db:"name_eng" json:"name_eng"`
	CEOName             string          `db:"ceo_name" json:"ceo_name"`
	ContactPhone        string          `db:"contact_phone" json:"contact_phone"`
	ServiceCenterNumber string          `db:"service_center_number" json:"service_center_number"`
	SiteURL             string          `db:"site_url" json:"site_url"`
	CategoryID          int             `db:"category_id" json:"category_id"`
	CommissionRate      decimal.Decimal `db:"commission_rate" json:"commission_rate"`
	ShortIntroduction   string          `db:"short_introduction" json:"short_introduction"`
	DetailIntroduction  string          `db:"detail_introduction" json:"detail_introduction"`
	ZipCode             string          `db:"zip_code" json:"zip_code"`
	Address             string          `db:"address" json:"address"`
	AddressDetail       string          `db:"address_detail" json:"address_detail"`
	ShopStatusID        ShopStatus      `db:"shop_status_id" json:"shop_status_id"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updated_at"`
}

// ManagerAssignment is one ranked account-manager entry of a seller.
// (seller_id, ordering) is the primary key; orderings form a contiguous
// prefix of {1,2,3}. Rows are written only through the reconciler plan.
type ManagerAssignment struct {
	SellerID uuid.UUID `db:"seller_id" json:"-"`
	Ordering int       `db:"ordering" json:"ordering"`
	Name     string    `db:"name" json:"name"`
	Phone    string    `db:"phone" json:"phone"`
	Email    string    `db:"email" json:"email"`
}

// AuditRecord is an immutable point-in-time snapshot of seller state,
// appended once per mutating call. Never updated or deleted.
type AuditRecord struct {
	No                  int64           `db:"no" json:"no"`
	SellerID            uuid.UUID       `db:"seller_id" json:"seller_id"`
	Name                string          `db:"name" json:"name"`
	NameEng             string          `db:"name_eng" json:"name_eng"`
	CEOName             string          `db:"ceo_name" json:"ceo_name"`
	ContactPhone        string          `db:"contact_phone" json:"contact_phone"`
	ServiceCenterNumber string          `db:"service_center_number" json:"service_center_number"`
	SiteURL             string          `db:"site_url" json:"site_url"`
	CategoryID          int             `db:"category_id" json:"category_id"`
	CommissionRate      decimal.Decimal `db:"commission_rate" json:"commission_rate"`
	ShortIntroduction   string          `db:"short_introduction" json:"short_introduction"`
	DetailIntroduction  string          `db:"detail_introduction" json:"detail_introduction"`
	ZipCode             string          `db:"zip_code" json:"zip_code"`
	Address             string          `db:"address" json:"address"`
	AddressDetail       string          `db:"address_detail" json:"address_detail"`
	ShopStatusID        ShopStatus      `db:"shop_status_id" json:"shop_status_id"`
	ModifierID          uuid.UUID       `db:"modifier_id" json:"modifier_id"`
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`
}

// WithProfileFields returns a copy of the snapshot with the business
// fields overlaid from the profile. Status and identity are kept.
func (r AuditRecord) WithProfileFields(p *SellerProfile) AuditRecord {
	r.Name = p.Name
	r.NameEng = p.NameEng
	r.CEOName = p.CEOName
	r.ContactPhone = p.ContactPhone
	r.ServiceCenterNumber = p.ServiceCenterNumber
	r.SiteURL = p.SiteURL
	r.CategoryID = p.CategoryID
	r.CommissionRate = p.CommissionRate
	r.ShortIntroduction = p.ShortIntroduction
	r.DetailIntroduction = p.DetailIntroduction
	r.ZipCode = p.ZipCode
	r.Address = p.Address
	r.AddressDetail = p.AddressDetail
	return r
}

// SnapshotFromProfile builds an audit snapshot straight from the current
// profile row. Fallback for sellers that predate the audit table.
func SnapshotFromProfile(p *SellerProfile) AuditRecord {
	rec := AuditRecord{SellerID: p.SellerID, ShopStatusID: p.ShopStatusID}
	return rec.WithProfileFields(p)
}

// SellerSummary is one row of the paginated seller list.
type SellerSummary struct {
	SellerID     uuid.UUID  `db:"seller_id" json:"seller_id"`
	Account      string     `db:"account" json:"account"`
	Name         string     `db:"name" json:"name"`
	NameEng      string     `db:"name_eng" json:"name_eng"`
	CategoryID   int        `db:"category_id" json:"category_id"`
	ShopStatusID ShopStatus `db:"shop_status_id" json:"shop_status_id"`
	ShopStatus   string     `db:"shop_status" json:"shop_status"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// StatusHistoryEntry is one audit-derived row of a seller's lifecycle
// history: when, which status, and who made the change.
type StatusHistoryEntry struct {
	No         int64     `db:"no" json:"no"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	ShopStatus string    `db:"shop_status" json:"shop_status"`
	Modifier   string    `db:"modifier" json:"modifier"`
}

// SellerCategory is an entry of the fixed seller-category lookup.
type SellerCategory struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
