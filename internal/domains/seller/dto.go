package seller

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// ManagerRequest is one requested manager entry, in ranking order.
type ManagerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (r ManagerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("manager name is required"),
			validation.Length(1, 45),
		),
		validation.Field(&r.Phone, validation.Length(0, 20)),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error("invalid manager email format")),
		),
	)
}

// UpdateSellerRequest carries the full set of top-level profile fields
// plus the requested manager list. The manager cap is enforced by the
// reconciler, not here, so an oversized list fails before any mutation
// is planned.
type UpdateSellerRequest struct {
	Name                string           `json:"name" binding:"required"`
	NameEng             string           `json:"name_eng"`
	CEOName             string           `json:"ceo_name"`
	ContactPhone        string           `json:"contact_phone"`
	ServiceCenterNumber string           `json:"service_center_number"`
	SiteURL             string           `json:"site_url"`
	CategoryID          int              `json:"category_id"`
	CommissionRate      decimal.Decimal  `json:"commission_rate"`
	ShortIntroduction   string           `json:"short_introduction"`
	DetailIntroduction  string           `json:"detail_introduction"`
	ZipCode             string           `json:"zip_code"`
	Address             string           `json:"address"`
	AddressDetail       string           `json:"address_detail"`
	Managers            []ManagerRequest `json:"managers"`
}

func (r UpdateSellerRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("seller name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.NameEng, validation.Length(0, 100)),
		validation.Field(&r.CEOName, validation.Length(0, 45)),
		validation.Field(&r.SiteURL,
			validation.When(r.SiteURL != "", is.URL.Error("invalid site url")),
		),
		validation.Field(&r.ShortIntroduction, validation.Length(0, 255)),
		validation.Field(&r.ZipCode, validation.Length(0, 10)),
	); err != nil {
		return err
	}

	for _, m := range r.Managers {
		if err := m.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ManagerPayloads converts the request's manager list to the
// reconciler's payload type, preserving order.
func (r UpdateSellerRequest) ManagerPayloads() []ManagerPayload {
	payloads := make([]ManagerPayload, len(r.Managers))
	for i, m := range r.Managers {
		payloads[i] = ManagerPayload{Name: m.Name, Phone: m.Phone, Email: m.Email}
	}
	return payloads
}

// UpdateShopStatusRequest asks for a lifecycle transition.
type UpdateShopStatusRequest struct {
	ShopStatusID int `json:"shop_status_id" binding:"required"`
}

func (r UpdateShopStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ShopStatusID, validation.Required.Error("shop_status_id is required")),
	)
}

// ListSellersRequest are the pagination parameters of the seller list.
type ListSellersRequest struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit"`
}

// SetDefaults applies the default page of 10 from offset 0.
func (r *ListSellersRequest) SetDefaults() {
	if r.Limit == 0 {
		r.Limit = 10
	}
}

// Validate rejects offset > limit. The check compares the two
// parameters against each other, not against a maximum page size;
// intentionally kept as-is pending product clarification.
func (r ListSellersRequest) Validate() error {
	if r.Offset < 0 || r.Limit < 0 {
		return ErrInvalidPagination
	}
	if r.Offset > r.Limit {
		return ErrInvalidPagination
	}
	return nil
}

// SellerDetail is the read model of a single seller: profile plus its
// ordered manager list.
type SellerDetail struct {
	SellerProfile
	ShopStatus string              `json:"shop_status"`
	Managers   []ManagerAssignment `json:"managers"`
}

// SellerList is the paginated seller-list read model.
type SellerList struct {
	Count   int             `json:"count"`
	Sellers []SellerSummary `json:"seller_list"`
}
