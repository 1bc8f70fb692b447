package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"selleradmin-backend/internal/domains/account"
	"selleradmin-backend/internal/domains/seller"
	"selleradmin-backend/internal/shared/middleware"
	"selleradmin-backend/internal/shared/response"
)

// SellerHandler serves the seller profile and lifecycle endpoints.
type SellerHandler struct {
	service  seller.Service
	accounts account.Service
}

func NewSellerHandler(service seller.Service, accounts account.Service) *SellerHandler {
	return &SellerHandler{service: service, accounts: accounts}
}

// ListSellers handles GET /sellers.
func (h *SellerHandler) ListSellers(c *gin.Context) {
	var req seller.ListSellersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid pagination parameters", err.Error())
		return
	}

	list, err := h.service.ListSellers(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	req.SetDefaults()
	response.SuccessWithMeta(c, http.StatusOK, list.Sellers, &response.Meta{
		Offset: req.Offset,
		Limit:  req.Limit,
		Total:  list.Count,
	})
}

// GetSeller handles GET /sellers/:id.
func (h *SellerHandler) GetSeller(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID", nil)
		return
	}

	detail, err := h.service.GetSellerInformation(c.Request.Context(), sellerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", detail)
}

// UpdateSeller handles PUT /sellers/:id.
func (h *SellerHandler) UpdateSeller(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID", nil)
		return
	}

	modifierID, ok := h.modifierID(c)
	if !ok {
		return
	}

	var req seller.UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateSellerInformation(c.Request.Context(), sellerID, modifierID, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Seller information updated", nil)
}

// UpdateShopStatus handles PATCH /sellers/:id/status.
func (h *SellerHandler) UpdateShopStatus(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID", nil)
		return
	}

	modifierID, ok := h.modifierID(c)
	if !ok {
		return
	}

	var req seller.UpdateShopStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.service.UpdateShopStatus(c.Request.Context(), sellerID, modifierID, req); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Shop status updated", nil)
}

// StatusHistory handles GET /sellers/:id/status-history.
func (h *SellerHandler) StatusHistory(c *gin.Context) {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid seller ID", nil)
		return
	}

	history, err := h.service.ListStatusHistory(c.Request.Context(), sellerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", history)
}

// ListCategories handles GET /seller-categories.
func (h *SellerHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListSellerCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", categories)
}

// modifierID resolves the authenticated handle to the account id that
// gets recorded on audit rows.
func (h *SellerHandler) modifierID(c *gin.Context) (uuid.UUID, bool) {
	handle := c.GetString(middleware.ContextAccountKey)
	if handle == "" {
		response.Unauthorized(c, "missing authenticated account")
		return uuid.Nil, false
	}

	a, err := h.accounts.GetByAccount(c.Request.Context(), handle)
	if err != nil {
		response.Unauthorized(c, "unknown authenticated account")
		return uuid.Nil, false
	}

	return a.ID, true
}

// handleError maps domain errors to HTTP responses.
func (h *SellerHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	case errors.As(err, &validationErrs):
		response.BadRequest(c, "Validation failed", validationErrs)

	case errors.Is(err, seller.ErrTooManyManagers),
		errors.Is(err, seller.ErrInvalidPagination),
		errors.Is(err, seller.ErrInvalidTransition):
		response.BadRequest(c, err.Error(), nil)

	case errors.Is(err, seller.ErrSellerNotFound),
		errors.Is(err, seller.ErrUnknownShopStatus):
		response.NotFound(c, err.Error())

	default:
		response.InternalServerError(c, "Internal server error")
	}
}
