package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"selleradmin-backend/internal/domains/account"
	"selleradmin-backend/internal/shared/response"
)

// AccountHandler serves the sign-up / sign-in endpoints.
type AccountHandler struct {
	service account.Service
}

func NewAccountHandler(service account.Service) *AccountHandler {
	return &AccountHandler{service: service}
}

// SignUp handles POST /auth/signup.
func (h *AccountHandler) SignUp(c *gin.Context) {
	var req account.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	dto, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Account registered successfully", dto)
}

// SignIn handles POST /auth/signin.
func (h *AccountHandler) SignIn(c *gin.Context) {
	var req account.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Signed in", resp)
}

// handleError maps domain errors to HTTP responses.
func (h *AccountHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors

	switch {
	case errors.As(err, &validationErrs):
		response.BadRequest(c, "Validation failed", validationErrs)

	case errors.Is(err, account.ErrAccountExists):
		response.Conflict(c, err.Error())

	case errors.Is(err, account.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())

	case errors.Is(err, account.ErrAccountNotFound):
		response.NotFound(c, err.Error())

	default:
		response.InternalServerError(c, "Internal server error")
	}
}
