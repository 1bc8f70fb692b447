package account

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var accountPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// SignUpRequest creates a seller account.
type SignUpRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r SignUpRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Account,
			validation.Required.Error("account is required"),
			validation.Length(5, 20).Error("account must be 5-20 characters"),
			validation.Match(accountPattern).Error("account allows lowercase letters, digits and underscore"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
			validation.Match(regexp.MustCompile(`[A-Za-z]`)).Error("password must contain a letter"),
			validation.Match(regexp.MustCompile(`[0-9]`)).Error("password must contain a number"),
		),
	)
}

// SignInRequest authenticates a seller account.
type SignInRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Account, validation.Required.Error("account is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// SignInResponse carries the issued session token.
type SignInResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AccountDTO is the public account representation.
type AccountDTO struct {
	ID        string    `json:"id"`
	Account   string    `json:"account"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Account) ToDTO() AccountDTO {
	return AccountDTO{
		ID:        a.ID.String(),
		Account:   a.Account,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}
