package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is the login record behind a seller profile. The password
// hash is mutated only by credential-change flows; accounts are never
// deleted.
type Account struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Account      string    `db:"account" json:"account"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Role separates marketplace staff from sellers.
type Role string

const (
	RoleSeller Role = "seller" // Shop owner account
	RoleMaster Role = "master" // Marketplace admin staff
)

func (r Role) IsValid() bool {
	return r == RoleSeller || r == RoleMaster
}

func (r Role) String() string {
	return string(r)
}
