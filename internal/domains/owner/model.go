package owner

import (
	"strings"
	"time"
)

// Owner is a pet keeper, identified by a unique email address.
type Owner struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOwner builds an Owner ready for insertion. The id is assigned by the
// store.
func NewOwner(email string) *Owner {
	now := time.Now()
	return &Owner{
		Email:     NormalizeEmail(email),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizeEmail lowers and trims an address so the uniqueness constraint is
// case-insensitive in practice.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
