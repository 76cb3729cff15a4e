package cat

import (
	"time"

	"pet-registry-backend/internal/domains/owner"
)

// Field defaults applied when the client omits a value.
const (
	DefaultNickname = "Barsik"
	DefaultAge      = 1
)

// Cat is a pet record, optionally linked to one owner. OwnerID is a nullable
// foreign key; Owner is populated by the repository on single-item reads.
type Cat struct {
	ID          int64        `json:"id"`
	Nickname    string       `json:"nickname"`
	Age         int          `json:"age"`
	Description string       `json:"description"`
	Vaccinated  bool         `json:"vaccinated"`
	OwnerID     *int64       `json:"owner_id,omitempty"`
	Owner       *owner.Owner `json:"owner,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
