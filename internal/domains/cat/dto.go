package cat

import (
	"errors"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pet-registry-backend/internal/domains/owner"
)

// Pagination bounds for the collection endpoint. Requests above MaxLimit are
// rejected as invalid, never clamped.
const (
	DefaultLimit = 10
	MaxLimit     = 1000
)

// CreateCatRequest is the create payload. Optional fields are pointers so an
// omitted value can be told apart from a zero one; defaults are applied in
// ToModel after validation passes.
type CreateCatRequest struct {
	Nickname    *string `json:"nickname"`
	Age         *int    `json:"age"`
	Description string  `json:"description"`
	Vaccinated  *bool   `json:"vaccinated"`
	OwnerID     *int64  `json:"owner_id"`
}

func (r CreateCatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nickname, validation.By(checkNickname)),
		validation.Field(&r.Age, validation.By(checkAge)),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
		),
		validation.Field(&r.OwnerID, validation.By(checkOwnerID)),
	)
}

// The built-in Length/Min/Max rules treat zero values as absent, which would
// let an explicit age of 0 or an empty nickname through. These rules check
// the dereferenced value whenever the field was supplied; nil still means
// "omitted, apply the default".

func checkNickname(value interface{}) error {
	p, _ := value.(*string)
	if p == nil {
		return nil
	}
	if n := utf8.RuneCountInString(*p); n < 3 || n > 12 {
		return errors.New("nickname must be 3-12 characters")
	}
	return nil
}

func checkAge(value interface{}) error {
	p, _ := value.(*int)
	if p == nil {
		return nil
	}
	if *p < 1 || *p > 30 {
		return errors.New("age must be between 1 and 30")
	}
	return nil
}

func checkOwnerID(value interface{}) error {
	p, _ := value.(*int64)
	if p == nil {
		return nil
	}
	if *p < 1 {
		return errors.New("owner_id must be a positive integer")
	}
	return nil
}

// ToModel builds the Cat to persist, filling in the documented defaults for
// every omitted field.
func (r CreateCatRequest) ToModel() *Cat {
	now := time.Now()
	c := &Cat{
		Nickname:    DefaultNickname,
		Age:         DefaultAge,
		Description: r.Description,
		Vaccinated:  false,
		OwnerID:     r.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if r.Nickname != nil {
		c.Nickname = *r.Nickname
	}
	if r.Age != nil {
		c.Age = *r.Age
	}
	if r.Vaccinated != nil {
		c.Vaccinated = *r.Vaccinated
	}

	return c
}

// ListCatsRequest carries the pagination window for GET /cats.
type ListCatsRequest struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`
}

func (r *ListCatsRequest) SetDefaults() {
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
}

func (r ListCatsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Limit,
			validation.Min(1).Error("limit must be at least 1"),
			validation.Max(MaxLimit).Error("limit must not exceed 1000"),
		),
		validation.Field(&r.Offset,
			validation.Min(0).Error("offset must not be negative"),
		),
	)
}

// CatDTO is the plain shape used by the collection endpoint.
type CatDTO struct {
	ID          int64  `json:"id"`
	Nickname    string `json:"nickname"`
	Age         int    `json:"age"`
	Description string `json:"description"`
	Vaccinated  bool   `json:"vaccinated"`
	OwnerID     *int64 `json:"owner_id,omitempty"`
}

// CatDetailDTO is the nested shape used by single-item endpoints: the owner
// record is embedded when the cat has one.
type CatDetailDTO struct {
	ID          int64           `json:"id"`
	Nickname    string          `json:"nickname"`
	Age         int             `json:"age"`
	Description string          `json:"description"`
	Vaccinated  bool            `json:"vaccinated"`
	Owner       *owner.OwnerDTO `json:"owner,omitempty"`
}

func (c *Cat) ToDTO() CatDTO {
	return CatDTO{
		ID:          c.ID,
		Nickname:    c.Nickname,
		Age:         c.Age,
		Description: c.Description,
		Vaccinated:  c.Vaccinated,
		OwnerID:     c.OwnerID,
	}
}

func (c *Cat) ToDetailDTO() CatDetailDTO {
	dto := CatDetailDTO{
		ID:          c.ID,
		Nickname:    c.Nickname,
		Age:         c.Age,
		Description: c.Description,
		Vaccinated:  c.Vaccinated,
	}

	if c.Owner != nil {
		ownerDTO := c.Owner.ToDTO()
		dto.Owner = &ownerDTO
	}

	return dto
}
