package owner

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// OwnerRequest is the payload for both create and update. Update replaces the
// whole email field; partial updates are not supported.
type OwnerRequest struct {
	Email string `json:"email"`
}

func (r OwnerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			// EmailFormat checks syntax only; is.Email would resolve the
			// domain's MX record on every request.
			is.EmailFormat.Error("invalid email format"),
			validation.Length(5, 255),
		),
	)
}

// OwnerDTO is the shaped owner record returned to callers.
type OwnerDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func (o *Owner) ToDTO() OwnerDTO {
	return OwnerDTO{
		ID:    o.ID,
		Email: o.Email,
	}
}
