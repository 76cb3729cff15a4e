package owner

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid address", "alex@example.com", false},
		{"valid with subdomain", "a@mail.example.org", false},
		// Syntactically fine but the domain has no MX record: format-only
		// validation must accept it without touching DNS.
		{"valid without mx record", "a@b.com", false},
		{"empty", "", true},
		{"missing domain", "alex@", true},
		{"missing local part", "@example.com", true},
		{"no at sign", "alex.example.com", true},
		{"whitespace inside", "alex @example.com", true},
		{"too short", "a@b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OwnerRequest{Email: tt.email}.Validate()
			if tt.wantErr {
				require.Error(t, err)

				var verrs validation.Errors
				require.ErrorAs(t, err, &verrs)
				assert.Contains(t, verrs, "email")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alex@example.com", NormalizeEmail("  Alex@Example.COM "))
}
