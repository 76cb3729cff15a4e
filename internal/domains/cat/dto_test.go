package cat

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }

func TestCreateCatRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateCatRequest
		wantField string
	}{
		{"minimal valid", CreateCatRequest{Description: "gray tabby"}, ""},
		{"full valid", CreateCatRequest{
			Nickname:    strPtr("Murzik"),
			Age:         intPtr(5),
			Description: "fluffy",
			OwnerID:     int64Ptr(2),
		}, ""},
		{"nickname too short", CreateCatRequest{Nickname: strPtr("ab"), Description: "x"}, "nickname"},
		{"explicit empty nickname", CreateCatRequest{Nickname: strPtr(""), Description: "x"}, "nickname"},
		{"nickname too long", CreateCatRequest{Nickname: strPtr("thirteenchars"), Description: "x"}, "nickname"},
		{"nickname boundary low", CreateCatRequest{Nickname: strPtr("abc"), Description: "x"}, ""},
		{"nickname boundary high", CreateCatRequest{Nickname: strPtr("twelvecharsx"), Description: "x"}, ""},
		{"age below range", CreateCatRequest{Age: intPtr(0), Description: "x"}, "age"},
		{"age above range", CreateCatRequest{Age: intPtr(31), Description: "x"}, "age"},
		{"age boundary high", CreateCatRequest{Age: intPtr(30), Description: "x"}, ""},
		{"missing description", CreateCatRequest{}, "description"},
		{"zero owner id", CreateCatRequest{Description: "x", OwnerID: int64Ptr(0)}, "owner_id"},
		{"negative owner id", CreateCatRequest{Description: "x", OwnerID: int64Ptr(-4)}, "owner_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tt.wantField)
		})
	}
}

func TestCreateCatRequestToModelDefaults(t *testing.T) {
	c := CreateCatRequest{Description: "stray"}.ToModel()

	assert.Equal(t, DefaultNickname, c.Nickname)
	assert.Equal(t, DefaultAge, c.Age)
	assert.False(t, c.Vaccinated)
	assert.Nil(t, c.OwnerID)
	assert.Equal(t, "stray", c.Description)
}

func TestCreateCatRequestToModelExplicitValues(t *testing.T) {
	vaccinated := true
	c := CreateCatRequest{
		Nickname:    strPtr("Whiskers"),
		Age:         intPtr(7),
		Description: "house cat",
		Vaccinated:  &vaccinated,
		OwnerID:     int64Ptr(3),
	}.ToModel()

	assert.Equal(t, "Whiskers", c.Nickname)
	assert.Equal(t, 7, c.Age)
	assert.True(t, c.Vaccinated)
	require.NotNil(t, c.OwnerID)
	assert.Equal(t, int64(3), *c.OwnerID)
}

func TestListCatsRequestValidate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req := ListCatsRequest{}
		req.SetDefaults()
		assert.Equal(t, DefaultLimit, req.Limit)
		assert.Equal(t, 0, req.Offset)
		assert.NoError(t, req.Validate())
	})

	t.Run("limit at cap", func(t *testing.T) {
		assert.NoError(t, ListCatsRequest{Limit: MaxLimit}.Validate())
	})

	t.Run("limit above cap rejected, not clamped", func(t *testing.T) {
		err := ListCatsRequest{Limit: MaxLimit + 1}.Validate()
		require.Error(t, err)

		var verrs validation.Errors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs, "limit")
	})

	t.Run("negative offset", func(t *testing.T) {
		err := ListCatsRequest{Limit: 10, Offset: -1}.Validate()
		require.Error(t, err)
	})
}
