package authtoken_test

import (
	"testing"
	"time"

	"sharda-hr/internal/shared/authtoken"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	claims := authtoken.Claims{UserID: "u-1", EmployeeID: "e-1", CompanyID: "c-1", Role: "HR", Type: authtoken.TypeAccess}

	t.Run("round trip", func(t *testing.T) {
		raw, err := authtoken.Sign(claims, time.Now(), time.Minute)
		require.NoError(t, err)

		got, err := authtoken.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, "e-1", got.EmployeeID)
		assert.Equal(t, authtoken.TypeAccess, got.Type)
	})

	t.Run("expired", func(t *testing.T) {
		raw, err := authtoken.Sign(claims, time.Now().Add(-time.Hour), time.Minute)
		require.NoError(t, err)

		_, err = authtoken.Parse(raw)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("other secret", func(t *testing.T) {
		raw, err := authtoken.Sign(claims, time.Now(), time.Minute)
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "rotated")
		_, err = authtoken.Parse(raw)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("missing company", func(t *testing.T) {
		partial := claims
		partial.CompanyID = ""
		raw, err := authtoken.Sign(partial, time.Now(), time.Minute)
		require.NoError(t, err)

		_, err = authtoken.Parse(raw)
		assert.ErrorIs(t, err, authtoken.ErrMissingIdentity)
	})

	t.Run("unexpected algorithm", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = authtoken.Parse(raw)
		assert.Error(t, err)
	})
}
