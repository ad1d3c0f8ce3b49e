//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"salon-booking-api/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-key"

func TestGenerateToken(t *testing.T) {
	service := jwt.NewService(testSecret, time.Hour)

	token, err := service.GenerateToken("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := jwt.NewService(testSecret, time.Hour)

	t.Run("accepts a freshly issued token", func(t *testing.T) {
		token, err := service.GenerateToken("admin")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.True(t, claims.ExpiresAt.After(time.Now()))
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("different-secret", time.Hour)
		token, err := other.GenerateToken("admin")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := jwt.NewService(testSecret, -time.Minute)
		token, err := expired.GenerateToken("admin")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
