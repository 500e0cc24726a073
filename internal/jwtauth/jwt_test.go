package jwtauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "nhicheck/pkg/domain-errors"
)

func TestRoundTrip(t *testing.T) {
	svc := NewService("test-key", "nhicheck", "nhicheck-api")

	token, err := svc.GenerateToken("integration-suite", time.Minute)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "integration-suite", claims.ClientID)
}

func TestValidateToken_Failures(t *testing.T) {
	svc := NewService("test-key", "nhicheck", "nhicheck-api")

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewService("other-key", "nhicheck", "nhicheck-api")
		token, err := other.GenerateToken("client", time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken("client", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := NewService("test-key", "nhicheck", "someone-else")
		token, err := other.GenerateToken("client", time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
