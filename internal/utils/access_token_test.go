package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret-keep-out-of-real-configs")

	t.Run("should decode what it encoded", func(t *testing.T) {
		// given
		util := NewAccessTokenUtil()
		userId := "64b1f0a2c3d4e5f60718293a"

		// when
		token, err := util.EncodeToken(userId)
		require.NoError(t, err)
		claims, err := util.DecodeToken(token)

		// then
		require.NoError(t, err)
		assert.Equal(t, userId, claims["sub"])
		assert.NotZero(t, claims["exp"])
	})

	t.Run("should reject garbage tokens", func(t *testing.T) {
		// when
		_, err := NewAccessTokenUtil().DecodeToken("not.a.jwe")

		// then
		assert.Error(t, err)
	})

	t.Run("should reject tokens encrypted with another secret", func(t *testing.T) {
		// given
		util := NewAccessTokenUtil()
		token, err := util.EncodeToken("64b1f0a2c3d4e5f60718293a")
		require.NoError(t, err)

		t.Setenv("SECRET_JWT", "a-different-secret-entirely")

		// when
		_, err = util.DecodeToken(token)

		// then
		assert.Error(t, err)
	})
}
