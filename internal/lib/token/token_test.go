package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SignAndParse(t *testing.T) {
	m := NewManager("secret", "category-service", time.Minute)

	raw, err := m.Sign("user-1", "owner")
	require.NoError(t, err)

	claims, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, "category-service", claims.Issuer)
}

func TestManager_ParseRejects(t *testing.T) {
	m := NewManager("secret", "category-service", time.Minute)

	other, err := NewManager("other-secret", "category-service", time.Minute).Sign("user-1", "owner")
	require.NoError(t, err)

	wrongIssuer, err := NewManager("secret", "someone-else", time.Minute).Sign("user-1", "owner")
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: "owner",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "category-service",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noSubject, err := NewManager("secret", "category-service", time.Minute).Sign("", "owner")
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "category-service",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": other,
		"wrong issuer": wrongIssuer,
		"expired":      expired,
		"no subject":   noSubject,
		"alg none":     unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Parse(raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewManager_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewManager("s", "i", 0).ttl)
}
