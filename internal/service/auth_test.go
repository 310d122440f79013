package service

import (
	"testing"

	"github.com/deppfellow/category-service/internal/config"
	"github.com/deppfellow/category-service/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServer(auth config.AuthConfig) *server.Server {
	return &server.Server{Config: &config.Config{Auth: auth}}
}

func TestAuthService_JWT(t *testing.T) {
	svc := NewAuthService(newAuthServer(config.AuthConfig{
		Provider:  config.AuthProviderJWT,
		SecretKey: "secret",
		PauseAPI:  true,
	}))

	assert.Equal(t, config.AuthProviderJWT, svc.Provider())
	assert.True(t, svc.Paused())
	require.NotNil(t, svc.Tokens())

	raw, err := svc.Tokens().Sign("user-1", "owner")
	require.NoError(t, err)

	claims, err := svc.Tokens().Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, config.ServiceName, claims.Issuer)
}

func TestAuthService_Clerk(t *testing.T) {
	svc := NewAuthService(newAuthServer(config.AuthConfig{
		Provider:  config.AuthProviderClerk,
		SecretKey: "sk_test_unused",
	}))

	assert.Equal(t, config.AuthProviderClerk, svc.Provider())
	assert.False(t, svc.Paused())
	assert.Nil(t, svc.Tokens())
}
