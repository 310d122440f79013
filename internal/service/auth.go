package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/deppfellow/category-service/internal/config"
	"github.com/deppfellow/category-service/internal/lib/token"
	"github.com/deppfellow/category-service/internal/server"
)

// AuthService prepares whichever identity provider the config selects.
//
// For clerk the SDK's global secret key is set; for jwt a token.Manager
// is built over the shared HMAC secret.
type AuthService struct {
	server *server.Server
	tokens *token.Manager
}

func NewAuthService(s *server.Server) *AuthService {
	svc := &AuthService{server: s}

	switch s.Config.Auth.Provider {
	case config.AuthProviderClerk:
		clerk.SetKey(s.Config.Auth.SecretKey)
	default:
		svc.tokens = token.NewManager(s.Config.Auth.SecretKey, config.ServiceName, token.DefaultTTL)
	}

	return svc
}

// Provider is the configured auth provider name.
func (a *AuthService) Provider() string {
	return a.server.Config.Auth.Provider
}

// Tokens is nil unless the jwt provider is configured.
func (a *AuthService) Tokens() *token.Manager {
	return a.tokens
}

// Paused reports whether mutating APIs are switched off.
func (a *AuthService) Paused() bool {
	return a.server.Config.Auth.PauseAPI
}
