package middleware

import (
	"net/http"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/deppfellow/category-service/internal/config"
	"github.com/deppfellow/category-service/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
)

// AuthMiddleware identifies the caller. It never rejects a request on its
// own; route gates (Require) decide what anonymous callers may do.
type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Authenticate resolves the user from the Authorization header with the configured provider.
//
// A missing, malformed, expired or otherwise unverifiable credential leaves
// the request anonymous, so public routes keep working and gated routes
// answer 401 from LoggedIn.
func (auth *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	if auth.auth.Provider() == config.AuthProviderClerk {
		return auth.clerkAuthenticate
	}
	return auth.jwtAuthenticate
}

func (auth *AuthMiddleware) jwtAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		raw, ok := bearerToken(header)
		if !ok {
			GetLogger(c).Warn().
				Str("function", "Authenticate").
				Msg("ignoring non-bearer authorization header")
			return next(c)
		}

		claims, err := auth.auth.Tokens().Parse(raw)
		if err != nil {
			GetLogger(c).Warn().
				Err(err).
				Str("function", "Authenticate").
				Msg("ignoring unusable access token")
			return next(c)
		}

		setIdentity(c, claims.Subject, NormalizeRole(claims.Role))
		return next(c)
	}
}

// clerkAuthenticate runs Clerk's header middleware around next. Verification
// failures continue anonymously instead of answering 401.
func (auth *AuthMiddleware) clerkAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var err error

		proceed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.SetRequest(r)
			if claims, ok := clerk.SessionClaimsFromContext(r.Context()); ok && claims != nil {
				setIdentity(c, claims.Subject, NormalizeRole(claims.ActiveOrganizationRole))
			}
			err = next(c)
		})

		rejected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			GetLogger(c).Warn().
				Str("function", "Authenticate").
				Str("path", r.URL.Path).
				Msg("ignoring session token rejected by clerk")
			c.SetRequest(r)
			err = next(c)
		})

		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(rejected),
		)(proceed).ServeHTTP(c.Response(), c.Request())

		return err
	}
}

func bearerToken(header string) (string, bool) {
	scheme, raw, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// NormalizeRole lowercases a role and strips Clerk's "org:" prefix.
func NormalizeRole(role string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(role)), "org:")
}
