package middleware

import (
	"github.com/deppfellow/category-service/internal/logger"
	"github.com/deppfellow/category-service/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"

	// LoggerKey stores the request-scoped *zerolog.Logger in the echo context.
	LoggerKey = "logger"
)

// ContextEnhancer builds the request-scoped logger.
//
// The logger carries request_id, method, path, ip, New Relic trace ids and,
// when already known, the user. It is stored in the echo context and in the
// request context.Context (readable with zerolog.Ctx).
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			if userID := GetUserID(c); userID != "" {
				contextLogger = contextLogger.With().Str("user_id", userID).Logger()
			}
			if userRole := GetUserRole(c); userRole != "" {
				contextLogger = contextLogger.With().Str("user_role", userRole).Logger()
			}

			setLogger(c, contextLogger)

			return next(c)
		}
	}
}

// setLogger makes l the request logger for both echo and context.Context consumers.
func setLogger(c echo.Context, l zerolog.Logger) {
	c.Set(LoggerKey, &l)
	c.SetRequest(c.Request().WithContext(l.WithContext(c.Request().Context())))
}

// setIdentity records the authenticated user and adds it to the request logger.
func setIdentity(c echo.Context, userID, role string) {
	c.Set(UserIDKey, userID)
	c.Set(UserRoleKey, role)

	setLogger(c, GetLogger(c).With().
		Str("user_id", userID).
		Str("user_role", role).
		Logger())
}

// GetUserID returns "" for anonymous requests.
func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetUserRole returns "" for anonymous requests.
func GetUserRole(c echo.Context) string {
	if role, ok := c.Get(UserRoleKey).(string); ok {
		return role
	}
	return ""
}

// GetLogger returns the request-scoped logger, or a no-op logger if
// EnhanceContext did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return l
	}

	nop := zerolog.Nop()
	return &nop
}
