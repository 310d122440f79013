package middleware

import (
	"slices"

	"github.com/deppfellow/category-service/internal/errs"
	"github.com/labstack/echo/v4"
)

// Check is a single authorization predicate. A nil error allows the request.
type Check func(c echo.Context) error

// Require runs checks in order and rejects on the first failure, so a
// route passes only when every check does.
func (auth *AuthMiddleware) Require(checks ...Check) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, check := range checks {
				if err := check(c); err != nil {
					GetLogger(c).Warn().
						Err(err).
						Str("function", "Require").
						Msg("request denied")
					return err
				}
			}
			return next(c)
		}
	}
}

// LoggedIn requires an authenticated user.
func LoggedIn(c echo.Context) error {
	if GetUserID(c) == "" {
		return errs.NewUnauthorizedError("Authentication required", true)
	}
	return nil
}

// NotPaused rejects every request while the API is paused by config.
func (auth *AuthMiddleware) NotPaused(c echo.Context) error {
	if auth.auth.Paused() {
		return errs.NewForbiddenError("This API is temporarily paused", true)
	}
	return nil
}

// HasAnyRole passes when the caller holds at least one of roles.
func HasAnyRole(roles ...string) Check {
	return func(c echo.Context) error {
		if slices.Contains(roles, GetUserRole(c)) {
			return nil
		}
		return errs.NewForbiddenError("You do not have permission to perform this action", true)
	}
}

// CanManageCategories is the gate for every mutating category route.
func (auth *AuthMiddleware) CanManageCategories() echo.MiddlewareFunc {
	return auth.Require(LoggedIn, auth.NotPaused, HasAnyRole(RoleOwner, RoleEmployee))
}
