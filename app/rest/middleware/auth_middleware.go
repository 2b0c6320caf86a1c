package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"growhub/app/domain"
	"growhub/app/port"
)

// Context keys set by the auth middleware for downstream handlers
const (
	ContextKeySession = "provider_session"
	ContextKeyUser    = "current_user"
)

// AuthMiddleware resolves the caller's identity-provider session and the
// matching mirrored user
type AuthMiddleware struct {
	provider port.ProviderGateway
	users    port.UserRepository
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(provider port.ProviderGateway, users port.UserRepository, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		provider: provider,
		users:    users,
		logger:   logger,
	}
}

// RequireAuth resolves the session cookie against the provider and loads the
// mirrored user into the request context. Requests without a resolvable
// session are rejected.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			cookieHeader := c.Request().Header.Get("Cookie")
			if cookieHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			session, err := m.provider.WhoAmI(ctx, cookieHeader)
			if err != nil {
				m.logger.Debug("session resolution failed", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}
			if !session.Active {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			user, err := m.users.GetByProviderID(ctx, session.IdentityID)
			if err != nil {
				// A valid provider session without a mirror row means the
				// user's webhook has not arrived yet.
				m.logger.Warn("session for unmirrored user",
					"identity_id", session.IdentityID)
				return echo.NewHTTPError(http.StatusForbidden, "user not provisioned")
			}

			c.Set(ContextKeySession, session)
			c.Set(ContextKeyUser, user)

			return next(c)
		}
	}
}

// RequireOrganization ensures the mirrored user is linked to an organization.
// Runs after RequireAuth.
func (m *AuthMiddleware) RequireOrganization() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextKeyUser).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !user.HasOrganization() {
				return echo.NewHTTPError(http.StatusForbidden, "no organization membership")
			}
			return next(c)
		}
	}
}

// RequireAdmin restricts the route to organization admins. Runs after
// RequireAuth.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get(ContextKeySession).(*domain.ProviderSession)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !session.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient privileges")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the mirrored user the auth middleware stored on the
// context, or nil outside an authenticated route
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(ContextKeyUser).(*domain.User)
	return user
}

// CurrentSession returns the provider session the auth middleware stored on
// the context, or nil outside an authenticated route
func CurrentSession(c echo.Context) *domain.ProviderSession {
	session, _ := c.Get(ContextKeySession).(*domain.ProviderSession)
	return session
}
