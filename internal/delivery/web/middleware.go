package web

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/GitPiyusha/flask-microblog/internal/application/interfaces"
	"github.com/GitPiyusha/flask-microblog/internal/session"
)

const (
	sessionCookieName = "microblog_session"
	currentUserKey    = "current_user_id"
)

type AuthMiddleware struct {
	sessions session.Store
	users    interfaces.UserService
	logger   zerolog.Logger
}

func NewAuthMiddleware(sessions session.Store, users interfaces.UserService, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, users: users, logger: logger}
}

// RequireUser resolves the session cookie to a user id and rejects the
// request when no valid session exists. It also stamps the user's
// last-seen time, once per request.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		userId, err := m.sessions.Get(c.Request().Context(), cookie.Value)
		if err != nil {
			return err
		}
		if userId == 0 {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		if err := m.users.TouchLastSeen(c.Request().Context(), userId); err != nil {
			// A failed last-seen write should not fail the request.
			m.logger.Warn().Err(err).Uint("user_id", userId).Msg("failed to update last seen")
		}

		c.Set(currentUserKey, userId)
		return next(c)
	}
}

// CurrentUserId returns the authenticated user id set by RequireUser.
func CurrentUserId(c echo.Context) uint {
	userId, _ := c.Get(currentUserKey).(uint)
	return userId
}

func newSessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
	}
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
