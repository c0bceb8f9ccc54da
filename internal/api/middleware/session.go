package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salesflow/crm-api/internal/api/metrics"
	"github.com/salesflow/crm-api/internal/core/domain"
	"github.com/salesflow/crm-api/internal/core/token"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "auth_token"
	// LoginPath is where unauthenticated browser navigations are sent.
	LoginPath = "/login"

	principalKey = "principal"
)

// Session is the request-boundary gate applied to every protected route.
// It reads the session cookie, verifies the token, and attaches the decoded
// identity to the request context. No database access happens here; identity
// comes entirely from the token payload.
//
// Failure handling: API calls receive a structured 401 body; browser
// navigations (Accept: text/html) are redirected to the login page. An
// invalid or expired cookie is cleared either way so a corrupted cookie
// cannot loop the client.
func Session(codec *token.Codec, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return reject(c, "authentication required")
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyOutcome(err)).Inc()
				ClearSessionCookie(c, secure)
				return reject(c, "invalid or expired session")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(principalKey, domain.Principal{
				ID:       claims.Subject,
				Username: claims.Username,
				Role:     claims.Role,
			})
			return next(c)
		}
	}
}

// Principal returns the identity attached by the Session middleware.
func Principal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

// SetSessionCookie writes the session cookie with the attributes required by
// the session design: http-only, SameSite=Strict, path /, max-age = token TTL.
func SetSessionCookie(c echo.Context, value string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func reject(c echo.Context, msg string) error {
	if isBrowserNavigation(c.Request()) {
		return c.Redirect(http.StatusSeeOther, LoginPath)
	}
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}

// isBrowserNavigation reports whether the request looks like a page
// navigation rather than an API call.
func isBrowserNavigation(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func verifyOutcome(err error) string {
	switch err {
	case token.ErrTokenExpired:
		return "expired"
	case token.ErrTokenSignatureInvalid:
		return "signature_invalid"
	default:
		return "malformed"
	}
}
