package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesflow/crm-api/internal/api/middleware"
	"github.com/salesflow/crm-api/internal/core/domain"
)

// ctxPrincipal extracts the identity attached by the Session middleware and
// fast-fails when it is absent: presence proves the gate ran, so a missing
// principal on a protected route is a wiring error, not a user error.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
