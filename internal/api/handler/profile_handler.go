package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesflow/crm-api/internal/core/ports"
)

// ProfileHandler owns the self-service account routes.
type ProfileHandler struct {
	service ports.UserService
}

func NewProfileHandler(service ports.UserService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// updateProfileRequest carries the self-service edits. Setting a new
// password requires the current one.
type updateProfileRequest struct {
	Username        *string `json:"username"         validate:"omitempty,min=3"`
	Email           *string `json:"email"            validate:"omitempty,email"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password"     validate:"omitempty,min=6"`
}

// Get handles GET /api/profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/profile.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Username == nil && req.Email == nil && req.NewPassword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "no update data provided")
	}
	// Changing a password without proving the current one is never permitted.
	if req.NewPassword != "" && req.CurrentPassword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "current password is required to set a new password")
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), p.ID, ports.UpdateProfileInput{
		Username:        req.Username,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
