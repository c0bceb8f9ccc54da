package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesflow/crm-api/internal/core/domain"
	"github.com/salesflow/crm-api/internal/core/ports"
)

// ReminderHandler handles HTTP requests for reminders.
type ReminderHandler struct {
	service ports.ReminderService
}

func NewReminderHandler(service ports.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// List handles GET /api/reminders — sorted by due time, soonest first.
//
// @Summary      List reminders
// @Tags         reminders
// @Produce      json
// @Success      200  {array}   domain.Reminder
// @Failure      401  {object}  errorResponse
// @Router       /api/reminders [get]
func (h *ReminderHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	reminders, err := h.service.List(c.Request().Context(), p)
	if err != nil {
		return err
	}
	if reminders == nil {
		reminders = []*domain.Reminder{}
	}
	return c.JSON(http.StatusOK, reminders)
}

// Create handles POST /api/reminders.
//
// @Summary      Create a reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        body  body      createReminderRequest  true  "Reminder details"
// @Success      201   {object}  domain.Reminder
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/reminders [post]
func (h *ReminderHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reminder, err := h.service.Create(c.Request().Context(), p, ports.CreateReminderInput{
		ClientID: req.ClientID,
		Message:  req.Message,
		RemindAt: req.RemindAt,
		Type:     domain.ReminderType(req.Type),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, reminder)
}

// Get handles GET /api/reminders/:id.
//
// @Summary      Get a reminder
// @Tags         reminders
// @Produce      json
// @Param        id   path      string  true  "Reminder id"
// @Success      200  {object}  domain.Reminder
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/reminders/{id} [get]
func (h *ReminderHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	reminder, err := h.service.Get(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reminder)
}

// Toggle handles PATCH /api/reminders/:id — flips the completion flag.
//
// @Summary      Toggle reminder completion
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Reminder id"
// @Param        body  body      toggleReminderRequest  true  "Completion flag"
// @Success      200   {object}  domain.Reminder
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/reminders/{id} [patch]
func (h *ReminderHandler) Toggle(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req toggleReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Completed == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "completed is required")
	}

	reminder, err := h.service.SetCompleted(c.Request().Context(), p, c.Param("id"), *req.Completed)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reminder)
}

// Delete handles DELETE /api/reminders/:id.
//
// @Summary      Delete a reminder
// @Tags         reminders
// @Produce      json
// @Param        id   path      string  true  "Reminder id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/reminders/{id} [delete]
func (h *ReminderHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "reminder deleted successfully"})
}
