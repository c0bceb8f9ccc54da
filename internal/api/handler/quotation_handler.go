package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesflow/crm-api/internal/core/domain"
	"github.com/salesflow/crm-api/internal/core/ports"
)

// QuotationHandler handles HTTP requests for quotations.
type QuotationHandler struct {
	service ports.QuotationService
}

func NewQuotationHandler(service ports.QuotationService) *QuotationHandler {
	return &QuotationHandler{service: service}
}

// List handles GET /api/quotations.
//
// @Summary      List quotations
// @Tags         quotations
// @Produce      json
// @Success      200  {array}   domain.Quotation
// @Failure      401  {object}  errorResponse
// @Router       /api/quotations [get]
func (h *QuotationHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	quotations, err := h.service.List(c.Request().Context(), p)
	if err != nil {
		return err
	}
	if quotations == nil {
		quotations = []*domain.Quotation{}
	}
	return c.JSON(http.StatusOK, quotations)
}

// Create handles POST /api/quotations. The referenced client must exist and
// belong to the caller (or the caller is an admin).
//
// @Summary      Create a quotation
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body      createQuotationRequest  true  "Quotation details"
// @Success      201   {object}  domain.Quotation
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/quotations [post]
func (h *QuotationHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createQuotationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quotation, err := h.service.Create(c.Request().Context(), p, ports.CreateQuotationInput{
		ClientID: req.ClientID,
		Details:  req.Details,
		Amount:   req.Amount,
		Status:   domain.QuotationStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, quotation)
}

// Get handles GET /api/quotations/:id.
//
// @Summary      Get a quotation
// @Tags         quotations
// @Produce      json
// @Param        id   path      string  true  "Quotation id"
// @Success      200  {object}  domain.Quotation
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/quotations/{id} [get]
func (h *QuotationHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	quotation, err := h.service.Get(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quotation)
}

// Update handles PUT /api/quotations/:id.
//
// @Summary      Update a quotation
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Quotation id"
// @Param        body  body      updateQuotationRequest  true  "Quotation details"
// @Success      200   {object}  domain.Quotation
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/quotations/{id} [put]
func (h *QuotationHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateQuotationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quotation, err := h.service.Update(c.Request().Context(), p, c.Param("id"), ports.UpdateQuotationInput{
		ClientID: req.ClientID,
		Details:  req.Details,
		Amount:   req.Amount,
		Status:   domain.QuotationStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, quotation)
}

// Delete handles DELETE /api/quotations/:id.
//
// @Summary      Delete a quotation
// @Tags         quotations
// @Produce      json
// @Param        id   path      string  true  "Quotation id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/quotations/{id} [delete]
func (h *QuotationHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "quotation deleted successfully"})
}
