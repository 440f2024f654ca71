package handlers

import (
	"errors"

	"rupivo-partner/internal/core/domain"
	"rupivo-partner/internal/core/services"
	"rupivo-partner/internal/pkg/export"
	"rupivo-partner/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EarningsHandler handles earnings and payout endpoints
type EarningsHandler struct {
	earningsService *services.EarningsService
}

// NewEarningsHandler creates a new earnings handler
func NewEarningsHandler(earningsService *services.EarningsService) *EarningsHandler {
	return &EarningsHandler{
		earningsService: earningsService,
	}
}

// GetEarnings returns the earnings overview
// @Summary Earnings overview
// @Description Get lifetime, paid and pending totals with monthly trend and commission breakdown
// @Tags Earnings
// @Produce json
// @Success 200 {object} response.Response
// @Router /earnings [get]
func (h *EarningsHandler) GetEarnings(c *fiber.Ctx) error {
	return response.Success(c, "Earnings retrieved successfully", h.earningsService.GetEarnings())
}

// ListPayouts lists payouts in a date range
// @Summary List payouts
// @Description Payouts whose payout date falls in the range. Payouts without a date are never listed.
// @Tags Earnings
// @Produce json
// @Param range query string false "all, 30days, quarter or custom" default(all)
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /payouts [get]
func (h *EarningsHandler) ListPayouts(c *fiber.Ctx) error {
	r, err := services.ParseDateRange(c.Query("range"), c.Query("start"), c.Query("end"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	payouts := h.earningsService.ListPayouts(r)
	return response.Success(c, "Payouts retrieved successfully", fiber.Map{
		"payouts": payouts,
		"total":   len(payouts),
	})
}

// ExportPayouts downloads payouts in a date range as CSV
// @Summary Export payouts
// @Description Download the payout history in the selected range as CSV
// @Tags Earnings
// @Produce text/csv
// @Param range query string false "all, 30days, quarter or custom" default(all)
// @Param start query string false "Custom range start (YYYY-MM-DD)"
// @Param end query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payouts/export [get]
func (h *EarningsHandler) ExportPayouts(c *fiber.Ctx) error {
	r, err := services.ParseDateRange(c.Query("range"), c.Query("start"), c.Query("end"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	data, err := h.earningsService.ExportCSV(r)
	if err != nil {
		if errors.Is(err, domain.ErrNothingToExport) {
			return response.NotFound(c, "No data to export")
		}
		return response.InternalServerError(c, "Failed to export payouts")
	}

	c.Attachment(export.PayoutsFileName)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(data)
}
