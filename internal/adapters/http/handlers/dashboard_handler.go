package handlers

import (
	"rupivo-partner/internal/core/services"
	"rupivo-partner/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the partner dashboard
// @Summary Partner Dashboard
// @Description Get KPIs, recent referrals and lead activity for the last 7 days
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	return response.Success(c, "Dashboard retrieved successfully", h.dashboardService.GetDashboard())
}
