package handlers

import (
	"github.com/gin-gonic/gin"

	"vrms/internal/services"
	"vrms/internal/utils"
	"vrms/pkg/logger"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardService services.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetSummary returns entity counts plus the vehicles due for renewal
// within the alert window.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.OKResponse(c, summary)
}

func (h *DashboardHandler) GetExpiringVehicles(c *gin.Context) {
	vehicles, err := h.dashboardService.ExpiringVehicles(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.OKResponse(c, vehicles)
}
