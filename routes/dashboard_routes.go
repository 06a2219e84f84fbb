package routes

import (
	"github.com/gin-gonic/gin"

	"vrms/internal/handlers"
)

// SetupDashboardRoutes sets up the dashboard summary and export routes
func SetupDashboardRoutes(r *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, exportHandler *handlers.ExportHandler) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/summary", dashboardHandler.GetSummary)
		dashboard.GET("/expiring", dashboardHandler.GetExpiringVehicles)
	}

	// Exports live outside /drivers and /vehicles so the :id routes
	// never swallow them.
	exports := r.Group("/exports")
	{
		exports.GET("/drivers", exportHandler.ExportDrivers)
		exports.GET("/vehicles", exportHandler.ExportVehicles)
	}
}
