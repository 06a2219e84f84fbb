package routes

import (
	"github.com/gin-gonic/gin"

	"vrms/internal/handlers"
)

// SetupDriverRoutes sets up routes for driver management
func SetupDriverRoutes(r *gin.RouterGroup, driverHandler *handlers.DriverHandler) {
	drivers := r.Group("/drivers")
	{
		drivers.GET("", driverHandler.ListDrivers)
		drivers.POST("", driverHandler.CreateDriver)
		drivers.GET("/:id", driverHandler.GetDriver)
		drivers.PUT("/:id", driverHandler.UpdateDriver)
		drivers.DELETE("/:id", driverHandler.DeleteDriver)
	}
}
