package routes

import (
	"github.com/gin-gonic/gin"

	"vrms/internal/handlers"
)

// SetupVehicleRoutes sets up routes for vehicle management
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
}
