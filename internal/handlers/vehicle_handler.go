package handlers

import (
	"github.com/gin-gonic/gin"

	"vrms/internal/services"
	"vrms/internal/utils"
	"vrms/internal/validators"
	"vrms/pkg/logger"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
	logger         *logger.Logger
}

func NewVehicleHandler(vehicleService services.VehicleService, logger *logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
	}
}

// ListVehicles returns all vehicles with their owners populated, newest
// first. The search, status and type query parameters narrow the result;
// "all" (or an empty value) disables a selector.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.ListVehicles(
		c.Request.Context(),
		c.Query("search"),
		c.Query("status"),
		c.Query("type"),
	)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.OKResponse(c, vehicles)
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.OKResponse(c, vehicle)
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var request validators.VehicleCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, vehicle)
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var request validators.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.OKResponse(c, vehicle)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.OKResponse(c, gin.H{"message": "Vehicle deleted"})
}
