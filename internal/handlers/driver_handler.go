package handlers

import (
	"github.com/gin-gonic/gin"

	"vrms/internal/services"
	"vrms/internal/utils"
	"vrms/internal/validators"
	"vrms/pkg/logger"
)

type DriverHandler struct {
	driverService services.DriverService
	logger        *logger.Logger
}

func NewDriverHandler(driverService services.DriverService, logger *logger.Logger) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
		logger:        logger,
	}
}

// ListDrivers returns all drivers, newest first, optionally narrowed by
// the search query parameter.
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.driverService.ListDrivers(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.OKResponse(c, drivers)
}

func (h *DriverHandler) GetDriver(c *gin.Context) {
	driver, err := h.driverService.GetDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.OKResponse(c, driver)
}

func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var request validators.DriverCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	driver, err := h.driverService.CreateDriver(c.Request.Context(), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, driver)
}

func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	var request validators.DriverUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	driver, err := h.driverService.UpdateDriver(c.Request.Context(), c.Param("id"), &request)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.OKResponse(c, driver)
}

// DeleteDriver removes a driver along with every vehicle they own and
// reports how many vehicles went with them.
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	removed, err := h.driverService.DeleteDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"message":         "Driver and associated vehicles deleted",
		"vehiclesRemoved": removed,
	})
}
