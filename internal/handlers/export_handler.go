package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"vrms/internal/services"
	"vrms/internal/utils"
	"vrms/pkg/logger"
)

// ExportHandler serves the current driver and vehicle lists as CSV
// downloads. Bookkeeping fields never appear in the output, and an empty
// collection is reported to the caller instead of producing a blank file.
type ExportHandler struct {
	driverService  services.DriverService
	vehicleService services.VehicleService
	logger         *logger.Logger
}

func NewExportHandler(driverService services.DriverService, vehicleService services.VehicleService, logger *logger.Logger) *ExportHandler {
	return &ExportHandler{
		driverService:  driverService,
		vehicleService: vehicleService,
		logger:         logger,
	}
}

// ExportDrivers downloads the driver list, narrowed by the same search
// parameter the listing endpoint takes, so the file matches what the
// caller is looking at.
func (h *ExportHandler) ExportDrivers(c *gin.Context) {
	drivers, err := h.driverService.ListDrivers(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.writeCSV(c, "drivers.csv", drivers)
}

// ExportVehicles downloads the vehicle list with the listing filters
// (search, status, type) applied.
func (h *ExportHandler) ExportVehicles(c *gin.Context) {
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

	h.writeCSV(c, "vehicles.csv", vehicles)
}

func (h *ExportHandler) writeCSV(c *gin.Context, filename string, records interface{}) {
	rows, err := utils.ToRows(records)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	body, err := utils.MarshalCSV(rows)
	if err != nil {
		if errors.Is(err, utils.ErrNoRows) {
			utils.BadRequestResponse(c, utils.ErrNothingToExport)
			return
		}
		respondError(c, h.logger, err)
		return
	}

	utils.CSVResponse(c, filename, body)
}
