package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vrms/internal/models"
	"vrms/internal/utils"
	"vrms/internal/validators"
	"vrms/pkg/logger"
)

// respondError maps service errors onto the wire contract: validation
// problems and bad references are 400, missing entities 404, everything
// else 500. A partial cascade keeps its own message so callers can tell
// it apart from an ordinary store failure.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.BadRequestResponse(c, validationErrs.Error())
		return
	}

	switch {
	case errors.Is(err, models.ErrInvalidID),
		errors.Is(err, models.ErrDuplicateLicense),
		errors.Is(err, models.ErrDuplicateRegistration),
		errors.Is(err, models.ErrOwnerNotFound):
		utils.BadRequestResponse(c, err.Error())
		return
	case errors.Is(err, models.ErrDriverNotFound),
		errors.Is(err, models.ErrVehicleNotFound):
		utils.NotFoundResponse(c, err.Error())
		return
	}

	var cascadeErr *models.PartialCascadeError
	if errors.As(err, &cascadeErr) {
		log.WithError(err).Error("driver deletion left orphaned vehicles")
		utils.ErrorResponse(c, http.StatusInternalServerError, cascadeErr.Error())
		return
	}

	log.WithError(err).Error("request failed")
	utils.InternalServerErrorResponse(c, "")
}
