package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vrms/internal/repositories/interfaces"
	"vrms/pkg/logger"
)

// CascadeService removes the vehicles owned by a deleted driver.
//
// OnDriverDeleted is idempotent: running it again for the same driver
// removes whatever vehicles are still present and reports that count,
// so a failed cascade can simply be retried.
type CascadeService interface {
	OnDriverDeleted(ctx context.Context, driverID primitive.ObjectID) (int64, error)
}

type cascadeService struct {
	vehicleRepo interfaces.VehicleRepository
	logger      *logger.Logger
}

func NewCascadeService(vehicleRepo interfaces.VehicleRepository, logger *logger.Logger) CascadeService {
	return &cascadeService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (s *cascadeService) OnDriverDeleted(ctx context.Context, driverID primitive.ObjectID) (int64, error) {
	removed, err := s.vehicleRepo.DeleteByOwnerID(ctx, driverID)
	if err != nil {
		s.logger.WithError(err).WithField("driver_id", driverID.Hex()).
			Error("vehicle cascade failed")
		return removed, err
	}

	if removed > 0 {
		s.logger.WithField("driver_id", driverID.Hex()).
			WithField("vehicles_removed", removed).
			Info("removed vehicles of deleted driver")
	}

	return removed, nil
}
