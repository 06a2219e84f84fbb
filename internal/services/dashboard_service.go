package services

import (
	"context"
	"time"

	"vrms/internal/models"
	"vrms/internal/repositories/interfaces"
	"vrms/internal/views"
)

type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
	// ExpiringVehicles returns vehicles whose registration expires within
	// the renewal window, ascending by expiry. Already-expired vehicles
	// are excluded.
	ExpiringVehicles(ctx context.Context) ([]*models.Vehicle, error)
}

type dashboardService struct {
	driverRepo  interfaces.DriverRepository
	vehicleRepo interfaces.VehicleRepository
	horizonDays int
}

func NewDashboardService(driverRepo interfaces.DriverRepository, vehicleRepo interfaces.VehicleRepository, horizonDays int) DashboardService {
	return &dashboardService{
		driverRepo:  driverRepo,
		vehicleRepo: vehicleRepo,
		horizonDays: horizonDays,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	drivers, err := s.driverRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	expiring, err := s.ExpiringVehicles(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardSummary{
		Drivers:       drivers,
		Vehicles:      vehicles,
		ExpiringSoon:  expiring,
		ExpiringCount: len(expiring),
	}, nil
}

func (s *dashboardService) ExpiringVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Dashboard rows show the owner, same as every other vehicle read
	if err := populateOwners(ctx, s.driverRepo, vehicles); err != nil {
		return nil, err
	}

	return views.ExpiringWithin(vehicles, time.Now(), s.horizonDays), nil
}
