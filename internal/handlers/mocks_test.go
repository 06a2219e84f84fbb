package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"vrms/internal/models"
	"vrms/internal/validators"
	"vrms/pkg/logger"
)

func testLogger() *logger.Logger {
	log, _ := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel})
	log.SetOutput(io.Discard)
	return log
}

type MockDriverService struct {
	mock.Mock
}

func (m *MockDriverService) ListDrivers(ctx context.Context, search string) ([]*models.Driver, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Driver), args.Error(1)
}

func (m *MockDriverService) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverService) CreateDriver(ctx context.Context, req *validators.DriverCreateRequest) (*models.Driver, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverService) UpdateDriver(ctx context.Context, id string, req *validators.DriverUpdateRequest) (*models.Driver, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverService) DeleteDriver(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) ListVehicles(ctx context.Context, search, status, vehicleType string) ([]*models.Vehicle, error) {
	args := m.Called(ctx, search, status, vehicleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) CreateVehicle(ctx context.Context, req *validators.VehicleCreateRequest) (*models.Vehicle, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) UpdateVehicle(ctx context.Context, id string, req *validators.VehicleUpdateRequest) (*models.Vehicle, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleService) DeleteVehicle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
