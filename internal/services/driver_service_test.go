package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vrms/internal/models"
	"vrms/internal/validators"
)

func TestCreateDriver(t *testing.T) {
	req := &validators.DriverCreateRequest{
		FullName:      "Jane Doe",
		ContactNumber: "555-0001",
		LicenseNumber: "DL-1001",
		Address:       "12 Main St",
	}

	t.Run("creates when license is free", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		driverRepo.On("GetByLicenseNumber", mock.Anything, "DL-1001").
			Return(nil, models.ErrDriverNotFound)
		driverRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Driver")).
			Return(nil)

		svc := NewDriverService(driverRepo, nil, testLogger())
		driver, err := svc.CreateDriver(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", driver.FullName)
		driverRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate license", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		driverRepo.On("GetByLicenseNumber", mock.Anything, "DL-1001").
			Return(&models.Driver{ID: primitive.NewObjectID(), LicenseNumber: "DL-1001"}, nil)

		svc := NewDriverService(driverRepo, nil, testLogger())
		_, err := svc.CreateDriver(context.Background(), req)

		assert.ErrorIs(t, err, models.ErrDuplicateLicense)
		driverRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects incomplete payload", func(t *testing.T) {
		svc := NewDriverService(new(MockDriverRepository), nil, testLogger())
		_, err := svc.CreateDriver(context.Background(), &validators.DriverCreateRequest{})

		var validationErrs validators.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	})
}

func TestUpdateDriver(t *testing.T) {
	driverID := primitive.NewObjectID()

	t.Run("license conflict with another driver", func(t *testing.T) {
		other := &models.Driver{ID: primitive.NewObjectID(), LicenseNumber: "DL-9999"}
		driverRepo := new(MockDriverRepository)
		driverRepo.On("GetByLicenseNumber", mock.Anything, "DL-9999").Return(other, nil)

		svc := NewDriverService(driverRepo, nil, testLogger())
		license := "DL-9999"
		_, err := svc.UpdateDriver(context.Background(), driverID.Hex(), &validators.DriverUpdateRequest{
			LicenseNumber: &license,
		})

		assert.ErrorIs(t, err, models.ErrDuplicateLicense)
	})

	t.Run("keeping own license is not a conflict", func(t *testing.T) {
		self := &models.Driver{ID: driverID, LicenseNumber: "DL-1001"}
		driverRepo := new(MockDriverRepository)
		driverRepo.On("GetByLicenseNumber", mock.Anything, "DL-1001").Return(self, nil)
		driverRepo.On("Update", mock.Anything, driverID, mock.Anything).Return(nil)
		driverRepo.On("GetByID", mock.Anything, driverID).Return(self, nil)

		svc := NewDriverService(driverRepo, nil, testLogger())
		license := "DL-1001"
		driver, err := svc.UpdateDriver(context.Background(), driverID.Hex(), &validators.DriverUpdateRequest{
			LicenseNumber: &license,
		})

		require.NoError(t, err)
		assert.Equal(t, driverID, driver.ID)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := NewDriverService(new(MockDriverRepository), nil, testLogger())
		_, err := svc.UpdateDriver(context.Background(), "not-an-id", &validators.DriverUpdateRequest{})
		assert.ErrorIs(t, err, models.ErrInvalidID)
	})
}

func TestDeleteDriver(t *testing.T) {
	driverID := primitive.NewObjectID()

	t.Run("cascades and reports removed count", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		driverRepo.On("Delete", mock.Anything, driverID).Return(nil)

		cascade := new(MockCascadeService)
		cascade.On("OnDriverDeleted", mock.Anything, driverID).Return(int64(3), nil)

		svc := NewDriverService(driverRepo, cascade, testLogger())
		removed, err := svc.DeleteDriver(context.Background(), driverID.Hex())

		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
		cascade.AssertExpectations(t)
	})

	t.Run("driver without vehicles removes zero", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		driverRepo.On("Delete", mock.Anything, driverID).Return(nil)

		cascade := new(MockCascadeService)
		cascade.On("OnDriverDeleted", mock.Anything, driverID).Return(int64(0), nil)

		svc := NewDriverService(driverRepo, cascade, testLogger())
		removed, err := svc.DeleteDriver(context.Background(), driverID.Hex())

		require.NoError(t, err)
		assert.Equal(t, int64(0), removed)
	})

	t.Run("missing driver is not found", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		driverRepo.On("Delete", mock.Anything, driverID).Return(models.ErrDriverNotFound)

		svc := NewDriverService(driverRepo, new(MockCascadeService), testLogger())
		_, err := svc.DeleteDriver(context.Background(), driverID.Hex())

		assert.ErrorIs(t, err, models.ErrDriverNotFound)
	})

	t.Run("cascade failure is reported distinctly", func(t *testing.T) {
		driverRepo := new(MockDriverRepository)
		driverRepo.On("Delete", mock.Anything, driverID).Return(nil)

		cascade := new(MockCascadeService)
		cascade.On("OnDriverDeleted", mock.Anything, driverID).
			Return(int64(1), errors.New("write failed"))

		svc := NewDriverService(driverRepo, cascade, testLogger())
		removed, err := svc.DeleteDriver(context.Background(), driverID.Hex())

		var cascadeErr *models.PartialCascadeError
		require.ErrorAs(t, err, &cascadeErr)
		assert.Equal(t, driverID, cascadeErr.DriverID)
		assert.Equal(t, int64(1), cascadeErr.Removed)
		assert.Equal(t, int64(1), removed)
	})
}

func TestListDrivers(t *testing.T) {
	drivers := []*models.Driver{
		{FullName: "Jane Doe", LicenseNumber: "DL-1001"},
		{FullName: "John Smith", LicenseNumber: "DL-2002"},
	}

	driverRepo := new(MockDriverRepository)
	driverRepo.On("List", mock.Anything).Return(drivers, nil)

	svc := NewDriverService(driverRepo, nil, testLogger())

	all, err := svc.ListDrivers(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := svc.ListDrivers(context.Background(), "jane")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Jane Doe", matched[0].FullName)
}
