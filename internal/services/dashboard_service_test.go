package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vrms/internal/models"
)

func TestDashboardSummary(t *testing.T) {
	ownerID := primitive.NewObjectID()
	soon := time.Now().AddDate(0, 0, 10)
	farOut := time.Now().AddDate(0, 0, 90)

	vehicles := []*models.Vehicle{
		{RegistrationNumber: "SOON", OwnerID: ownerID, RegistrationExpiry: &soon},
		{RegistrationNumber: "LATER", OwnerID: ownerID, RegistrationExpiry: &farOut},
		{RegistrationNumber: "NONE", OwnerID: ownerID},
	}

	driverRepo := new(MockDriverRepository)
	driverRepo.On("Count", mock.Anything).Return(int64(5), nil)
	driverRepo.On("GetByIDs", mock.Anything, []primitive.ObjectID{ownerID}).
		Return([]*models.Driver{{ID: ownerID, FullName: "Jane Doe"}}, nil)

	vehicleRepo := new(MockVehicleRepository)
	vehicleRepo.On("Count", mock.Anything).Return(int64(3), nil)
	vehicleRepo.On("List", mock.Anything).Return(vehicles, nil)

	svc := NewDashboardService(driverRepo, vehicleRepo, 30)
	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), summary.Drivers)
	assert.Equal(t, int64(3), summary.Vehicles)
	require.Len(t, summary.ExpiringSoon, 1)
	assert.Equal(t, "SOON", summary.ExpiringSoon[0].RegistrationNumber)
	assert.Equal(t, 1, summary.ExpiringCount)

	// Dashboard vehicles carry the populated owner like every other read
	require.NotNil(t, summary.ExpiringSoon[0].Owner)
	assert.Equal(t, "Jane Doe", summary.ExpiringSoon[0].Owner.FullName)
}
