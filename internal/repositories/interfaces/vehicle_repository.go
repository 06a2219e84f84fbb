package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vrms/internal/models"
)

// VehicleRepository defines the persistence operations for vehicles
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Vehicle, error)
	List(ctx context.Context) ([]*models.Vehicle, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}
