package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vrms/internal/models"
)

// DriverRepository defines the persistence operations for drivers
type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Driver, error)
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Driver, error)
	List(ctx context.Context) ([]*models.Driver, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
