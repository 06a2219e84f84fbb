package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vrms/internal/models"
	"vrms/internal/repositories/interfaces"
	"vrms/internal/utils"
)

type driverRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewDriverRepository(db *mongo.Database, cache CacheService) interfaces.DriverRepository {
	return &driverRepository{
		collection: db.Collection(utils.DriversCollection),
		cache:      cache,
	}
}

func (r *driverRepository) Create(ctx context.Context, driver *models.Driver) error {
	driver.ID = primitive.NewObjectID()
	driver.CreatedAt = time.Now()
	driver.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, driver)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateLicense
		}
		return fmt.Errorf("failed to create driver: %w", err)
	}

	r.cacheDriver(ctx, driver)

	return nil
}

func (r *driverRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	// Try cache first
	if driver := r.getDriverFromCache(ctx, id.Hex()); driver != nil {
		return driver, nil
	}

	var driver models.Driver
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	r.cacheDriver(ctx, &driver)

	return &driver, nil
}

func (r *driverRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.Driver, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find drivers by IDs: %w", err)
	}
	defer cursor.Close(ctx)

	var drivers []*models.Driver
	for cursor.Next(ctx) {
		var driver models.Driver
		if err := cursor.Decode(&driver); err != nil {
			return nil, fmt.Errorf("failed to decode driver: %w", err)
		}
		drivers = append(drivers, &driver)
	}

	return drivers, nil
}

func (r *driverRepository) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Driver, error) {
	var driver models.Driver
	err := r.collection.FindOne(ctx, bson.M{"licenseNumber": licenseNumber}).Decode(&driver)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver by license number: %w", err)
	}

	return &driver, nil
}

func (r *driverRepository) List(ctx context.Context) ([]*models.Driver, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer cursor.Close(ctx)

	var drivers []*models.Driver
	for cursor.Next(ctx) {
		var driver models.Driver
		if err := cursor.Decode(&driver); err != nil {
			return nil, fmt.Errorf("failed to decode driver: %w", err)
		}
		drivers = append(drivers, &driver)
	}

	return drivers, nil
}

func (r *driverRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateLicense
		}
		return fmt.Errorf("failed to update driver: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrDriverNotFound
	}

	r.invalidateDriverCache(ctx, id.Hex())

	return nil
}

func (r *driverRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrDriverNotFound
	}

	r.invalidateDriverCache(ctx, id.Hex())

	return nil
}

func (r *driverRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count drivers: %w", err)
	}
	return count, nil
}

// Cache operations
func (r *driverRepository) cacheDriver(ctx context.Context, driver *models.Driver) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("driver:%s", driver.ID.Hex())
		r.cache.Set(ctx, cacheKey, driver, utils.DriverCacheTTL)
	}
}

func (r *driverRepository) getDriverFromCache(ctx context.Context, driverID string) *models.Driver {
	if r.cache == nil {
		return nil
	}

	cacheKey := fmt.Sprintf("driver:%s", driverID)
	var driver models.Driver
	if err := r.cache.Get(ctx, cacheKey, &driver); err != nil {
		return nil
	}

	return &driver
}

func (r *driverRepository) invalidateDriverCache(ctx context.Context, driverID string) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("driver:%s", driverID)
		r.cache.Delete(ctx, cacheKey)
	}
}
