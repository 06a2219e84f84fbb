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

type vehicleRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewVehicleRepository(db *mongo.Database, cache CacheService) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection(utils.VehiclesCollection),
		cache:      cache,
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateRegistration
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	r.cacheVehicle(ctx, vehicle)

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	// Try cache first
	if vehicle := r.getVehicleFromCache(ctx, id.Hex()); vehicle != nil {
		return vehicle, nil
	}

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	r.cacheVehicle(ctx, &vehicle)

	return &vehicle, nil
}

func (r *vehicleRepository) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"registrationNumber": registrationNumber}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle by registration number: %w", err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *vehicleRepository) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"owner": ownerID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles by owner: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateRegistration
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrVehicleNotFound
	}

	r.invalidateVehicleCache(ctx, id.Hex())

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrVehicleNotFound
	}

	r.invalidateVehicleCache(ctx, id.Hex())

	return nil
}

// DeleteByOwnerID removes every vehicle owned by the given driver and
// reports how many were removed. Removing zero vehicles is not an error.
func (r *vehicleRepository) DeleteByOwnerID(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	vehicles, err := r.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	result, err := r.collection.DeleteMany(ctx, bson.M{"owner": ownerID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete vehicles by owner: %w", err)
	}

	for _, vehicle := range vehicles {
		r.invalidateVehicleCache(ctx, vehicle.ID.Hex())
	}

	return result.DeletedCount, nil
}

func (r *vehicleRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return count, nil
}

// Cache operations

// cachedVehicle re-exposes the owner reference, which the vehicle model
// hides from API responses in favor of the populated owner document.
type cachedVehicle struct {
	models.Vehicle
	OwnerID primitive.ObjectID `json:"ownerId"`
}

func (r *vehicleRepository) cacheVehicle(ctx context.Context, vehicle *models.Vehicle) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("vehicle:%s", vehicle.ID.Hex())
		r.cache.Set(ctx, cacheKey, cachedVehicle{Vehicle: *vehicle, OwnerID: vehicle.OwnerID}, utils.VehicleCacheTTL)
	}
}

func (r *vehicleRepository) getVehicleFromCache(ctx context.Context, vehicleID string) *models.Vehicle {
	if r.cache == nil {
		return nil
	}

	cacheKey := fmt.Sprintf("vehicle:%s", vehicleID)
	var cached cachedVehicle
	if err := r.cache.Get(ctx, cacheKey, &cached); err != nil {
		return nil
	}

	vehicle := cached.Vehicle
	vehicle.OwnerID = cached.OwnerID
	return &vehicle
}

func (r *vehicleRepository) invalidateVehicleCache(ctx context.Context, vehicleID string) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("vehicle:%s", vehicleID)
		r.cache.Delete(ctx, cacheKey)
	}
}
