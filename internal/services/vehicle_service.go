package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vrms/internal/models"
	"vrms/internal/repositories/interfaces"
	"vrms/internal/validators"
	"vrms/internal/views"
	"vrms/pkg/logger"
)

type VehicleService interface {
	ListVehicles(ctx context.Context, search, status, vehicleType string) ([]*models.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*models.Vehicle, error)
	CreateVehicle(ctx context.Context, req *validators.VehicleCreateRequest) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, req *validators.VehicleUpdateRequest) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

type vehicleService struct {
	vehicleRepo interfaces.VehicleRepository
	driverRepo  interfaces.DriverRepository
	logger      *logger.Logger
}

func NewVehicleService(vehicleRepo interfaces.VehicleRepository, driverRepo interfaces.DriverRepository, logger *logger.Logger) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		driverRepo:  driverRepo,
		logger:      logger,
	}
}

func (s *vehicleService) ListVehicles(ctx context.Context, search, status, vehicleType string) ([]*models.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := populateOwners(ctx, s.driverRepo, vehicles); err != nil {
		return nil, err
	}

	return views.FilterVehicles(vehicles, search, status, vehicleType), nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicleID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := populateOwners(ctx, s.driverRepo, []*models.Vehicle{vehicle}); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req *validators.VehicleCreateRequest) (*models.Vehicle, error) {
	if errs := validators.ValidateVehicleCreate(req); len(errs) > 0 {
		return nil, errs
	}

	ownerID, err := primitive.ObjectIDFromHex(req.Owner)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	owner, err := s.driverRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, models.ErrDriverNotFound) {
			return nil, models.ErrOwnerNotFound
		}
		return nil, err
	}

	// Uniqueness pre-check; the unique index backs this up under races
	existing, err := s.vehicleRepo.GetByRegistrationNumber(ctx, req.RegistrationNumber)
	if err != nil && !errors.Is(err, models.ErrVehicleNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateRegistration
	}

	status := models.VehicleStatusActive
	if req.Status != "" {
		status = models.VehicleStatus(req.Status)
	}

	registrationDate := time.Now()
	if t := req.RegistrationDate.TimePtr(); t != nil {
		registrationDate = *t
	}

	vehicle := &models.Vehicle{
		RegistrationNumber: req.RegistrationNumber,
		OwnerID:            ownerID,
		VehicleType:        models.VehicleType(req.VehicleType),
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year.IntPtr(),
		RegistrationDate:   registrationDate,
		RegistrationExpiry: req.RegistrationExpiry.TimePtr(),
		TaxExpiry:          req.TaxExpiry.TimePtr(),
		Insurance:          insuranceFromRequest(req.Insurance),
		Status:             status,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	vehicle.Owner = owner

	s.logger.WithField("vehicle_id", vehicle.ID.Hex()).
		WithField("owner_id", ownerID.Hex()).
		Info("vehicle registered")

	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id string, req *validators.VehicleUpdateRequest) (*models.Vehicle, error) {
	vehicleID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	if errs := validators.ValidateVehicleUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	updates := map[string]interface{}{}
	if req.RegistrationNumber != nil {
		existing, err := s.vehicleRepo.GetByRegistrationNumber(ctx, *req.RegistrationNumber)
		if err != nil && !errors.Is(err, models.ErrVehicleNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != vehicleID {
			return nil, models.ErrDuplicateRegistration
		}
		updates["registrationNumber"] = *req.RegistrationNumber
	}
	if req.Owner != nil {
		ownerID, err := primitive.ObjectIDFromHex(*req.Owner)
		if err != nil {
			return nil, models.ErrInvalidID
		}
		if _, err := s.driverRepo.GetByID(ctx, ownerID); err != nil {
			if errors.Is(err, models.ErrDriverNotFound) {
				return nil, models.ErrOwnerNotFound
			}
			return nil, err
		}
		updates["owner"] = ownerID
	}
	if req.VehicleType != nil {
		updates["vehicleType"] = *req.VehicleType
	}
	if req.Make != nil {
		updates["make"] = *req.Make
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if year := req.Year.IntPtr(); year != nil {
		updates["year"] = *year
	}
	if t := req.RegistrationDate.TimePtr(); t != nil {
		updates["registrationDate"] = *t
	}
	if t := req.RegistrationExpiry.TimePtr(); t != nil {
		updates["registrationExpiry"] = *t
	}
	if t := req.TaxExpiry.TimePtr(); t != nil {
		updates["taxExpiry"] = *t
	}
	if req.Insurance != nil {
		updates["insurance"] = insuranceFromRequest(req.Insurance)
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if err := s.vehicleRepo.Update(ctx, vehicleID, updates); err != nil {
		return nil, err
	}

	return s.GetVehicle(ctx, id)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id string) error {
	vehicleID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrInvalidID
	}

	if err := s.vehicleRepo.Delete(ctx, vehicleID); err != nil {
		return err
	}

	s.logger.WithField("vehicle_id", vehicleID.Hex()).Info("vehicle deleted")

	return nil
}

// populateOwners attaches the owning driver to each vehicle in one batch
// lookup. Vehicles whose owner no longer exists keep a nil Owner rather
// than failing the read.
func populateOwners(ctx context.Context, driverRepo interfaces.DriverRepository, vehicles []*models.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}

	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	for _, vehicle := range vehicles {
		if vehicle.OwnerID.IsZero() || seen[vehicle.OwnerID] {
			continue
		}
		seen[vehicle.OwnerID] = true
		ids = append(ids, vehicle.OwnerID)
	}
	if len(ids) == 0 {
		return nil
	}

	drivers, err := driverRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]*models.Driver, len(drivers))
	for _, driver := range drivers {
		byID[driver.ID] = driver
	}

	for _, vehicle := range vehicles {
		vehicle.Owner = byID[vehicle.OwnerID]
	}

	return nil
}

func insuranceFromRequest(req *validators.InsuranceRequest) *models.Insurance {
	if req == nil {
		return nil
	}
	return &models.Insurance{
		Company:      req.Company,
		PolicyNumber: req.PolicyNumber,
		Expiry:       req.Expiry.TimePtr(),
	}
}
