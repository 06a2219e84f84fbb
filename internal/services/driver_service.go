package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vrms/internal/models"
	"vrms/internal/repositories/interfaces"
	"vrms/internal/validators"
	"vrms/internal/views"
	"vrms/pkg/logger"
)

type DriverService interface {
	ListDrivers(ctx context.Context, search string) ([]*models.Driver, error)
	GetDriver(ctx context.Context, id string) (*models.Driver, error)
	CreateDriver(ctx context.Context, req *validators.DriverCreateRequest) (*models.Driver, error)
	UpdateDriver(ctx context.Context, id string, req *validators.DriverUpdateRequest) (*models.Driver, error)
	// DeleteDriver removes the driver and cascades to their vehicles,
	// reporting how many vehicles were removed.
	DeleteDriver(ctx context.Context, id string) (int64, error)
}

type driverService struct {
	driverRepo interfaces.DriverRepository
	cascade    CascadeService
	logger     *logger.Logger
}

func NewDriverService(driverRepo interfaces.DriverRepository, cascade CascadeService, logger *logger.Logger) DriverService {
	return &driverService{
		driverRepo: driverRepo,
		cascade:    cascade,
		logger:     logger,
	}
}

func (s *driverService) ListDrivers(ctx context.Context, search string) ([]*models.Driver, error) {
	drivers, err := s.driverRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.FilterDrivers(drivers, search), nil
}

func (s *driverService) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	driverID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	return s.driverRepo.GetByID(ctx, driverID)
}

func (s *driverService) CreateDriver(ctx context.Context, req *validators.DriverCreateRequest) (*models.Driver, error) {
	if errs := validators.ValidateDriverCreate(req); len(errs) > 0 {
		return nil, errs
	}

	// Uniqueness pre-check; the unique index backs this up under races
	existing, err := s.driverRepo.GetByLicenseNumber(ctx, req.LicenseNumber)
	if err != nil && !errors.Is(err, models.ErrDriverNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateLicense
	}

	driver := &models.Driver{
		FullName:      req.FullName,
		ContactNumber: req.ContactNumber,
		LicenseNumber: req.LicenseNumber,
		Address:       req.Address,
		DOB:           req.DOB.TimePtr(),
		IssuedDate:    req.IssuedDate.TimePtr(),
		ExpiryDate:    req.ExpiryDate.TimePtr(),
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.logger.WithField("driver_id", driver.ID.Hex()).Info("driver registered")

	return driver, nil
}

func (s *driverService) UpdateDriver(ctx context.Context, id string, req *validators.DriverUpdateRequest) (*models.Driver, error) {
	driverID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	if errs := validators.ValidateDriverUpdate(req); len(errs) > 0 {
		return nil, errs
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["fullName"] = *req.FullName
	}
	if req.ContactNumber != nil {
		updates["contactNumber"] = *req.ContactNumber
	}
	if req.LicenseNumber != nil {
		existing, err := s.driverRepo.GetByLicenseNumber(ctx, *req.LicenseNumber)
		if err != nil && !errors.Is(err, models.ErrDriverNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != driverID {
			return nil, models.ErrDuplicateLicense
		}
		updates["licenseNumber"] = *req.LicenseNumber
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if t := req.DOB.TimePtr(); t != nil {
		updates["dob"] = *t
	}
	if t := req.IssuedDate.TimePtr(); t != nil {
		updates["issuedDate"] = *t
	}
	if t := req.ExpiryDate.TimePtr(); t != nil {
		updates["expiryDate"] = *t
	}

	if err := s.driverRepo.Update(ctx, driverID, updates); err != nil {
		return nil, err
	}

	return s.driverRepo.GetByID(ctx, driverID)
}

func (s *driverService) DeleteDriver(ctx context.Context, id string) (int64, error) {
	driverID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, models.ErrInvalidID
	}

	if err := s.driverRepo.Delete(ctx, driverID); err != nil {
		return 0, err
	}

	// The driver is gone at this point; a cascade failure leaves
	// orphaned vehicles behind and must be reported distinctly.
	removed, err := s.cascade.OnDriverDeleted(ctx, driverID)
	if err != nil {
		return removed, &models.PartialCascadeError{
			DriverID: driverID,
			Removed:  removed,
			Err:      err,
		}
	}

	s.logger.WithField("driver_id", driverID.Hex()).
		WithField("vehicles_removed", removed).
		Info("driver deleted")

	return removed, nil
}
