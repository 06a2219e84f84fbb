package models

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID = errors.New("invalid id")

	ErrDriverNotFound  = errors.New("driver not found")
	ErrVehicleNotFound = errors.New("vehicle not found")

	ErrDuplicateLicense      = errors.New("a driver with this license number already exists")
	ErrDuplicateRegistration = errors.New("a vehicle with this registration number already exists")

	ErrOwnerNotFound = errors.New("owner does not reference an existing driver")
)

// PartialCascadeError reports a driver deletion whose vehicle cascade failed
// or stopped partway. The driver is gone; orphaned vehicles may remain until
// the cascade is re-run (it is idempotent).
type PartialCascadeError struct {
	DriverID primitive.ObjectID
	Removed  int64
	Err      error
}

func (e *PartialCascadeError) Error() string {
	return fmt.Sprintf("driver %s removed but vehicle cascade incomplete (%d removed): %v",
		e.DriverID.Hex(), e.Removed, e.Err)
}

func (e *PartialCascadeError) Unwrap() error {
	return e.Err
}
