package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleStatus string
type VehicleType string

const (
	VehicleStatusActive    VehicleStatus = "active"
	VehicleStatusInactive  VehicleStatus = "inactive"
	VehicleStatusSuspended VehicleStatus = "suspended"

	VehicleTypeCar   VehicleType = "Car"
	VehicleTypeBike  VehicleType = "Bike"
	VehicleTypeOther VehicleType = "Other"

	// FilterAll is the "match everything" sentinel accepted by listing
	// filters in place of a concrete status or type.
	FilterAll = "all"
)

func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusActive, VehicleStatusInactive, VehicleStatusSuspended:
		return true
	}
	return false
}

func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTypeCar, VehicleTypeBike, VehicleTypeOther:
		return true
	}
	return false
}

type Insurance struct {
	Company      string     `json:"company,omitempty" bson:"company,omitempty"`
	PolicyNumber string     `json:"policyNumber,omitempty" bson:"policyNumber,omitempty"`
	Expiry       *time.Time `json:"expiry,omitempty" bson:"expiry,omitempty"`
}

// Vehicle references its owning Driver by ID only (bson "owner"). The store
// does not cascade or validate the reference; the service layer does both.
// Owner carries the populated Driver on reads and is never persisted.
type Vehicle struct {
	ID                 primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	RegistrationNumber string             `json:"registrationNumber" bson:"registrationNumber"`
	OwnerID            primitive.ObjectID `json:"-" bson:"owner"`
	Owner              *Driver            `json:"owner,omitempty" bson:"-"`
	VehicleType        VehicleType        `json:"vehicleType" bson:"vehicleType"`
	Make               string             `json:"make,omitempty" bson:"make,omitempty"`
	Model              string             `json:"model" bson:"model"`
	Year               *int               `json:"year,omitempty" bson:"year,omitempty"`
	RegistrationDate   time.Time          `json:"registrationDate" bson:"registrationDate"`
	RegistrationExpiry *time.Time         `json:"registrationExpiry,omitempty" bson:"registrationExpiry,omitempty"`
	Insurance          *Insurance         `json:"insurance,omitempty" bson:"insurance,omitempty"`
	TaxExpiry          *time.Time         `json:"taxExpiry,omitempty" bson:"taxExpiry,omitempty"`
	Status             VehicleStatus      `json:"status" bson:"status"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}
