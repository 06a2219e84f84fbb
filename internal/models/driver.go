package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Driver is a licensed individual who may own zero or more vehicles.
// BSON keys match the documents written by the previous system, so an
// existing database stays readable.
type Driver struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FullName      string             `json:"fullName" bson:"fullName"`
	ContactNumber string             `json:"contactNumber" bson:"contactNumber"`
	LicenseNumber string             `json:"licenseNumber" bson:"licenseNumber"`
	Address       string             `json:"address" bson:"address"`
	DOB           *time.Time         `json:"dob,omitempty" bson:"dob,omitempty"`
	IssuedDate    *time.Time         `json:"issuedDate,omitempty" bson:"issuedDate,omitempty"`
	ExpiryDate    *time.Time         `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
