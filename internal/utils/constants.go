package utils

import "time"

// Application constants
const (
	AppName    = "vrms"
	AppVersion = "1.0.0"

	// Collections
	DriversCollection  = "drivers"
	VehiclesCollection = "vehicles"

	// Renewal alerts
	DefaultRenewalHorizonDays = 30

	// Cache
	DriverCacheTTL  = 15 * time.Minute
	VehicleCacheTTL = 15 * time.Minute
)

// Error messages
const (
	ErrInternalServer  = "internal server error"
	ErrInvalidID       = "invalid id"
	ErrNothingToExport = "no records to export"
)
