// Package views holds pure transformations over driver/vehicle snapshots.
// Nothing here touches the store; callers pass in whatever collection they
// hold and get a new slice back, so repeated calls with the same inputs
// always produce the same result.
package views

import (
	"strings"

	"vrms/internal/models"
)

// FilterDrivers returns the drivers whose name, license number, or contact
// number contains the trimmed query, case-insensitively. An empty or
// whitespace-only query matches everything.
func FilterDrivers(drivers []*models.Driver, query string) []*models.Driver {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		// Always an allocated slice so an empty result serializes as []
		return append(make([]*models.Driver, 0, len(drivers)), drivers...)
	}

	matched := make([]*models.Driver, 0, len(drivers))
	for _, driver := range drivers {
		if containsFold(driver.FullName, q) ||
			containsFold(driver.LicenseNumber, q) ||
			containsFold(driver.ContactNumber, q) {
			matched = append(matched, driver)
		}
	}

	return matched
}

// FilterVehicles applies the three listing predicates conjunctively: text
// match against registration/make/model, status selector, and type selector.
// The "all" sentinel (or an empty selector) disables that predicate.
func FilterVehicles(vehicles []*models.Vehicle, query, status, vehicleType string) []*models.Vehicle {
	q := strings.ToLower(strings.TrimSpace(query))

	matched := make([]*models.Vehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		if q != "" &&
			!containsFold(vehicle.RegistrationNumber, q) &&
			!containsFold(vehicle.Make, q) &&
			!containsFold(vehicle.Model, q) {
			continue
		}
		if !matchesSelector(string(vehicle.Status), status) {
			continue
		}
		if !matchesSelector(string(vehicle.VehicleType), vehicleType) {
			continue
		}
		matched = append(matched, vehicle)
	}

	return matched
}

func matchesSelector(value, selector string) bool {
	return selector == "" || selector == models.FilterAll || selector == value
}

func containsFold(value, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(value), loweredQuery)
}
