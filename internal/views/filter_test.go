package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vrms/internal/models"
)

func TestFilterDrivers(t *testing.T) {
	drivers := []*models.Driver{
		{FullName: "Jane Doe", LicenseNumber: "DL-1001", ContactNumber: "555-0001"},
		{FullName: "John Smith", LicenseNumber: "DL-2002", ContactNumber: "555-0002"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query matches everything", "", []string{"Jane Doe", "John Smith"}},
		{"whitespace-only query matches everything", "   ", []string{"Jane Doe", "John Smith"}},
		{"lowercase query matches mixed-case name", "jane", []string{"Jane Doe"}},
		{"uppercase query matches mixed-case name", "JANE", []string{"Jane Doe"}},
		{"query is trimmed before matching", "  jane  ", []string{"Jane Doe"}},
		{"license number substring matches", "2002", []string{"John Smith"}},
		{"contact number substring matches", "555-0001", []string{"Jane Doe"}},
		{"no match yields empty result", "nobody", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterDrivers(drivers, tt.query)

			names := make([]string, 0, len(got))
			for _, d := range got {
				names = append(names, d.FullName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilterVehicles(t *testing.T) {
	vehicles := []*models.Vehicle{
		{RegistrationNumber: "ABC1", Make: "Toyota", Model: "Corolla", Status: models.VehicleStatusActive, VehicleType: models.VehicleTypeCar},
		{RegistrationNumber: "XYZ2", Make: "Honda", Model: "CB500", Status: models.VehicleStatusInactive, VehicleType: models.VehicleTypeBike},
		{RegistrationNumber: "DEF3", Make: "Toyota", Model: "Hilux", Status: models.VehicleStatusSuspended, VehicleType: models.VehicleTypeCar},
	}

	tests := []struct {
		name        string
		query       string
		status      string
		vehicleType string
		want        []string
	}{
		{"no predicates returns everything", "", "", "", []string{"ABC1", "XYZ2", "DEF3"}},
		{"all sentinels return everything", "", "all", "all", []string{"ABC1", "XYZ2", "DEF3"}},
		{"query matches registration number", "abc", "", "", []string{"ABC1"}},
		{"query matches make", "toyota", "", "", []string{"ABC1", "DEF3"}},
		{"query matches model", "cb500", "", "", []string{"XYZ2"}},
		{"status selector narrows", "", "inactive", "", []string{"XYZ2"}},
		{"type selector narrows", "", "", "Car", []string{"ABC1", "DEF3"}},
		{"predicates are conjunctive", "toyota", "active", "Car", []string{"ABC1"}},
		{"conjunction can be empty", "xyz", "active", "", []string{}},
		{"status all with concrete type", "", "all", "Bike", []string{"XYZ2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVehicles(vehicles, tt.query, tt.status, tt.vehicleType)

			regs := make([]string, 0, len(got))
			for _, v := range got {
				regs = append(regs, v.RegistrationNumber)
			}
			assert.Equal(t, tt.want, regs)
		})
	}
}

func TestFilterDriversNilInputYieldsEmptySlice(t *testing.T) {
	got := FilterDrivers(nil, "")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = FilterDrivers(nil, "jane")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterVehiclesNilInputYieldsEmptySlice(t *testing.T) {
	got := FilterVehicles(nil, "", "", "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDriversReturnsCopy(t *testing.T) {
	drivers := []*models.Driver{{FullName: "Jane Doe"}}

	got := FilterDrivers(drivers, "")
	got[0] = nil

	assert.NotNil(t, drivers[0])
}
