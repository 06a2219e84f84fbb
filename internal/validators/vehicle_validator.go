package validators

// InsuranceRequest carries the optional insurance block of a vehicle payload
type InsuranceRequest struct {
	Company      string     `json:"company"`
	PolicyNumber string     `json:"policyNumber"`
	Expiry       *DateValue `json:"expiry"`
}

// VehicleCreateRequest represents the payload for registering a vehicle
type VehicleCreateRequest struct {
	RegistrationNumber string            `json:"registrationNumber" validate:"required"`
	Owner              string            `json:"owner" validate:"required,object_id"`
	VehicleType        string            `json:"vehicleType" validate:"required,oneof=Car Bike Other"`
	Make               string            `json:"make"`
	Model              string            `json:"model" validate:"required"`
	Year               *YearValue        `json:"year"`
	RegistrationDate   *DateValue        `json:"registrationDate"`
	RegistrationExpiry *DateValue        `json:"registrationExpiry"`
	TaxExpiry          *DateValue        `json:"taxExpiry"`
	Insurance          *InsuranceRequest `json:"insurance"`
	Status             string            `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// VehicleUpdateRequest represents a partial vehicle update. Fields that
// are absent from the payload are left unchanged.
type VehicleUpdateRequest struct {
	RegistrationNumber *string           `json:"registrationNumber" validate:"omitnil,min=1"`
	Owner              *string           `json:"owner" validate:"omitnil,object_id"`
	VehicleType        *string           `json:"vehicleType" validate:"omitnil,oneof=Car Bike Other"`
	Make               *string           `json:"make"`
	Model              *string           `json:"model" validate:"omitnil,min=1"`
	Year               *YearValue        `json:"year"`
	RegistrationDate   *DateValue        `json:"registrationDate"`
	RegistrationExpiry *DateValue        `json:"registrationExpiry"`
	TaxExpiry          *DateValue        `json:"taxExpiry"`
	Insurance          *InsuranceRequest `json:"insurance"`
	Status             *string           `json:"status" validate:"omitnil,oneof=active inactive suspended"`
}

func ValidateVehicleCreate(req *VehicleCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateVehicleUpdate(req *VehicleUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
