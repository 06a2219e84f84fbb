package validators

// DriverCreateRequest represents the payload for registering a driver
type DriverCreateRequest struct {
	FullName      string     `json:"fullName" validate:"required,min=2,max=100"`
	ContactNumber string     `json:"contactNumber" validate:"required"`
	LicenseNumber string     `json:"licenseNumber" validate:"required"`
	Address       string     `json:"address" validate:"required"`
	DOB           *DateValue `json:"dob"`
	IssuedDate    *DateValue `json:"issuedDate"`
	ExpiryDate    *DateValue `json:"expiryDate"`
}

// DriverUpdateRequest represents a partial driver update. Fields that
// are absent from the payload are left unchanged.
type DriverUpdateRequest struct {
	FullName      *string    `json:"fullName" validate:"omitnil,min=2,max=100"`
	ContactNumber *string    `json:"contactNumber" validate:"omitnil,min=1"`
	LicenseNumber *string    `json:"licenseNumber" validate:"omitnil,min=1"`
	Address       *string    `json:"address" validate:"omitnil,min=1"`
	DOB           *DateValue `json:"dob"`
	IssuedDate    *DateValue `json:"issuedDate"`
	ExpiryDate    *DateValue `json:"expiryDate"`
}

func ValidateDriverCreate(req *DriverCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateDriverUpdate(req *DriverUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
