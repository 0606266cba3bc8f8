package dto

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	HospitalID  string `json:"hospital_id" binding:"required"`
	Governorate string `json:"governorate" binding:"required"`
}

// LoginRequest is the body of POST /api/users/login.
// Doctors authenticate by phone number and hospital; there is no password.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	HospitalID  string `json:"hospital_id" binding:"required"`
}

// UpdateUserRequest is the body of PUT /api/users/:id. Only set fields change.
type UpdateUserRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	HospitalID  *string `json:"hospital_id"`
	Governorate *string `json:"governorate"`
	Status      *string `json:"status"`
}

// UpdateUserStatusRequest is the body of PATCH /api/users/:id/status.
type UpdateUserStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
}
