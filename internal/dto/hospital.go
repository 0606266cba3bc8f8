package dto

// CreateHospitalRequest is the body of POST /api/hospitals.
type CreateHospitalRequest struct {
	Name        string `json:"name" binding:"required"`
	Governorate string `json:"governorate" binding:"required"`
}

// UpdateHospitalRequest is the body of PUT /api/hospitals/:id.
type UpdateHospitalRequest struct {
	Name        string `json:"name" binding:"required"`
	Governorate string `json:"governorate" binding:"required"`
}
