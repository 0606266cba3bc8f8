package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/service"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/response"
)

// HospitalHandler serves the hospital directory endpoints.
type HospitalHandler struct {
	hospitalSvc service.HospitalService
}

// NewHospitalHandler creates a HospitalHandler.
func NewHospitalHandler(hospitalSvc service.HospitalService) *HospitalHandler {
	return &HospitalHandler{hospitalSvc: hospitalSvc}
}

// ListHospitals returns every hospital.
// GET /api/hospitals
func (h *HospitalHandler) ListHospitals(c *gin.Context) {
	hospitals, err := h.hospitalSvc.List(c.Request.Context())
	if err != nil {
		h.handleHospitalError(c, err)
		return
	}

	response.OK(c, hospitals)
}

// CreateHospital adds a hospital to the directory.
// POST /api/hospitals
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req dto.CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hospital, err := h.hospitalSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleHospitalError(c, err)
		return
	}

	response.Created(c, hospital)
}

// UpdateHospital updates a hospital.
// PUT /api/hospitals/:id
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	var req dto.UpdateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hospital, err := h.hospitalSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleHospitalError(c, err)
		return
	}

	response.OK(c, hospital)
}

// DeleteHospital removes a hospital.
// DELETE /api/hospitals/:id
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	if err := h.hospitalSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleHospitalError(c, err)
		return
	}

	response.OKMessage(c, "Hospital deleted")
}

// handleHospitalError maps hospital business errors to HTTP responses.
func (h *HospitalHandler) handleHospitalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHospitalNotFound):
		response.NotFound(c, "Hospital not found")
	case errors.Is(err, service.ErrInvalidGovernorate):
		response.BadRequest(c, "Invalid governorate")
	default:
		response.InternalError(c)
	}
}
