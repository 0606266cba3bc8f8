package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/service"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/response"
)

// JointTypeHandler serves the joint-type and capacity-rule endpoints.
type JointTypeHandler struct {
	jointTypeSvc service.JointTypeService
}

// NewJointTypeHandler creates a JointTypeHandler.
func NewJointTypeHandler(jointTypeSvc service.JointTypeService) *JointTypeHandler {
	return &JointTypeHandler{jointTypeSvc: jointTypeSvc}
}

// ListJointTypes returns every joint type.
// GET /api/joint-types
func (h *JointTypeHandler) ListJointTypes(c *gin.Context) {
	types, err := h.jointTypeSvc.List(c.Request.Context())
	if err != nil {
		h.handleJointTypeError(c, err)
		return
	}

	response.OK(c, types)
}

// CreateJointType creates a joint type, optionally with inline capacity rules.
// POST /api/joint-types
func (h *JointTypeHandler) CreateJointType(c *gin.Context) {
	var req dto.CreateJointTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	jt, err := h.jointTypeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleJointTypeError(c, err)
		return
	}

	response.Created(c, jt)
}

// UpdateJointType updates a joint type; a supplied capacities array replaces
// the rule set wholesale.
// PUT /api/joint-types/:id
func (h *JointTypeHandler) UpdateJointType(c *gin.Context) {
	var req dto.UpdateJointTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	jt, err := h.jointTypeSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleJointTypeError(c, err)
		return
	}

	response.OK(c, jt)
}

// DeleteJointType removes a joint type and its capacity rules.
// DELETE /api/joint-types/:id
func (h *JointTypeHandler) DeleteJointType(c *gin.Context) {
	if err := h.jointTypeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleJointTypeError(c, err)
		return
	}

	response.OKMessage(c, "Joint type deleted")
}

// ── capacity rules ──

// ListCapacities returns every capacity rule.
// GET /api/joint-types/capacities
func (h *JointTypeHandler) ListCapacities(c *gin.Context) {
	caps, err := h.jointTypeSvc.ListCapacities(c.Request.Context())
	if err != nil {
		h.handleJointTypeError(c, err)
		return
	}

	response.OK(c, caps)
}

// CreateCapacity adds a capacity rule.
// POST /api/joint-types/capacities
func (h *JointTypeHandler) CreateCapacity(c *gin.Context) {
	var req dto.CreateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rule, err := h.jointTypeSvc.CreateCapacity(c.Request.Context(), &req)
	if err != nil {
		h.handleJointTypeError(c, err)
		return
	}

	response.Created(c, rule)
}

// UpdateCapacity updates a capacity rule.
// PUT /api/joint-types/capacities/:id
func (h *JointTypeHandler) UpdateCapacity(c *gin.Context) {
	var req dto.UpdateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rule, err := h.jointTypeSvc.UpdateCapacity(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleJointTypeError(c, err)
		return
	}

	response.OK(c, rule)
}

// DeleteCapacity removes a capacity rule.
// DELETE /api/joint-types/capacities/:id
func (h *JointTypeHandler) DeleteCapacity(c *gin.Context) {
	if err := h.jointTypeSvc.DeleteCapacity(c.Request.Context(), c.Param("id")); err != nil {
		h.handleJointTypeError(c, err)
		return
	}

	response.OKMessage(c, "Capacity deleted")
}

// SlotsWithStatus returns every time slot with capacity and open/full/closed
// status for a joint type, governorate, and date.
// GET /api/joint-types/:id/capacities/with-slots?governorate=...&date=...
func (h *JointTypeHandler) SlotsWithStatus(c *gin.Context) {
	governorate := c.Query("governorate")
	if governorate == "" {
		response.BadRequest(c, "Governorate is required")
		return
	}
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "Date is required")
		return
	}

	req := dto.SlotWithStatusRequest{Governorate: governorate, Date: date}
	slots, err := h.jointTypeSvc.SlotsWithStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleJointTypeError(c, err)
		return
	}

	response.OK(c, slots)
}

// handleJointTypeError maps joint-type business errors to HTTP responses.
func (h *JointTypeHandler) handleJointTypeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrJointTypeNotFound):
		response.NotFound(c, "Joint type not found")
	case errors.Is(err, service.ErrCapacityNotFound):
		response.NotFound(c, "Capacity not found")
	case errors.Is(err, service.ErrCapacityDuplicate),
		errors.Is(err, service.ErrCapacityFieldsMissing):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
