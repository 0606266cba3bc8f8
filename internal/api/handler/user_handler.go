package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/service"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/response"
)

// UserHandler serves the doctor-account endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register creates a pending doctor account.
// POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.CreatedEnvelope(c, user, "تم إرسال طلب التسجيل، في انتظار موافقة الإدارة.")
}

// Login authenticates a doctor by phone number and hospital.
// POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		var rejected *service.AccountRejectedError
		switch {
		case errors.Is(err, service.ErrDoctorCredentials):
			response.BadRequest(c, "Invalid credentials")
		case errors.Is(err, service.ErrAccountPending):
			response.Forbidden(c, "حسابك قيد المراجعة من الإدارة. سيتم إشعارك عند الموافقة.")
		case errors.As(err, &rejected):
			if rejected.Reason != "" {
				response.Forbidden(c, fmt.Sprintf("تم رفض طلبك: %s", rejected.Reason))
			} else {
				response.Forbidden(c, "تم رفض طلبك من الإدارة.")
			}
		default:
			response.InternalError(c)
		}
		return
	}

	response.OKEnvelope(c, user, fmt.Sprintf("مرحباً %s من %s", user.Name, user.Governorate))
}

// ListUsers returns every doctor account.
// GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, users)
}

// ListPendingUsers returns registrations awaiting review.
// GET /api/users/pending
func (h *UserHandler) ListPendingUsers(c *gin.Context) {
	users, err := h.userSvc.ListPending(c.Request.Context())
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, users)
}

// UpdateUserStatus is the staff approve/reject action on a registration.
// PATCH /api/users/:id/status
func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	var req dto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userSvc.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// UpdateUser updates a doctor account; only supplied fields change.
// PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// DeleteUser removes a doctor account.
// DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, err := h.userSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, response.Envelope{Success: true, Data: user, Message: "User deleted"})
}

// handleUserError maps doctor-account business errors to HTTP responses.
func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, service.ErrHospitalNotFound):
		response.BadRequest(c, "Hospital not found")
	case errors.Is(err, service.ErrPhoneTaken):
		response.BadRequest(c, "User already exists with this phone number")
	case errors.Is(err, service.ErrInvalidGovernorate):
		response.BadRequest(c, "Invalid governorate")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, "Invalid status")
	default:
		response.InternalError(c)
	}
}
