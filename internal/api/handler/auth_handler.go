package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/service"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/jwt"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/response"
)

// AuthHandler serves the staff authentication endpoints. These speak the
// {success, ...} envelope the admin dashboard checks.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login authenticates a staff member and issues a JWT.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorEnvelope(c, http.StatusBadRequest, "بيانات الدخول غير صحيحة")
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrStaffCredentials) {
			response.ErrorEnvelope(c, http.StatusBadRequest, "بيانات الدخول غير صحيحة")
			return
		}
		response.ErrorEnvelope(c, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}

	response.OKEnvelope(c, resp, fmt.Sprintf("مرحباً %s", resp.Staff.Name))
}

// Register creates a staff account.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.StaffRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorEnvelope(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrStaffEmailTaken) {
			response.ErrorEnvelope(c, http.StatusBadRequest, "المستخدم موجود بالفعل")
			return
		}
		response.ErrorEnvelope(c, http.StatusInternalServerError, "خطأ في الخادم")
		return
	}

	response.CreatedEnvelope(c, profile, "تم إنشاء الحساب بنجاح")
}

// Logout revokes the caller's token.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, "Unauthorized")
		return
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OKMessage(c, "Logged out")
}
