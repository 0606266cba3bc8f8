package dto

// StaffLoginRequest is the body of POST /api/auth/login.
type StaffLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// StaffRegisterRequest is the body of POST /api/auth/register.
type StaffRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// StaffLoginResponse carries the issued token and the staff profile.
type StaffLoginResponse struct {
	Token string       `json:"token"`
	Staff StaffProfile `json:"staff"`
}

// StaffProfile is the staff projection returned by auth endpoints.
type StaffProfile struct {
	StaffID string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}
