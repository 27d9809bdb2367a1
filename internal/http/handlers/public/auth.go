package public

import (
	"github.com/flipzokart/api/internal/http/handlers/shared"
	"github.com/flipzokart/api/internal/http/response"
	"github.com/flipzokart/api/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the signup form.
type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
}

// Register creates a customer account and opens a session.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid registration details")
		return
	}

	user, err := h.AuthService.Register(service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}

	token, expiresAt, err := h.AuthService.GenerateJWT(user)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, "Registration successful", gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt,
	})
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a session token.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Login successful", gin.H{
		"user":       user,
		"token":      token,
		"expires_at": expiresAt,
	})
}

// Logout acknowledges the logout. Tokens are stateless; the client drops
// its copy.
func (h *Handler) Logout(c *gin.Context) {
	response.SuccessWithMessage(c, "Logged out", nil)
}

// ForgotPasswordRequest asks for a reset token.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ForgotPassword issues a password reset token.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email is required")
		return
	}
	if err := h.AuthService.ForgotPassword(req.Email); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Password reset initiated", nil)
}

// ResetPasswordRequest consumes a reset token.
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResetPassword sets a new password from a reset token.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Token and new password are required")
		return
	}
	if err := h.AuthService.ResetPassword(req.Token, req.Password); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Password has been reset", nil)
}

// Profile returns the caller's account.
func (h *Handler) Profile(c *gin.Context) {
	user, ok := shared.CurrentUser(c)
	if !ok {
		return
	}
	response.Success(c, user)
}

// UpdateProfileRequest is the profile edit form.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Avatar    string `json:"avatar"`
}

// UpdateProfile edits the caller's account.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid profile details")
		return
	}

	user, err := h.AuthService.UpdateProfile(userID, service.ProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Avatar:    req.Avatar,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Profile updated", user)
}

// ChangePasswordRequest is the password change form.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ChangePassword swaps the caller's password.
func (h *Handler) ChangePassword(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Current and new password are required")
		return
	}
	if err := h.AuthService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Password changed", nil)
}
