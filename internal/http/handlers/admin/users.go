package admin

import (
	"strconv"

	"github.com/flipzokart/api/internal/http/handlers/shared"
	"github.com/flipzokart/api/internal/http/response"
	"github.com/flipzokart/api/internal/models"
	"github.com/flipzokart/api/internal/repository"
	"github.com/flipzokart/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListUsers lists accounts for the admin panel.
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := shared.PaginationFromQuery(c)
	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Role:     c.Query("role"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("blocked"); raw != "" {
		blocked := raw == "true" || raw == "1"
		filter.IsBlocked = &blocked
	}

	users, total, err := h.UserService.List(filter)
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, users, response.NewPagination(page, pageSize, total))
}

// GetUser loads one account.
func (h *Handler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}
	user, svcErr := h.UserService.Get(uint(userID))
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.Success(c, user)
}

// CreateStaffRequest is the admin create-account form.
type CreateStaffRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

// CreateStaff creates a staff account.
func (h *Handler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid account details")
		return
	}

	user, err := h.UserService.CreateStaff(service.CreateStaffInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		shared.RespondServiceError(c, err)
		return
	}
	response.Created(c, "Account created", user)
}

// SetBlockedRequest toggles the block flag.
type SetBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// SetUserBlocked blocks or unblocks an account.
func (h *Handler) SetUserBlocked(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}
	var req SetBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Blocked == nil {
		response.BadRequest(c, "Blocked flag is required")
		return
	}

	user, svcErr := h.UserService.SetBlocked(uint(userID), *req.Blocked)
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.SuccessWithMessage(c, "Account updated", user)
}

// SetRoleRequest changes an account's role.
type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetUserRole changes an account's role, resetting its permissions to the
// role default.
func (h *Handler) SetUserRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Role is required")
		return
	}

	user, svcErr := h.UserService.SetRole(uint(userID), req.Role)
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.SuccessWithMessage(c, "Role updated", user)
}

// SetPermissionsRequest overrides individual permission flags.
type SetPermissionsRequest struct {
	Permissions models.Permissions `json:"permissions" binding:"required"`
}

// SetUserPermissions overrides an account's permission flags.
func (h *Handler) SetUserPermissions(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user id")
		return
	}
	var req SetPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Permissions are required")
		return
	}

	user, svcErr := h.UserService.SetPermissions(uint(userID), req.Permissions)
	if svcErr != nil {
		shared.RespondServiceError(c, svcErr)
		return
	}
	response.SuccessWithMessage(c, "Permissions updated", user)
}
