package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofre/internal/models"
	"cofre/internal/pagination"
	"cofre/internal/services"
)

// AdminHandler handles user administration. Routes are guarded by RequireAdmin.
type AdminHandler struct {
	adminService services.AdminServicer
	auditService services.AuditServicer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService services.AdminServicer, auditService services.AuditServicer) *AdminHandler {
	return &AdminHandler{adminService: adminService, auditService: auditService}
}

// SetRoleRequest represents the payload for changing a user's role.
type SetRoleRequest struct {
	Role models.Role `json:"role" binding:"required,role"`
}

// ListUsers returns a page of users with global stats.
// @Summary     List users
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} services.UserListing "Users and stats"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not an administrator"
// @Router      /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	listing, err := h.adminService.ListUsers(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// ToggleActive enables or disables a user.
// @Summary     Toggle user activation
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} models.User "Updated user"
// @Failure     400 {object} ErrorResponse "Own account"
// @Failure     403 {object} ErrorResponse "Not an administrator"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /admin/users/{id}/toggle-active [patch]
func (h *AdminHandler) ToggleActive(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.adminService.ToggleActive(c.Request.Context(), actorID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID, services.AuditToggleActive, "user", id, c.ClientIP(),
		map[string]any{"is_active": user.IsActive})

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SetRole changes a user's role.
// @Summary     Change user role
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string         true "User ID"
// @Param       request body SetRoleRequest true "New role"
// @Success     200 {object} models.User "Updated user"
// @Failure     400 {object} ErrorResponse "Invalid role or own account"
// @Failure     403 {object} ErrorResponse "Not an administrator"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /admin/users/{id}/role [patch]
func (h *AdminHandler) SetRole(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	user, err := h.adminService.SetRole(c.Request.Context(), actorID, id, req.Role)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID, services.AuditChangeRole, "user", id, c.ClientIP(),
		map[string]any{"role": req.Role})

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes a user and everything they own.
// @Summary     Delete user
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} map[string]interface{} "Deleted"
// @Failure     400 {object} ErrorResponse "Own account"
// @Failure     403 {object} ErrorResponse "Not an administrator"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), actorID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID, services.AuditDeleteUser, "user", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// GetDashboard returns the administrative overview.
// @Summary     Admin dashboard
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.AdminDashboard "Overview"
// @Failure     403 {object} ErrorResponse "Not an administrator"
// @Router      /admin/dashboard [get]
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	dash, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": dash})
}
