package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"policyhub/internal/errors"
	"policyhub/internal/model"
	"policyhub/internal/service"
)

// SuperAdminHandler handles admin account management endpoints.
type SuperAdminHandler struct {
	adminService service.AdminService
}

// NewSuperAdminHandler creates a new super admin handler.
func NewSuperAdminHandler(adminService service.AdminService) *SuperAdminHandler {
	return &SuperAdminHandler{adminService: adminService}
}

// CreateAdminRequest represents a new privileged account.
type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

// ListAdmins godoc
// @Summary List admin accounts
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.Response
// @Router /superadmin/admins [get]
func (h *SuperAdminHandler) ListAdmins(c echo.Context) error {
	admins, err := h.adminService.ListAdmins(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	summaries := make([]UserSummary, 0, len(admins))
	for i := range admins {
		summaries = append(summaries, summarize(&admins[i]))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(summaries),
		"admins":  summaries,
	})
}

// CreateAdmin godoc
// @Summary Create an admin account
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAdminRequest true "Admin data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Router /superadmin/admins [post]
func (h *SuperAdminHandler) CreateAdmin(c echo.Context) error {
	var req CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		he := errors.NewHTTPError(http.StatusBadRequest, "email and password are required", err.Error())
		return c.JSON(he.StatusCode, he.Envelope())
	}

	admin, err := h.adminService.CreateAdmin(c.Request().Context(), req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "admin created successfully",
		"admin":   summarize(admin),
	})
}

// DeleteAdmin godoc
// @Summary Delete an admin account
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /superadmin/admins/{id} [delete]
func (h *SuperAdminHandler) DeleteAdmin(c echo.Context) error {
	claims, ok := CurrentClaims(c)
	if !ok {
		return respondError(c, errors.ErrUnauthorized)
	}
	callerID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return respondError(c, errors.ErrTokenInvalid)
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, errors.ErrUserNotFound)
	}

	if err := h.adminService.DeleteAdmin(c.Request().Context(), callerID, targetID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "admin deleted successfully",
	})
}
