package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"policyhub/internal/errors"
	"policyhub/internal/model"
	"policyhub/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		he := errors.NewHTTPError(http.StatusBadRequest, "invalid registration data", err.Error())
		return c.JSON(he.StatusCode, he.Envelope())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "registered successfully",
		"user":    summarize(user),
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		he := errors.NewHTTPError(http.StatusBadRequest, "email and password are required", err.Error())
		return c.JSON(he.StatusCode, he.Envelope())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "logged in successfully",
		"token":   token,
		"user":    summarize(user),
	})
}

// Anonymous godoc
// @Summary Issue a guest reader token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/anonymous [post]
func (h *AuthHandler) Anonymous(c echo.Context) error {
	token, err := h.authService.Anonymous(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
	})
}

// Me godoc
// @Summary Resolve the calling identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := CurrentClaims(c)
	if !ok {
		return respondError(c, errors.ErrUnauthorized)
	}

	user, err := h.authService.Me(c.Request().Context(), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    summarize(user),
	})
}
