package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"policyhub/internal/errors"
	"policyhub/internal/service"
)

// FileHandler handles registry entry endpoints.
type FileHandler struct {
	fileService     service.FileService
	activityService service.ActivityService
}

// NewFileHandler creates a new file handler.
func NewFileHandler(fileService service.FileService, activityService service.ActivityService) *FileHandler {
	return &FileHandler{
		fileService:     fileService,
		activityService: activityService,
	}
}

// UploadRequest represents a new registry entry. The file type is derived
// from which locator is present, never supplied.
type UploadRequest struct {
	OriginalName string `json:"original_name"`
	CustomName   string `json:"custom_name" validate:"required"`
	Department   string `json:"department" validate:"required"`
	FileURL      string `json:"file_url"`
	YoutubeURL   string `json:"youtube_url"`
}

// UpdateRequest represents a registry entry update.
type UpdateRequest struct {
	CustomName string `json:"custom_name"`
	Department string `json:"department"`
}

// List godoc
// @Summary List all registry entries
// @Tags files
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /files [get]
func (h *FileHandler) List(c echo.Context) error {
	files, err := h.fileService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(files),
		"files":   files,
	})
}

// ListByDepartment godoc
// @Summary List registry entries of one department
// @Tags files
// @Produce json
// @Param department path string true "Department label"
// @Success 200 {object} map[string]interface{}
// @Router /files/department/{department} [get]
func (h *FileHandler) ListByDepartment(c echo.Context) error {
	department := c.Param("department")
	files, err := h.fileService.ListByDepartment(c.Request().Context(), department)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"department": department,
		"count":      len(files),
		"files":      files,
	})
}

// Activities godoc
// @Summary List recent audit activities
// @Tags files
// @Produce json
// @Param limit query int false "Maximum records" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /files/activities [get]
func (h *FileHandler) Activities(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	activities, err := h.activityService.Recent(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"count":      len(activities),
		"activities": activities,
	})
}

// Upload godoc
// @Summary Publish a document or video link
// @Tags files
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UploadRequest true "Entry data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Router /files [post]
func (h *FileHandler) Upload(c echo.Context) error {
	var req UploadRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		he := errors.NewHTTPError(http.StatusBadRequest, "custom name and department are required", err.Error())
		return c.JSON(he.StatusCode, he.Envelope())
	}

	file, err := h.fileService.Create(c.Request().Context(), service.CreateFileInput{
		OriginalName: req.OriginalName,
		CustomName:   req.CustomName,
		Department:   req.Department,
		FileURL:      req.FileURL,
		YoutubeURL:   req.YoutubeURL,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "file uploaded successfully",
		"file":    file,
	})
}

// Update godoc
// @Summary Update a registry entry
// @Tags files
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param request body UpdateRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.Response
// @Router /files/{id} [put]
func (h *FileHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, errors.ErrFileNotFound)
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, errors.ErrMissingFields)
	}

	file, err := h.fileService.Update(c.Request().Context(), id, service.UpdateFileInput{
		CustomName: req.CustomName,
		Department: req.Department,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "file updated successfully",
		"file":    file,
	})
}

// Delete godoc
// @Summary Delete a registry entry
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.Response
// @Router /files/{id} [delete]
func (h *FileHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, errors.ErrFileNotFound)
	}

	if err := h.fileService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "file deleted successfully",
	})
}
