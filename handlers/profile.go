package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	profileRepo "localserve/database/repository/profile"
	"localserve/models"
	"localserve/services/profile"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileHandler serves the Profile Plus API.
type ProfileHandler struct {
	Service    profile.ProfileService
	StatusRepo profileRepo.StatusRepository
	Logger     *zap.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profile.ProfileService, statusRepo profileRepo.StatusRepository, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{Service: svc, StatusRepo: statusRepo, Logger: logger}
}

// Root handles GET /api/.
func (h *ProfileHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Profile Plus API - Ready to manage your profiles!"})
}

// Health handles GET /api/health.
func (h *ProfileHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
}

// CreateStatusCheck handles POST /api/status.
func (h *ProfileHandler) CreateStatusCheck(c *gin.Context) {
	var input struct {
		ClientName string `json:"client_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	check := &models.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: input.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.StatusRepo.Create(check); err != nil {
		h.Logger.Error("Failed to create status check", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, check)
}

// ListStatusChecks handles GET /api/status.
func (h *ProfileHandler) ListStatusChecks(c *gin.Context) {
	checks, err := h.StatusRepo.GetAll()
	if err != nil {
		h.Logger.Error("Failed to list status checks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}

// CreateProfile handles POST /api/profiles.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var input models.UserProfileCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prof, err := h.Service.CreateProfile(input)
	if errors.Is(err, profile.ErrDuplicateEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.Logger.Error("Failed to create profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// ListProfiles handles GET /api/profiles.
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.Service.ListProfiles()
	if err != nil {
		h.Logger.Error("Failed to list profiles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfile handles GET /api/profiles/:id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id := c.Param("id")
	prof, err := h.Service.GetProfile(id)
	if errors.Is(err, profileRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		h.Logger.Error("Failed to fetch profile", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// UpdateProfile handles PUT /api/profiles/:id.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id := c.Param("id")

	var update models.UserProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prof, err := h.Service.UpdateProfile(id, update)
	switch {
	case errors.Is(err, profileRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	case errors.Is(err, profile.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.Logger.Error("Failed to update profile", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// DeleteProfile handles DELETE /api/profiles/:id.
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id := c.Param("id")
	err := h.Service.DeleteProfile(id)
	if errors.Is(err, profileRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	if err != nil {
		h.Logger.Error("Failed to delete profile", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}

// UploadImage handles POST /api/profiles/:id/image.
func (h *ProfileHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	if fileHeader.Size > profile.MaxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": profile.ErrImageTooLarge.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, profile.MaxImageSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	encoded, err := h.Service.AttachImage(id, fileHeader.Header.Get("Content-Type"), data)
	switch {
	case errors.Is(err, profile.ErrNotAnImage), errors.Is(err, profile.ErrImageTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, profileRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	case err != nil:
		h.Logger.Error("Failed to attach image", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_image": encoded})
}
