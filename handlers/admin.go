package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"glowspa/models"
	"glowspa/services/catalog"
	"glowspa/services/storage"
)

// AdminHandler exposes staff-only catalog management.
type AdminHandler struct {
	Catalog catalog.CatalogService
	Storage storage.StorageService
	Logger  *zap.Logger
}

func NewAdminHandler(svc catalog.CatalogService, store storage.StorageService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Catalog: svc, Storage: store, Logger: logger}
}

// CreateService adds a service to the catalog.
func (h *AdminHandler) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if svc.Name == "" || len(svc.Pricing) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service needs a name and at least one pricing option"})
		return
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if err := h.Catalog.CreateService(&svc); err != nil {
		h.Logger.Error("failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": svc})
}

// UpdateService replaces a catalog service.
func (h *AdminHandler) UpdateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")
	if err := h.Catalog.UpdateService(&svc); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// DeleteService removes a catalog service.
func (h *AdminHandler) DeleteService(c *gin.Context) {
	if err := h.Catalog.DeleteService(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UpsertRoomType creates or replaces a room tier.
func (h *AdminHandler) UpsertRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if rt.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room type name is required"})
		return
	}
	if err := h.Catalog.UpsertRoomType(&rt); err != nil {
		h.Logger.Error("failed to upsert room type", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save room type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomType": rt})
}

// DeleteRoomType removes a room tier.
func (h *AdminHandler) DeleteRoomType(c *gin.Context) {
	if err := h.Catalog.DeleteRoomType(c.Param("type")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetServiceImageURL returns the delivery URL for a service's image.
func (h *AdminHandler) GetServiceImageURL(c *gin.Context) {
	svc, err := h.Catalog.GetServiceByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	if svc.ImageID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "service has no image"})
		return
	}
	url, err := h.Storage.GetDownloadURL(svc.ImageID)
	if err != nil {
		h.Logger.Error("failed to resolve image URL", zap.String("serviceID", svc.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve image URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// UploadServiceImage stores a service image and attaches it to the service.
func (h *AdminHandler) UploadServiceImage(c *gin.Context) {
	serviceID := c.Param("id")
	svc, err := h.Catalog.GetServiceByID(serviceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, "services")
	if err != nil {
		h.Logger.Error("service image upload failed", zap.String("serviceID", serviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
		return
	}

	if svc.ImageID != "" && svc.ImageID != publicID {
		if err := h.Storage.DeleteFile(c.Request.Context(), svc.ImageID); err != nil {
			h.Logger.Warn("failed to remove replaced service image",
				zap.String("serviceID", serviceID), zap.String("imageID", svc.ImageID), zap.Error(err))
		}
	}

	svc.ImageID = publicID
	if err := h.Catalog.UpdateService(svc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attach image to service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}
