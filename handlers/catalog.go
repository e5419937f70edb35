package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appointmentRepo "glowspa/database/repository/appointment"
	"glowspa/middleware"
	"glowspa/services/catalog"
)

// CatalogHandler serves the public catalog and appointment reads.
type CatalogHandler struct {
	Catalog      catalog.CatalogService
	Appointments appointmentRepo.AppointmentRepository
	Logger       *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, appts appointmentRepo.AppointmentRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: svc, Appointments: appts, Logger: logger}
}

// ListServices returns the bookable service catalog.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListServices()
	if err != nil {
		h.Logger.Error("failed to load service catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListRoomTypes returns the room tier catalog.
func (h *CatalogHandler) ListRoomTypes(c *gin.Context) {
	roomTypes, err := h.Catalog.ListRoomTypes()
	if err != nil {
		h.Logger.Error("failed to load room-type catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load room types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomTypes": roomTypes})
}

// ListMyAppointments returns the caller's bookings, newest first.
func (h *CatalogHandler) ListMyAppointments(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	appts, err := h.Appointments.ListByUser(userID)
	if err != nil {
		h.Logger.Error("failed to list appointments", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListUpcomingAppointments returns the salon's schedule for a staff view.
// Defaults to the coming week when no range is given.
func (h *CatalogHandler) ListUpcomingAppointments(c *gin.Context) {
	from := time.Now()
	to := from.AddDate(0, 0, 7)
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' timestamp"})
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' timestamp"})
			return
		}
		to = parsed
	}

	appts, err := h.Appointments.ListUpcoming(from, to)
	if err != nil {
		h.Logger.Error("failed to list schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// GetAppointment returns one appointment by ID.
func (h *CatalogHandler) GetAppointment(c *gin.Context) {
	appt, err := h.Appointments.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}
