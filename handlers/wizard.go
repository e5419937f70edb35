package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	userRepo "glowspa/database/repository/user"
	"glowspa/middleware"
	"glowspa/models"
	"glowspa/services/payment"
	"glowspa/services/wizard"
)

// BookingWizardHandler exposes the wizard state machine over HTTP. Every
// endpoint returns the same WizardResponse envelope so clients always render
// from the authoritative server state.
type BookingWizardHandler struct {
	Wizard wizard.WizardService
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

func NewBookingWizardHandler(svc wizard.WizardService, users userRepo.UserRepository, logger *zap.Logger) *BookingWizardHandler {
	return &BookingWizardHandler{Wizard: svc, Users: users, Logger: logger}
}

// actorFromContext builds the wizard actor from JWT claims, enriched with the
// stored profile when available.
func (h *BookingWizardHandler) actorFromContext(c *gin.Context) wizard.Actor {
	actor := wizard.Actor{
		ID:      c.GetString(middleware.CtxUserID),
		Email:   c.GetString(middleware.CtxEmail),
		Role:    c.GetString(middleware.CtxRole),
		SubRole: c.GetString(middleware.CtxSubRole),
	}
	if u, err := h.Users.GetByID(actor.ID); err == nil {
		actor.Name = u.Name
		actor.Phone = u.Phone
		if actor.Email == "" {
			actor.Email = u.Email
		}
	}
	return actor
}

// StartSession opens a new wizard session at the services step.
func (h *BookingWizardHandler) StartSession(c *gin.Context) {
	resp, err := h.Wizard.StartSession(c.Request.Context(), h.actorFromContext(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession reloads an existing session (e.g. after a page refresh).
func (h *BookingWizardHandler) GetSession(c *gin.Context) {
	resp, err := h.Wizard.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SelectService records the chosen service.
func (h *BookingWizardHandler) SelectService(c *gin.Context) {
	var input struct {
		Revision  int64  `json:"revision"`
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Wizard.SelectService(c.Request.Context(), c.Param("sessionID"), input.Revision, input.ServiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SelectSchedule records the duration and appointment time.
func (h *BookingWizardHandler) SelectSchedule(c *gin.Context) {
	var input struct {
		Revision        int64  `json:"revision"`
		DurationMinutes int    `json:"durationMinutes" binding:"required"`
		DateTime        string `json:"dateTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Wizard.SelectSchedule(c.Request.Context(), c.Param("sessionID"), input.Revision, input.DurationMinutes, input.DateTime)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SelectRoom records the room tier for massage bookings.
func (h *BookingWizardHandler) SelectRoom(c *gin.Context) {
	var input struct {
		Revision int64  `json:"revision"`
		RoomType string `json:"roomType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Wizard.SelectRoom(c.Request.Context(), c.Param("sessionID"), input.Revision, input.RoomType)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SetCustomerDetails records walk-in customer details on staff bookings.
func (h *BookingWizardHandler) SetCustomerDetails(c *gin.Context) {
	var input struct {
		Revision int64                  `json:"revision"`
		Customer models.CustomerDetails `json:"customer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Wizard.SetCustomerDetails(c.Request.Context(), c.Param("sessionID"), input.Revision, input.Customer)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Back steps one step backwards in the flow.
func (h *BookingWizardHandler) Back(c *gin.Context) {
	resp, err := h.Wizard.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmBooking submits the booking from the summary step.
func (h *BookingWizardHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		Revision      int64  `json:"revision"`
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Wizard.ConfirmBooking(c.Request.Context(), c.Param("sessionID"), input.Revision, input.PaymentMethod)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyPayment validates the payment widget callback server-side.
func (h *BookingWizardHandler) VerifyPayment(c *gin.Context) {
	var input models.PaymentVerification
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Wizard.VerifyPayment(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Reset returns the session to the services step ("Book Another Service").
func (h *BookingWizardHandler) Reset(c *gin.Context) {
	resp, err := h.Wizard.Reset(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelSession drops an abandoned session.
func (h *BookingWizardHandler) CancelSession(c *gin.Context) {
	if err := h.Wizard.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// respondError maps wizard errors onto the HTTP taxonomy: guard failures are
// 400s tied to a field, concurrency conflicts are 409s, everything else is a
// surfaced failure with state left unchanged.
func (h *BookingWizardHandler) respondError(c *gin.Context, err error) {
	var ve *wizard.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrStaleRevision),
		errors.Is(err, wizard.ErrSubmitInFlight),
		errors.Is(err, wizard.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrNoPendingPayment),
		errors.Is(err, wizard.ErrPaymentMismatch),
		errors.Is(err, payment.ErrInvalidSignature):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("wizard operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking operation failed", "details": err.Error()})
	}
}
