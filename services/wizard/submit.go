package wizard

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"glowspa/models"
)

// ConfirmBooking finalizes the wizard from the summary step. Cash bookings
// land directly in confirmation; online bookings create a payment order and
// hold at summary until VerifyPayment succeeds. A second call while one is in
// flight is a no-op, and no failure path mutates the session.
func (s *DefaultWizardService) ConfirmBooking(ctx context.Context, sessionID string, revision int64, paymentMethod string) (*models.WizardResponse, error) {
	ok, err := s.Store.AcquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSubmitInFlight
	}
	defer func() {
		if err := s.Store.ReleaseSubmitLock(ctx, sessionID); err != nil {
			s.logger().Warn("failed to release submit lock", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}()

	session, err := s.loadForUpdate(ctx, sessionID, revision)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSummary {
		return nil, ErrInvalidTransition
	}
	if paymentMethod != models.PaymentMethodCash && paymentMethod != models.PaymentMethodOnline {
		return nil, newValidationError("paymentMethod", "payment method must be cash or online")
	}
	if err := s.validateForConfirm(session); err != nil {
		return nil, err
	}

	roomTypes, err := s.Catalog.ListRoomTypes()
	if err != nil {
		return nil, err
	}
	roomLabel, roomPrice := EffectiveRoom(session.Selection, roomTypes)
	total := CalculateTotalPrice(session.Selection, roomTypes)
	when, _ := time.Parse(time.RFC3339, session.Selection.DateTime)

	sel := session.Selection
	appt := &models.Appointment{
		ID:              uuid.New().String(),
		ServiceID:       sel.Service.ID,
		ServiceName:     sel.Service.Name,
		CategoryName:    sel.Service.Category.Name,
		DurationMinutes: sel.PricingOption.DurationMinutes,
		ServicePrice:    sel.PricingOption.Price,
		RoomType:        roomLabel,
		RoomPrice:       roomPrice,
		TotalPrice:      total,
		DateTime:        when,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   models.PaymentStatusPending,
		BookedByID:      session.UserID,
	}
	if s.actorClass(session) == RoleStaff {
		appt.Customer = sel.CustomerDetails
	}

	if paymentMethod == models.PaymentMethodOnline {
		// Amount goes to the gateway in minor units of the computed total.
		amountMinor := int64(math.Round(total * 100))
		orderID, err := s.Gateway.CreateOrder(ctx, amountMinor, s.Currency, session.SessionID)
		if err != nil {
			return nil, err
		}
		appt.RazorpayOrderID = orderID
		if err := s.Appointments.Create(appt); err != nil {
			return nil, err
		}

		session.Selection.PaymentMethod = paymentMethod
		session.RazorpayOrderID = orderID
		session.PendingAppointmentID = appt.ID
		s.logger().Info("payment order created",
			zap.String("sessionID", sessionID),
			zap.String("orderID", orderID),
			zap.Int64("amountMinor", amountMinor))
		return s.commit(ctx, session)
	}

	if err := s.Appointments.Create(appt); err != nil {
		return nil, err
	}
	session.Selection.PaymentMethod = paymentMethod
	// A cash confirm supersedes any earlier online attempt; drop the pending
	// order so a late verification callback on it cannot land.
	session.RazorpayOrderID = ""
	session.PendingAppointmentID = ""
	session.Appointment = appt
	session.Step = models.StepConfirmation
	resp, err := s.commit(ctx, session)
	if err != nil {
		return nil, err
	}
	s.fireHooks(ctx, session.UserID, appt)
	return resp, nil
}

// VerifyPayment checks the payment widget's callback against the gateway.
// The callback is untrusted input: only a valid signature moves the session
// to confirmation; any failure leaves it at summary with the order intact.
func (s *DefaultWizardService) VerifyPayment(ctx context.Context, sessionID string, verification models.PaymentVerification) (*models.WizardResponse, error) {
	ok, err := s.Store.AcquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSubmitInFlight
	}
	defer func() {
		if err := s.Store.ReleaseSubmitLock(ctx, sessionID); err != nil {
			s.logger().Warn("failed to release submit lock", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}()

	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.RazorpayOrderID == "" || session.PendingAppointmentID == "" {
		return nil, ErrNoPendingPayment
	}
	if verification.OrderID != session.RazorpayOrderID {
		return nil, ErrPaymentMismatch
	}

	if err := s.Gateway.VerifySignature(verification.OrderID, verification.PaymentID, verification.Signature); err != nil {
		s.logger().Warn("payment verification failed",
			zap.String("sessionID", sessionID),
			zap.String("orderID", verification.OrderID),
			zap.Error(err))
		return nil, err
	}

	appt, err := s.Appointments.MarkPaid(session.PendingAppointmentID)
	if err != nil {
		return nil, err
	}
	session.Appointment = appt
	session.RazorpayOrderID = ""
	session.PendingAppointmentID = ""
	session.Step = models.StepConfirmation
	resp, err := s.commit(ctx, session)
	if err != nil {
		return nil, err
	}
	s.fireHooks(ctx, session.UserID, appt)
	return resp, nil
}

// validateForConfirm re-checks every guard the earlier steps enforced; the
// summary screen may be stale relative to the stored session.
func (s *DefaultWizardService) validateForConfirm(session *models.WizardSession) error {
	sel := session.Selection
	if sel.Service == nil {
		return newValidationError("service", "no service selected")
	}
	if sel.PricingOption == nil {
		return newValidationError("duration", "please select a duration")
	}
	if sel.DateTime == "" {
		return newValidationError("dateTime", "please select a date and time")
	}
	when, err := time.Parse(time.RFC3339, sel.DateTime)
	if err != nil || when.Before(s.now()) {
		return newValidationError("dateTime", "appointment time must be in the future")
	}
	if IsMassageService(sel.Service) && sel.RoomType == "" {
		return newValidationError("roomType", "please select a room type")
	}
	if s.actorClass(session) == RoleStaff {
		if sel.CustomerDetails == nil ||
			strings.TrimSpace(sel.CustomerDetails.Name) == "" ||
			strings.TrimSpace(sel.CustomerDetails.Phone) == "" {
			return newValidationError("customerDetails", "customer name and phone are required")
		}
	}
	return nil
}

func (s *DefaultWizardService) fireHooks(ctx context.Context, userID string, appt *models.Appointment) {
	if s.Hooks != nil {
		s.Hooks.BookingConfirmed(ctx, userID, appt)
	}
}
