package wizard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"glowspa/models"
)

// StartSession opens a fresh wizard session for the acting user at the
// services step and stores it.
func (s *DefaultWizardService) StartSession(ctx context.Context, actor Actor) (*models.WizardResponse, error) {
	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		Step:      models.StepServices,
		Revision:  1,
		UserID:    actor.ID,
		UserName:  actor.Name,
		UserEmail: actor.Email,
		UserPhone: actor.Phone,
		Role:      actor.Role,
		SubRole:   actor.SubRole,
	}
	if err := s.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	s.logger().Info("wizard session started",
		zap.String("sessionID", session.SessionID),
		zap.String("userID", actor.ID),
		zap.String("roleClass", string(ClassifyRole(actor.Role, actor.SubRole))))
	return s.buildResponse(session)
}

// GetSession reloads a session, restoring mirrored customer details for staff
// flows so a page reload does not lose walk-in data.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.WizardResponse, error) {
	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if s.actorClass(session) == RoleStaff && session.Selection.CustomerDetails == nil {
		mirrored, err := s.Store.GetCustomerDetails(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if mirrored != nil {
			session.Selection.CustomerDetails = mirrored
			if err := s.Store.SaveSession(ctx, session); err != nil {
				return nil, err
			}
		}
	}
	return s.buildResponse(session)
}

// SelectService sets the chosen service and advances to datetime-selection.
// Downstream choices are cleared: they belong to the previous service.
func (s *DefaultWizardService) SelectService(ctx context.Context, sessionID string, revision int64, serviceID string) (*models.WizardResponse, error) {
	session, err := s.loadForUpdate(ctx, sessionID, revision)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepServices {
		return nil, ErrInvalidTransition
	}

	svc, err := s.Catalog.GetServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if len(svc.Pricing) == 0 {
		return nil, newValidationError("service", "service has no pricing options")
	}

	session.Selection.Service = svc
	session.Selection.PricingOption = nil
	session.Selection.DateTime = ""
	session.Selection.RoomType = ""
	session.Step = models.StepDateTime
	return s.commit(ctx, session)
}

// SelectSchedule records the pricing option ("duration") and appointment time,
// then advances past datetime-selection; the next step depends on the massage
// and staff predicates.
func (s *DefaultWizardService) SelectSchedule(ctx context.Context, sessionID string, revision int64, durationMinutes int, dateTime string) (*models.WizardResponse, error) {
	session, err := s.loadForUpdate(ctx, sessionID, revision)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepDateTime {
		return nil, ErrInvalidTransition
	}
	svc := session.Selection.Service
	if svc == nil {
		return nil, newValidationError("service", "no service selected")
	}

	option := findPricingOption(svc.Pricing, durationMinutes)
	if option == nil {
		return nil, newValidationError("duration", "please select a duration")
	}
	when, err := time.Parse(time.RFC3339, dateTime)
	if err != nil {
		return nil, newValidationError("dateTime", "invalid date/time format")
	}
	if when.Before(s.now()) {
		return nil, newValidationError("dateTime", "appointment time must be in the future")
	}

	session.Selection.PricingOption = option
	session.Selection.DateTime = dateTime
	next, err := NextStep(models.StepDateTime, IsMassageService(svc), s.actorClass(session))
	if err != nil {
		return nil, err
	}
	session.Step = next
	return s.commit(ctx, session)
}

// SelectRoom records the room tier. Only reachable in massage flows; other
// categories skip the step entirely and carry the default room at price 0.
func (s *DefaultWizardService) SelectRoom(ctx context.Context, sessionID string, revision int64, roomType string) (*models.WizardResponse, error) {
	session, err := s.loadForUpdate(ctx, sessionID, revision)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepRoom {
		return nil, ErrInvalidTransition
	}
	if !IsMassageService(session.Selection.Service) {
		return nil, newValidationError("roomType", "room selection is not required for this service")
	}
	if strings.TrimSpace(roomType) == "" {
		return nil, newValidationError("roomType", "please select a room type")
	}

	session.Selection.RoomType = roomType
	next, err := NextStep(models.StepRoom, true, s.actorClass(session))
	if err != nil {
		return nil, err
	}
	session.Step = next
	return s.commit(ctx, session)
}

// SetCustomerDetails records the walk-in customer's identity for staff
// bookings and mirrors it so a reload inside the flow does not lose it.
func (s *DefaultWizardService) SetCustomerDetails(ctx context.Context, sessionID string, revision int64, details models.CustomerDetails) (*models.WizardResponse, error) {
	session, err := s.loadForUpdate(ctx, sessionID, revision)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepCustomer {
		return nil, ErrInvalidTransition
	}
	if strings.TrimSpace(details.Name) == "" {
		return nil, newValidationError("name", "customer name is required")
	}
	if strings.TrimSpace(details.Phone) == "" {
		return nil, newValidationError("phone", "customer phone is required")
	}

	session.Selection.CustomerDetails = &details
	if err := s.Store.SaveCustomerDetails(ctx, sessionID, &details); err != nil {
		return nil, err
	}
	session.Step = models.StepSummary
	return s.commit(ctx, session)
}

// Back walks one step backwards along the flow's chain, never forward.
// Selections are kept so the user can revise rather than re-enter them.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardResponse, error) {
	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	prev, err := PrevStep(session.Step, IsMassageService(session.Selection.Service), s.actorClass(session))
	if err != nil {
		return nil, err
	}
	session.Step = prev
	return s.commit(ctx, session)
}

// Reset discards every selection and returns to the services step; used by
// "Book Another Service" from the confirmation screen.
func (s *DefaultWizardService) Reset(ctx context.Context, sessionID string) (*models.WizardResponse, error) {
	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Selection = models.BookingSelection{}
	session.Step = models.StepServices
	session.Appointment = nil
	session.RazorpayOrderID = ""
	session.PendingAppointmentID = ""
	if err := s.Store.ClearCustomerDetails(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.commit(ctx, session)
}

// CancelSession drops a session the user abandoned explicitly.
func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.ClearCustomerDetails(ctx, sessionID); err != nil {
		return err
	}
	return s.Store.DeleteSession(ctx, sessionID)
}

// --- helpers ---

// loadForUpdate fetches the session and rejects mutations carrying a stale
// revision, so a late-arriving request for an abandoned step cannot
// resurrect old state.
func (s *DefaultWizardService) loadForUpdate(ctx context.Context, sessionID string, revision int64) (*models.WizardSession, error) {
	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Revision != revision {
		return nil, ErrStaleRevision
	}
	return session, nil
}

// commit bumps the revision, persists the session and builds the envelope.
func (s *DefaultWizardService) commit(ctx context.Context, session *models.WizardSession) (*models.WizardResponse, error) {
	session.Revision++
	if err := s.Store.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildResponse(session)
}

func (s *DefaultWizardService) actorClass(session *models.WizardSession) RoleClass {
	return ClassifyRole(session.Role, session.SubRole)
}

// prefillFor resolves whose identity the payment widget and confirmation
// screen show: the walk-in customer for staff bookings, the user otherwise.
func (s *DefaultWizardService) prefillFor(session *models.WizardSession) *models.PaymentPrefill {
	if s.actorClass(session) == RoleStaff && session.Selection.CustomerDetails != nil {
		c := session.Selection.CustomerDetails
		return &models.PaymentPrefill{Name: c.Name, Email: c.Email, Contact: c.Phone}
	}
	return &models.PaymentPrefill{Name: session.UserName, Email: session.UserEmail, Contact: session.UserPhone}
}

func (s *DefaultWizardService) buildResponse(session *models.WizardSession) (*models.WizardResponse, error) {
	var roomTypes []models.RoomType
	if IsMassageService(session.Selection.Service) {
		var err error
		roomTypes, err = s.Catalog.ListRoomTypes()
		if err != nil {
			return nil, err
		}
	}

	resp := &models.WizardResponse{
		SessionID:    session.SessionID,
		Step:         session.Step,
		Revision:     session.Revision,
		TotalPrice:   CalculateTotalPrice(session.Selection, roomTypes),
		RoomRequired: IsMassageService(session.Selection.Service),
		CustomerStep: s.actorClass(session) == RoleStaff,
		Appointment:  session.Appointment,
	}
	if session.RazorpayOrderID != "" {
		resp.RazorpayOrderID = session.RazorpayOrderID
		resp.Prefill = s.prefillFor(session)
	}
	return resp, nil
}

func findPricingOption(options []models.PricingOption, durationMinutes int) *models.PricingOption {
	for i := range options {
		if options[i].DurationMinutes == durationMinutes {
			return &options[i]
		}
	}
	return nil
}
