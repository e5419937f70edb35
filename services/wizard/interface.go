package wizard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"glowspa/models"
)

// Actor is the authenticated user driving the wizard.
type Actor struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Role    string
	SubRole string
}

// CatalogSource is the slice of the catalog the wizard needs.
type CatalogSource interface {
	GetServiceByID(id string) (*models.Service, error)
	ListRoomTypes() ([]models.RoomType, error)
}

// AppointmentSink persists the outcome of a confirmed booking.
type AppointmentSink interface {
	Create(appt *models.Appointment) error
	MarkPaid(id string) (*models.Appointment, error)
}

// PaymentGateway creates and verifies online payment orders.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (orderID string, err error)
	VerifySignature(orderID, paymentID, signature string) error
}

// ConfirmationHooks fire after a booking lands. Both are best-effort: a
// failed push or reminder never fails the booking.
type ConfirmationHooks interface {
	BookingConfirmed(ctx context.Context, userID string, appt *models.Appointment)
}

// WizardService drives the booking wizard state machine.
type WizardService interface {
	StartSession(ctx context.Context, actor Actor) (*models.WizardResponse, error)
	GetSession(ctx context.Context, sessionID string) (*models.WizardResponse, error)
	SelectService(ctx context.Context, sessionID string, revision int64, serviceID string) (*models.WizardResponse, error)
	SelectSchedule(ctx context.Context, sessionID string, revision int64, durationMinutes int, dateTime string) (*models.WizardResponse, error)
	SelectRoom(ctx context.Context, sessionID string, revision int64, roomType string) (*models.WizardResponse, error)
	SetCustomerDetails(ctx context.Context, sessionID string, revision int64, details models.CustomerDetails) (*models.WizardResponse, error)
	Back(ctx context.Context, sessionID string) (*models.WizardResponse, error)
	ConfirmBooking(ctx context.Context, sessionID string, revision int64, paymentMethod string) (*models.WizardResponse, error)
	VerifyPayment(ctx context.Context, sessionID string, verification models.PaymentVerification) (*models.WizardResponse, error)
	Reset(ctx context.Context, sessionID string) (*models.WizardResponse, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Store        SessionStore
	Catalog      CatalogSource
	Appointments AppointmentSink
	Gateway      PaymentGateway
	Hooks        ConfirmationHooks
	Currency     string
	Logger       *zap.Logger

	// Now is swappable so date guards are deterministic under test.
	Now func() time.Time
}

func (s *DefaultWizardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultWizardService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
