package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"glowspa/models"
)

// memSessionStore is an in-memory SessionStore for exercising the wizard
// without Redis.
type memSessionStore struct {
	sessions  map[string]*models.WizardSession
	customers map[string]*models.CustomerDetails
	locks     map[string]bool
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{
		sessions:  make(map[string]*models.WizardSession),
		customers: make(map[string]*models.CustomerDetails),
		locks:     make(map[string]bool),
	}
}

func (m *memSessionStore) SaveSession(_ context.Context, session *models.WizardSession) error {
	copied := *session
	m.sessions[session.SessionID] = &copied
	return nil
}

func (m *memSessionStore) GetSession(_ context.Context, sessionID string) (*models.WizardSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (m *memSessionStore) DeleteSession(_ context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func (m *memSessionStore) SaveCustomerDetails(_ context.Context, sessionID string, details *models.CustomerDetails) error {
	copied := *details
	m.customers[sessionID] = &copied
	return nil
}

func (m *memSessionStore) GetCustomerDetails(_ context.Context, sessionID string) (*models.CustomerDetails, error) {
	details, ok := m.customers[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *details
	return &copied, nil
}

func (m *memSessionStore) ClearCustomerDetails(_ context.Context, sessionID string) error {
	delete(m.customers, sessionID)
	return nil
}

func (m *memSessionStore) AcquireSubmitLock(_ context.Context, sessionID string) (bool, error) {
	if m.locks[sessionID] {
		return false, nil
	}
	m.locks[sessionID] = true
	return true, nil
}

func (m *memSessionStore) ReleaseSubmitLock(_ context.Context, sessionID string) error {
	delete(m.locks, sessionID)
	return nil
}

// mockCatalog serves fixed services and room tiers.
type mockCatalog struct {
	services  map[string]*models.Service
	roomTypes []models.RoomType
}

func (m *mockCatalog) GetServiceByID(id string) (*models.Service, error) {
	svc, ok := m.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s not found", id)
	}
	copied := *svc
	return &copied, nil
}

func (m *mockCatalog) ListRoomTypes() ([]models.RoomType, error) {
	return m.roomTypes, nil
}

// mockAppointments records writes and counts Create calls.
type mockAppointments struct {
	created     []*models.Appointment
	createCalls int
}

func (m *mockAppointments) Create(appt *models.Appointment) error {
	m.createCalls++
	copied := *appt
	m.created = append(m.created, &copied)
	return nil
}

func (m *mockAppointments) MarkPaid(id string) (*models.Appointment, error) {
	for _, appt := range m.created {
		if appt.ID == id {
			appt.PaymentStatus = models.PaymentStatusPaid
			copied := *appt
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

// mockGateway issues a fixed order ID and verifies against a toggle.
type mockGateway struct {
	orderID    string
	orderCalls int
	failVerify bool
}

var errBadSignature = errors.New("signature mismatch")

func (m *mockGateway) CreateOrder(_ context.Context, _ int64, _, _ string) (string, error) {
	m.orderCalls++
	return m.orderID, nil
}

func (m *mockGateway) VerifySignature(_, _, _ string) error {
	if m.failVerify {
		return errBadSignature
	}
	return nil
}

// hookRecorder counts confirmation fan-outs.
type hookRecorder struct {
	confirmed []*models.Appointment
}

func (h *hookRecorder) BookingConfirmed(_ context.Context, _ string, appt *models.Appointment) {
	h.confirmed = append(h.confirmed, appt)
}

type testHarness struct {
	svc     *DefaultWizardService
	store   *memSessionStore
	appts   *mockAppointments
	gateway *mockGateway
	hooks   *hookRecorder
	now     time.Time
}

func newTestHarness() *testHarness {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	store := newMemSessionStore()
	appts := &mockAppointments{}
	gateway := &mockGateway{orderID: "order_test_123"}
	hooks := &hookRecorder{}
	svc := &DefaultWizardService{
		Store: store,
		Catalog: &mockCatalog{
			services: map[string]*models.Service{
				"svc-massage": massageService(),
				"svc-facial":  facialService(),
			},
			roomTypes: testRoomTypes,
		},
		Appointments: appts,
		Gateway:      gateway,
		Hooks:        hooks,
		Currency:     "INR",
		Now:          func() time.Time { return now },
	}
	return &testHarness{svc: svc, store: store, appts: appts, gateway: gateway, hooks: hooks, now: now}
}

func (h *testHarness) futureTime() string {
	return h.now.Add(48 * time.Hour).Format(time.RFC3339)
}

var customerActor = Actor{
	ID: "user-1", Name: "Asha", Email: "asha@example.com", Phone: "9000000001",
	Role: "customer",
}

var receptionistActor = Actor{
	ID: "user-2", Name: "Front Desk", Email: "desk@example.com", Phone: "9000000002",
	Role: "staff", SubRole: "receptionist",
}

// advance drives a session to the summary step and returns the latest response.
func (h *testHarness) advanceToSummary(t *testing.T, actor Actor, serviceID string) *models.WizardResponse {
	t.Helper()
	ctx := context.Background()

	resp, err := h.svc.StartSession(ctx, actor)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	resp, err = h.svc.SelectService(ctx, resp.SessionID, resp.Revision, serviceID)
	if err != nil {
		t.Fatalf("SelectService: %v", err)
	}
	duration := 45
	if serviceID == "svc-massage" {
		duration = 60
	}
	resp, err = h.svc.SelectSchedule(ctx, resp.SessionID, resp.Revision, duration, h.futureTime())
	if err != nil {
		t.Fatalf("SelectSchedule: %v", err)
	}
	if resp.Step == models.StepRoom {
		resp, err = h.svc.SelectRoom(ctx, resp.SessionID, resp.Revision, "Gold")
		if err != nil {
			t.Fatalf("SelectRoom: %v", err)
		}
	}
	if resp.Step == models.StepCustomer {
		resp, err = h.svc.SetCustomerDetails(ctx, resp.SessionID, resp.Revision, models.CustomerDetails{
			Name: "Walk In", Phone: "9111111111",
		})
		if err != nil {
			t.Fatalf("SetCustomerDetails: %v", err)
		}
	}
	if resp.Step != models.StepSummary {
		t.Fatalf("expected summary step, got %q", resp.Step)
	}
	return resp
}

func TestCustomerFacialFlowSkipsRoomAndCustomerSteps(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	resp, err := h.svc.StartSession(ctx, customerActor)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if resp.Step != models.StepServices || resp.Revision != 1 {
		t.Fatalf("new session = (%q, rev %d), want (services, rev 1)", resp.Step, resp.Revision)
	}

	resp, err = h.svc.SelectService(ctx, resp.SessionID, resp.Revision, "svc-facial")
	if err != nil {
		t.Fatalf("SelectService: %v", err)
	}
	if resp.Step != models.StepDateTime {
		t.Fatalf("after service selection step = %q, want datetime-selection", resp.Step)
	}
	if resp.RoomRequired || resp.CustomerStep {
		t.Errorf("facial for a customer should need neither room nor customer step")
	}

	resp, err = h.svc.SelectSchedule(ctx, resp.SessionID, resp.Revision, 45, h.futureTime())
	if err != nil {
		t.Fatalf("SelectSchedule: %v", err)
	}
	if resp.Step != models.StepSummary {
		t.Fatalf("after schedule step = %q, want summary (room and customer skipped)", resp.Step)
	}
	if resp.TotalPrice != 1500 {
		t.Errorf("total = %v, want 1500", resp.TotalPrice)
	}

	resp, err = h.svc.ConfirmBooking(ctx, resp.SessionID, resp.Revision, models.PaymentMethodCash)
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	if resp.Step != models.StepConfirmation {
		t.Fatalf("after cash confirm step = %q, want confirmation", resp.Step)
	}
	if resp.Appointment == nil {
		t.Fatal("confirmation response carries no appointment")
	}
	appt := resp.Appointment
	if appt.RoomType != models.DefaultRoomType || appt.RoomPrice != 0 {
		t.Errorf("non-massage room = (%q, %v), want (%q, 0)", appt.RoomType, appt.RoomPrice, models.DefaultRoomType)
	}
	if appt.TotalPrice != 1500 {
		t.Errorf("appointment total = %v, want 1500", appt.TotalPrice)
	}
	if appt.Customer != nil {
		t.Error("self-service booking must not carry walk-in customer details")
	}
	if len(h.hooks.confirmed) != 1 {
		t.Errorf("confirmation hooks fired %d times, want 1", len(h.hooks.confirmed))
	}
}

func TestStaffMassageFlowVisitsRoomAndCustomerSteps(t *testing.T) {
	h := newTestHarness()
	resp := h.advanceToSummary(t, receptionistActor, "svc-massage")

	// 60 min massage at 2000 plus Gold room at 500.
	if resp.TotalPrice != 2500 {
		t.Errorf("total = %v, want 2500", resp.TotalPrice)
	}

	resp, err := h.svc.ConfirmBooking(context.Background(), resp.SessionID, resp.Revision, models.PaymentMethodCash)
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	appt := resp.Appointment
	if appt == nil {
		t.Fatal("confirmation response carries no appointment")
	}
	if appt.RoomType != "Gold" || appt.RoomPrice != 500 {
		t.Errorf("room = (%q, %v), want (Gold, 500)", appt.RoomType, appt.RoomPrice)
	}
	if appt.Customer == nil || appt.Customer.Name != "Walk In" {
		t.Errorf("staff booking should carry the walk-in customer, got %+v", appt.Customer)
	}
	if appt.BookedByID != receptionistActor.ID {
		t.Errorf("BookedByID = %q, want the staff user", appt.BookedByID)
	}
}

func TestRoomSelectionRejectedForNonMassage(t *testing.T) {
	h := newTestHarness()
	resp := h.advanceToSummary(t, customerActor, "svc-facial")

	_, err := h.svc.SelectRoom(context.Background(), resp.SessionID, resp.Revision, "Gold")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("SelectRoom on a facial flow = %v, want ErrInvalidTransition", err)
	}

	// Session must be untouched.
	after, err := h.svc.GetSession(context.Background(), resp.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if after.Step != models.StepSummary || after.Revision != resp.Revision {
		t.Errorf("rejected room selection mutated the session: step %q rev %d", after.Step, after.Revision)
	}
}

func TestStaffEmptyCustomerNameRejected(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	resp, err := h.svc.StartSession(ctx, receptionistActor)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	resp, err = h.svc.SelectService(ctx, resp.SessionID, resp.Revision, "svc-facial")
	if err != nil {
		t.Fatalf("SelectService: %v", err)
	}
	resp, err = h.svc.SelectSchedule(ctx, resp.SessionID, resp.Revision, 45, h.futureTime())
	if err != nil {
		t.Fatalf("SelectSchedule: %v", err)
	}
	if resp.Step != models.StepCustomer {
		t.Fatalf("staff flow after schedule = %q, want customer-details", resp.Step)
	}

	_, err = h.svc.SetCustomerDetails(ctx, resp.SessionID, resp.Revision, models.CustomerDetails{
		Name: "   ", Phone: "9111111111",
	})
	if !IsValidationError(err) {
		t.Fatalf("blank customer name = %v, want a validation error", err)
	}

	after, err := h.svc.GetSession(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if after.Step != models.StepCustomer || after.Revision != resp.Revision {
		t.Errorf("rejected details mutated the session: step %q rev %d", after.Step, after.Revision)
	}
}

func TestStaleRevisionRejected(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	resp, err := h.svc.StartSession(ctx, customerActor)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := h.svc.SelectService(ctx, resp.SessionID, resp.Revision, "svc-facial"); err != nil {
		t.Fatalf("SelectService: %v", err)
	}

	// Replaying the first revision must be refused.
	_, err = h.svc.SelectService(ctx, resp.SessionID, resp.Revision, "svc-massage")
	if !errors.Is(err, ErrStaleRevision) {
		t.Fatalf("replayed revision = %v, want ErrStaleRevision", err)
	}
}

func TestOnlineConfirmHoldsAtSummaryUntilVerified(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()
	resp := h.advanceToSummary(t, customerActor, "svc-massage")

	resp, err := h.svc.ConfirmBooking(ctx, resp.SessionID, resp.Revision, models.PaymentMethodOnline)
	if err != nil {
		t.Fatalf("ConfirmBooking(online): %v", err)
	}
	if resp.Step != models.StepSummary {
		t.Fatalf("online confirm moved to %q; must hold at summary until verification", resp.Step)
	}
	if resp.Appointment != nil {
		t.Error("unverified booking must not surface an appointment")
	}
	if resp.RazorpayOrderID != "order_test_123" {
		t.Errorf("order ID = %q, want order_test_123", resp.RazorpayOrderID)
	}
	if resp.Prefill == nil || resp.Prefill.Name != customerActor.Name {
		t.Errorf("self-service prefill = %+v, want the acting user's identity", resp.Prefill)
	}
	if len(h.appts.created) != 1 || h.appts.created[0].PaymentStatus != models.PaymentStatusPending {
		t.Fatalf("online confirm should persist one pending appointment, got %d", len(h.appts.created))
	}

	// A failed signature leaves everything in place.
	h.gateway.failVerify = true
	_, err = h.svc.VerifyPayment(ctx, resp.SessionID, models.PaymentVerification{
		OrderID: "order_test_123", PaymentID: "pay_1", Signature: "bogus",
	})
	if !errors.Is(err, errBadSignature) {
		t.Fatalf("failed verification = %v, want the gateway error surfaced", err)
	}
	after, err := h.svc.GetSession(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if after.Step != models.StepSummary || after.RazorpayOrderID != "order_test_123" {
		t.Errorf("failed verification mutated the session: step %q order %q", after.Step, after.RazorpayOrderID)
	}
	if len(h.hooks.confirmed) != 0 {
		t.Errorf("hooks fired on a failed verification")
	}

	// The retry with a valid signature completes the booking.
	h.gateway.failVerify = false
	resp, err = h.svc.VerifyPayment(ctx, resp.SessionID, models.PaymentVerification{
		OrderID: "order_test_123", PaymentID: "pay_1", Signature: "good",
	})
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if resp.Step != models.StepConfirmation {
		t.Fatalf("verified payment step = %q, want confirmation", resp.Step)
	}
	if resp.Appointment == nil || resp.Appointment.PaymentStatus != models.PaymentStatusPaid {
		t.Fatalf("verified appointment = %+v, want paid", resp.Appointment)
	}
	if resp.RazorpayOrderID != "" {
		t.Error("pending order must be cleared after verification")
	}
	if len(h.hooks.confirmed) != 1 {
		t.Errorf("hooks fired %d times, want 1", len(h.hooks.confirmed))
	}
}

func TestVerifyPaymentGuards(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()
	resp := h.advanceToSummary(t, customerActor, "svc-facial")

	// No pending order yet.
	_, err := h.svc.VerifyPayment(ctx, resp.SessionID, models.PaymentVerification{
		OrderID: "order_test_123", PaymentID: "pay_1", Signature: "sig",
	})
	if !errors.Is(err, ErrNoPendingPayment) {
		t.Fatalf("verify with no pending order = %v, want ErrNoPendingPayment", err)
	}

	resp, err = h.svc.ConfirmBooking(ctx, resp.SessionID, resp.Revision, models.PaymentMethodOnline)
	if err != nil {
		t.Fatalf("ConfirmBooking(online): %v", err)
	}

	_, err = h.svc.VerifyPayment(ctx, resp.SessionID, models.PaymentVerification{
		OrderID: "order_someone_elses", PaymentID: "pay_1", Signature: "sig",
	})
	if !errors.Is(err, ErrPaymentMismatch) {
		t.Fatalf("verify with a foreign order = %v, want ErrPaymentMismatch", err)
	}
}

func TestConfirmBookingDoubleSubmit(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()
	resp := h.advanceToSummary(t, customerActor, "svc-facial")

	// A concurrent submission holds the lock.
	if ok, _ := h.store.AcquireSubmitLock(ctx, resp.SessionID); !ok {
		t.Fatal("test setup: could not take the submit lock")
	}
	_, err := h.svc.ConfirmBooking(ctx, resp.SessionID, resp.Revision, models.PaymentMethodCash)
	if !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("confirm under a held lock = %v, want ErrSubmitInFlight", err)
	}
	if h.appts.createCalls != 0 {
		t.Fatalf("locked-out confirm created %d appointments, want 0", h.appts.createCalls)
	}
	if err := h.store.ReleaseSubmitLock(ctx, resp.SessionID); err != nil {
		t.Fatalf("ReleaseSubmitLock: %v", err)
	}

	// First confirm wins; replaying the same revision afterwards is refused.
	if _, err := h.svc.ConfirmBooking(ctx, resp.SessionID, resp.Revision, models.PaymentMethodCash); err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	_, err = h.svc.ConfirmBooking(ctx, resp.SessionID, resp.Revision, models.PaymentMethodCash)
	if !errors.Is(err, ErrStaleRevision) {
		t.Fatalf("replayed confirm = %v, want ErrStaleRevision", err)
	}
	if h.appts.createCalls != 1 {
		t.Fatalf("createCalls = %d, want exactly 1", h.appts.createCalls)
	}
}

func TestCashConfirmDropsPendingPaymentOrder(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()
	resp := h.advanceToSummary(t, customerActor, "svc-facial")

	// Start an online payment, then abandon it and switch to cash.
	resp, err := h.svc.ConfirmBooking(ctx, resp.SessionID, resp.Revision, models.PaymentMethodOnline)
	if err != nil {
		t.Fatalf("ConfirmBooking(online): %v", err)
	}
	if resp.RazorpayOrderID == "" {
		t.Fatal("online confirm should attach a payment order")
	}
	resp, err = h.svc.ConfirmBooking(ctx, resp.SessionID, resp.Revision, models.PaymentMethodCash)
	if err != nil {
		t.Fatalf("ConfirmBooking(cash): %v", err)
	}
	if resp.Step != models.StepConfirmation {
		t.Fatalf("cash confirm step = %q, want confirmation", resp.Step)
	}
	if resp.RazorpayOrderID != "" {
		t.Errorf("cash confirm left the pending order %q attached", resp.RazorpayOrderID)
	}
	if len(h.hooks.confirmed) != 1 {
		t.Fatalf("hooks fired %d times, want 1", len(h.hooks.confirmed))
	}
	cashAppt := resp.Appointment

	// The abandoned order's verification callback must no longer land.
	_, err = h.svc.VerifyPayment(ctx, resp.SessionID, models.PaymentVerification{
		OrderID: "order_test_123", PaymentID: "pay_late", Signature: "good",
	})
	if !errors.Is(err, ErrNoPendingPayment) {
		t.Fatalf("stale verify after cash switch = %v, want ErrNoPendingPayment", err)
	}

	after, err := h.svc.GetSession(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if after.Appointment == nil || after.Appointment.ID != cashAppt.ID {
		t.Errorf("stale verify replaced the cash appointment: %+v", after.Appointment)
	}
	if len(h.hooks.confirmed) != 1 {
		t.Errorf("stale verify fired hooks again: %d", len(h.hooks.confirmed))
	}
	// The orphaned online appointment stays pending, never paid.
	for _, appt := range h.appts.created {
		if appt.PaymentMethod == models.PaymentMethodOnline && appt.PaymentStatus != models.PaymentStatusPending {
			t.Errorf("orphaned online appointment = %q, want pending", appt.PaymentStatus)
		}
	}
}

func TestBackKeepsSelections(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()
	resp := h.advanceToSummary(t, customerActor, "svc-massage")

	resp, err := h.svc.Back(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("Back: %v", err)
	}
	if resp.Step != models.StepRoom {
		t.Fatalf("back from summary = %q, want room-selection", resp.Step)
	}
	// Room selection survives, so the total still includes it.
	if resp.TotalPrice != 2500 {
		t.Errorf("total after back = %v, want 2500 (selections kept)", resp.TotalPrice)
	}

	session, err := h.store.GetSession(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if session.Selection.Service == nil || session.Selection.PricingOption == nil || session.Selection.RoomType != "Gold" {
		t.Errorf("back dropped selections: %+v", session.Selection)
	}
}

func TestSelectServiceClearsDownstreamChoices(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()
	resp := h.advanceToSummary(t, customerActor, "svc-massage")

	// Walk back to the services step, then pick a different service.
	for resp.Step != models.StepServices {
		var err error
		resp, err = h.svc.Back(ctx, resp.SessionID)
		if err != nil {
			t.Fatalf("Back: %v", err)
		}
	}
	resp, err := h.svc.SelectService(ctx, resp.SessionID, resp.Revision, "svc-facial")
	if err != nil {
		t.Fatalf("SelectService: %v", err)
	}

	session, err := h.store.GetSession(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if session.Selection.PricingOption != nil || session.Selection.DateTime != "" || session.Selection.RoomType != "" {
		t.Errorf("changing service must clear downstream choices: %+v", session.Selection)
	}
	if resp.TotalPrice != 0 {
		t.Errorf("total after service change = %v, want 0", resp.TotalPrice)
	}
}

func TestScheduleGuards(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	resp, err := h.svc.StartSession(ctx, customerActor)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	resp, err = h.svc.SelectService(ctx, resp.SessionID, resp.Revision, "svc-facial")
	if err != nil {
		t.Fatalf("SelectService: %v", err)
	}

	// A duration not in the service's price list.
	if _, err := h.svc.SelectSchedule(ctx, resp.SessionID, resp.Revision, 15, h.futureTime()); !IsValidationError(err) {
		t.Errorf("unknown duration = %v, want a validation error", err)
	}
	// A time in the past.
	past := h.now.Add(-time.Hour).Format(time.RFC3339)
	if _, err := h.svc.SelectSchedule(ctx, resp.SessionID, resp.Revision, 45, past); !IsValidationError(err) {
		t.Errorf("past time = %v, want a validation error", err)
	}
	// Garbage timestamp.
	if _, err := h.svc.SelectSchedule(ctx, resp.SessionID, resp.Revision, 45, "tomorrow-ish"); !IsValidationError(err) {
		t.Errorf("unparseable time = %v, want a validation error", err)
	}
}

func TestResetClearsEverything(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()
	resp := h.advanceToSummary(t, receptionistActor, "svc-massage")

	resp, err := h.svc.ConfirmBooking(ctx, resp.SessionID, resp.Revision, models.PaymentMethodCash)
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	if resp.Step != models.StepConfirmation {
		t.Fatalf("step = %q, want confirmation", resp.Step)
	}

	resp, err = h.svc.Reset(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if resp.Step != models.StepServices {
		t.Errorf("step after reset = %q, want services", resp.Step)
	}
	if resp.TotalPrice != 0 || resp.Appointment != nil {
		t.Errorf("reset left booking state behind: total %v appointment %+v", resp.TotalPrice, resp.Appointment)
	}

	session, err := h.store.GetSession(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if session.Selection.Service != nil || session.Selection.CustomerDetails != nil {
		t.Errorf("reset kept selections: %+v", session.Selection)
	}
	if details, _ := h.store.GetCustomerDetails(ctx, resp.SessionID); details != nil {
		t.Error("reset must clear the mirrored customer details")
	}
}

func TestGetSessionRestoresMirroredCustomerDetails(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()
	resp := h.advanceToSummary(t, receptionistActor, "svc-facial")

	// Simulate a reload that lost the in-session copy but not the mirror.
	session, err := h.store.GetSession(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	session.Selection.CustomerDetails = nil
	if err := h.store.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	if _, err := h.svc.GetSession(ctx, resp.SessionID); err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	restored, err := h.store.GetSession(ctx, resp.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if restored.Selection.CustomerDetails == nil || restored.Selection.CustomerDetails.Name != "Walk In" {
		t.Errorf("mirror not restored: %+v", restored.Selection.CustomerDetails)
	}
}

func TestStaffPrefillUsesWalkInCustomer(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()
	resp := h.advanceToSummary(t, receptionistActor, "svc-facial")

	resp, err := h.svc.ConfirmBooking(ctx, resp.SessionID, resp.Revision, models.PaymentMethodOnline)
	if err != nil {
		t.Fatalf("ConfirmBooking(online): %v", err)
	}
	if resp.Prefill == nil {
		t.Fatal("online confirm must carry a payment prefill")
	}
	if resp.Prefill.Name != "Walk In" || resp.Prefill.Contact != "9111111111" {
		t.Errorf("staff prefill = %+v, want the walk-in customer's identity", resp.Prefill)
	}
}

func TestCancelSessionDropsState(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()
	resp := h.advanceToSummary(t, receptionistActor, "svc-facial")

	if err := h.svc.CancelSession(ctx, resp.SessionID); err != nil {
		t.Fatalf("CancelSession: %v", err)
	}
	if _, err := h.svc.GetSession(ctx, resp.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("cancelled session lookup = %v, want ErrSessionNotFound", err)
	}
	if details, _ := h.store.GetCustomerDetails(ctx, resp.SessionID); details != nil {
		t.Error("cancel must clear the mirrored customer details")
	}
}
