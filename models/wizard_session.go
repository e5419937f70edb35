package models

// WizardStep names one state of the booking wizard.
type WizardStep string

const (
	StepServices     WizardStep = "services"
	StepDateTime     WizardStep = "datetime-selection"
	StepRoom         WizardStep = "room-selection"
	StepCustomer     WizardStep = "customer-details"
	StepSummary      WizardStep = "summary"
	StepConfirmation WizardStep = "confirmation"
)

// Payment methods accepted on confirmation.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"
)

// BookingSelection accumulates the user's choices over the wizard flow.
type BookingSelection struct {
	Service         *Service         `json:"service,omitempty"`
	PricingOption   *PricingOption   `json:"pricingOption,omitempty"`
	DateTime        string           `json:"dateTime,omitempty"`
	RoomType        string           `json:"roomType,omitempty"`
	CustomerDetails *CustomerDetails `json:"customerDetails,omitempty"`
	PaymentMethod   string           `json:"paymentMethod,omitempty"`
}

// WizardSession holds wizard state between steps. It lives in Redis for the
// duration of one booking flow and is mutated only through wizard operations.
type WizardSession struct {
	SessionID string           `json:"sessionId"`
	Step      WizardStep       `json:"step"`
	Revision  int64            `json:"revision"`
	Selection BookingSelection `json:"selection"`

	// Acting user identity, captured at session start.
	UserID    string `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
	UserPhone string `json:"userPhone,omitempty"`
	Role      string `json:"role"`
	SubRole   string `json:"subRole,omitempty"`

	// Pending online payment, set between confirm and verification.
	RazorpayOrderID      string `json:"razorpayOrderId,omitempty"`
	PendingAppointmentID string `json:"pendingAppointmentId,omitempty"`

	// Terminal state payload; present only once the booking succeeded.
	Appointment *Appointment `json:"appointment,omitempty"`
}

// WizardResponse is the envelope returned by every wizard endpoint.
type WizardResponse struct {
	SessionID       string          `json:"sessionId"`
	Step            WizardStep      `json:"step"`
	Revision        int64           `json:"revision"`
	TotalPrice      float64         `json:"totalPrice"`
	RoomRequired    bool            `json:"roomRequired"`
	CustomerStep    bool            `json:"customerStep"`
	RazorpayOrderID string          `json:"razorpayOrderId,omitempty"`
	Prefill         *PaymentPrefill `json:"prefill,omitempty"`
	Appointment     *Appointment    `json:"appointment,omitempty"`
}
