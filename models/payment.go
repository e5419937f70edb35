package models

// PaymentVerification is the callback payload handed back by the payment
// widget. It is untrusted input until the signature check passes server-side.
type PaymentVerification struct {
	OrderID   string `json:"razorpayOrderId" binding:"required"`
	PaymentID string `json:"razorpayPaymentId" binding:"required"`
	Signature string `json:"razorpaySignature" binding:"required"`
}

// PaymentPrefill carries the identity shown in the payment widget. Staff
// bookings prefill the walk-in customer's details, not the staff member's.
type PaymentPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}
