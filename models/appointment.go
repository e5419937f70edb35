package models

import "time"

// Payment status values on an appointment.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// CustomerDetails identifies the person being served when staff books a walk-in.
type CustomerDetails struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
}

// AppointmentRequest is the payload built by the wizard on confirmation.
type AppointmentRequest struct {
	ServiceID       string           `json:"serviceId"`
	ServiceName     string           `json:"serviceName"`
	CategoryName    string           `json:"categoryName"`
	DurationMinutes int              `json:"durationMinutes"`
	ServicePrice    float64          `json:"servicePrice"`
	RoomType        string           `json:"roomType"`
	RoomPrice       float64          `json:"roomPrice"`
	TotalPrice      float64          `json:"totalPrice"`
	DateTime        time.Time        `json:"dateTime"`
	PaymentMethod   string           `json:"paymentMethod"`
	BookedByID      string           `json:"bookedById"`
	Customer        *CustomerDetails `json:"customer,omitempty"`
}

// Appointment is the persisted booking record.
type Appointment struct {
	ID              string           `json:"id" bson:"_id"`
	ServiceID       string           `json:"serviceId" bson:"serviceId"`
	ServiceName     string           `json:"serviceName" bson:"serviceName"`
	CategoryName    string           `json:"categoryName" bson:"categoryName"`
	DurationMinutes int              `json:"durationMinutes" bson:"durationMinutes"`
	ServicePrice    float64          `json:"servicePrice" bson:"servicePrice"`
	RoomType        string           `json:"roomType" bson:"roomType"`
	RoomPrice       float64          `json:"roomPrice" bson:"roomPrice"`
	TotalPrice      float64          `json:"totalPrice" bson:"totalPrice"`
	DateTime        time.Time        `json:"dateTime" bson:"dateTime"`
	PaymentMethod   string           `json:"paymentMethod" bson:"paymentMethod"`
	PaymentStatus   string           `json:"paymentStatus" bson:"paymentStatus"`
	RazorpayOrderID string           `json:"razorpayOrderId,omitempty" bson:"razorpayOrderId,omitempty"`
	BookedByID      string           `json:"bookedById" bson:"bookedById"`
	Customer        *CustomerDetails `json:"customer,omitempty" bson:"customer,omitempty"`
	CreatedAt       time.Time        `json:"createdAt" bson:"createdAt"`
}
