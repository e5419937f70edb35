package models

import "time"

// User represents a platform user. Staff accounts carry a sub-role
// (receptionist, manager or admin); customers have role "customer".
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Phone        string    `json:"phone" bson:"phone"`
	Role         string    `json:"role" bson:"role"`
	SubRole      string    `json:"subRole,omitempty" bson:"subRole,omitempty"`
	FCMToken     string    `json:"-" bson:"fcmToken,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
