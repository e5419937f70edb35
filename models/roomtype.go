package models

// RoomType is a named room tier with its price and capacity.
// Room selection applies only to massage bookings.
type RoomType struct {
	Type     string  `json:"type" bson:"_id"`
	Price    float64 `json:"price" bson:"price"`
	Capacity int     `json:"capacity" bson:"capacity"`
}

// DefaultRoomType is the effective room for non-massage bookings; it adds no price.
const DefaultRoomType = "Silver"
