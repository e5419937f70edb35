package models

// Category groups services on the storefront (e.g. "Massage", "Haircut").
type Category struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// PricingOption is one entry in a service's price list: a duration with its price.
// The storefront calls this a "duration".
type PricingOption struct {
	DurationMinutes int     `json:"durationMinutes" bson:"durationMinutes"`
	Price           float64 `json:"price" bson:"price"`
	Label           string  `json:"label,omitempty" bson:"label,omitempty"`
}

// Service is a bookable spa/salon service.
type Service struct {
	ID          string          `json:"id" bson:"_id"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description,omitempty" bson:"description,omitempty"`
	Category    Category        `json:"category" bson:"category"`
	Pricing     []PricingOption `json:"pricing" bson:"pricing"`
	ImageID     string          `json:"imageId,omitempty" bson:"imageId,omitempty"`
}
