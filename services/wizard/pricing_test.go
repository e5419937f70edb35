package wizard

import (
	"testing"

	"glowspa/models"
)

var testRoomTypes = []models.RoomType{
	{Type: "Silver", Price: 0, Capacity: 1},
	{Type: "Gold", Price: 500, Capacity: 2},
	{Type: "Diamond", Price: 1200, Capacity: 2},
}

func massageService() *models.Service {
	return &models.Service{
		ID:       "svc-massage",
		Name:     "Swedish Massage",
		Category: models.Category{ID: "cat-massage", Name: "Massage"},
		Pricing: []models.PricingOption{
			{DurationMinutes: 30, Price: 1200},
			{DurationMinutes: 60, Price: 2000},
		},
	}
}

func facialService() *models.Service {
	return &models.Service{
		ID:       "svc-facial",
		Name:     "Classic Facial",
		Category: models.Category{ID: "cat-skincare", Name: "Skincare"},
		Pricing: []models.PricingOption{
			{DurationMinutes: 45, Price: 1500},
		},
	}
}

func TestCalculateTotalPrice(t *testing.T) {
	cases := []struct {
		name string
		sel  models.BookingSelection
		want float64
	}{
		{
			name: "no pricing option selected yet",
			sel:  models.BookingSelection{Service: facialService()},
			want: 0,
		},
		{
			name: "non-massage service is the option price alone",
			sel: models.BookingSelection{
				Service:       facialService(),
				PricingOption: &models.PricingOption{DurationMinutes: 45, Price: 1500},
			},
			want: 1500,
		},
		{
			name: "non-massage ignores a leftover room selection",
			sel: models.BookingSelection{
				Service:       facialService(),
				PricingOption: &models.PricingOption{DurationMinutes: 45, Price: 1500},
				RoomType:      "Gold",
			},
			want: 1500,
		},
		{
			name: "massage adds the selected room price",
			sel: models.BookingSelection{
				Service:       massageService(),
				PricingOption: &models.PricingOption{DurationMinutes: 60, Price: 2000},
				RoomType:      "Gold",
			},
			want: 2500,
		},
		{
			name: "massage without a room yet is the option price",
			sel: models.BookingSelection{
				Service:       massageService(),
				PricingOption: &models.PricingOption{DurationMinutes: 60, Price: 2000},
			},
			want: 2000,
		},
		{
			name: "unknown room tier contributes zero",
			sel: models.BookingSelection{
				Service:       massageService(),
				PricingOption: &models.PricingOption{DurationMinutes: 60, Price: 2000},
				RoomType:      "Platinum",
			},
			want: 2000,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateTotalPrice(tc.sel, testRoomTypes); got != tc.want {
				t.Errorf("CalculateTotalPrice = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRoomTypePrice(t *testing.T) {
	if got := RoomTypePrice(testRoomTypes, "Diamond"); got != 1200 {
		t.Errorf("RoomTypePrice(Diamond) = %v, want 1200", got)
	}
	if got := RoomTypePrice(testRoomTypes, "gold"); got != 0 {
		t.Errorf("RoomTypePrice is an exact-name lookup; got %v for lowercase name, want 0", got)
	}
	if got := RoomTypePrice(nil, "Gold"); got != 0 {
		t.Errorf("RoomTypePrice with empty catalog = %v, want 0", got)
	}
}

func TestEffectiveRoom(t *testing.T) {
	sel := models.BookingSelection{
		Service:  massageService(),
		RoomType: "Diamond",
	}
	room, price := EffectiveRoom(sel, testRoomTypes)
	if room != "Diamond" || price != 1200 {
		t.Errorf("EffectiveRoom(massage) = (%q, %v), want (Diamond, 1200)", room, price)
	}

	sel = models.BookingSelection{Service: facialService(), RoomType: "Diamond"}
	room, price = EffectiveRoom(sel, testRoomTypes)
	if room != models.DefaultRoomType || price != 0 {
		t.Errorf("EffectiveRoom(non-massage) = (%q, %v), want (%q, 0)", room, price, models.DefaultRoomType)
	}
}
