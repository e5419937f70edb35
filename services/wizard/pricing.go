package wizard

import "glowspa/models"

// RoomTypePrice looks up the price for a room tier by exact type name.
// A missing match contributes 0 rather than failing; the catalog is small and
// a dangling name means a data gap, not a broken booking.
func RoomTypePrice(roomTypes []models.RoomType, typeName string) float64 {
	for _, rt := range roomTypes {
		if rt.Type == typeName {
			return rt.Price
		}
	}
	return 0
}

// CalculateTotalPrice derives the booking total from the current selection.
// It is pure: recomputed on every read, never cached on the session.
func CalculateTotalPrice(sel models.BookingSelection, roomTypes []models.RoomType) float64 {
	if sel.PricingOption == nil {
		return 0
	}
	total := sel.PricingOption.Price
	if IsMassageService(sel.Service) && sel.RoomType != "" {
		total += RoomTypePrice(roomTypes, sel.RoomType)
	}
	return total
}

// EffectiveRoom resolves the room type and price that go on the appointment:
// the selected tier for massage bookings, the fixed default (price 0) otherwise.
func EffectiveRoom(sel models.BookingSelection, roomTypes []models.RoomType) (string, float64) {
	if IsMassageService(sel.Service) {
		return sel.RoomType, RoomTypePrice(roomTypes, sel.RoomType)
	}
	return models.DefaultRoomType, 0
}
