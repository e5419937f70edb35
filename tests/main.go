package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"glowspa/config"
	"glowspa/database"
	"glowspa/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Initialize the database connection.
	config.LoadConfig()
	database.InitDB()

	serviceColl := database.Collection("services")
	roomTypeColl := database.Collection("room_types")
	userColl := database.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing catalog and demo accounts.
	for _, coll := range []struct {
		name string
		fn   func() error
	}{
		{"services", func() error { _, err := serviceColl.DeleteMany(ctx, bson.M{}); return err }},
		{"room_types", func() error { _, err := roomTypeColl.DeleteMany(ctx, bson.M{}); return err }},
		{"users", func() error { _, err := userColl.DeleteMany(ctx, bson.M{}); return err }},
	} {
		if err := coll.fn(); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll.name, err)
		}
	}

	// Seed the service catalog. One massage service so the room step is
	// exercised, plus non-massage services that skip it.
	services := []interface{}{
		models.Service{
			ID:       "svc-swedish-massage",
			Name:     "Swedish Massage",
			Category: models.Category{ID: "cat-massage", Name: "Massage"},
			Pricing: []models.PricingOption{
				{DurationMinutes: 30, Price: 1200, Label: "30 min"},
				{DurationMinutes: 60, Price: 2000, Label: "60 min"},
				{DurationMinutes: 90, Price: 2800, Label: "90 min"},
			},
		},
		models.Service{
			ID:       "svc-deep-tissue",
			Name:     "Deep Tissue Massage",
			Category: models.Category{ID: "cat-massage", Name: "Massage"},
			Pricing: []models.PricingOption{
				{DurationMinutes: 60, Price: 2400, Label: "60 min"},
				{DurationMinutes: 90, Price: 3200, Label: "90 min"},
			},
		},
		models.Service{
			ID:       "svc-classic-facial",
			Name:     "Classic Facial",
			Category: models.Category{ID: "cat-skincare", Name: "Skincare"},
			Pricing: []models.PricingOption{
				{DurationMinutes: 45, Price: 1500, Label: "45 min"},
				{DurationMinutes: 75, Price: 2200, Label: "75 min deluxe"},
			},
		},
		models.Service{
			ID:       "svc-manicure",
			Name:     "Manicure & Polish",
			Category: models.Category{ID: "cat-nails", Name: "Nails"},
			Pricing: []models.PricingOption{
				{DurationMinutes: 40, Price: 800, Label: "Express"},
				{DurationMinutes: 70, Price: 1400, Label: "Full care"},
			},
		},
	}
	if res, err := serviceColl.InsertMany(ctx, services); err != nil {
		log.Fatalf("Failed to insert services: %v", err)
	} else {
		fmt.Printf("Inserted service IDs: %v\n", res.InsertedIDs)
	}

	// Seed the room tiers used for massage bookings.
	roomTypes := []interface{}{
		models.RoomType{Type: "Silver", Price: 0, Capacity: 1},
		models.RoomType{Type: "Gold", Price: 500, Capacity: 2},
		models.RoomType{Type: "Diamond", Price: 1200, Capacity: 2},
	}
	if res, err := roomTypeColl.InsertMany(ctx, roomTypes); err != nil {
		log.Fatalf("Failed to insert room types: %v", err)
	} else {
		fmt.Printf("Inserted room type IDs: %v\n", res.InsertedIDs)
	}

	// Seed demo accounts: one customer and one receptionist.
	hashed, err := bcrypt.GenerateFromPassword([]byte("$Password1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	now := time.Now()
	users := []interface{}{
		models.User{
			ID:           "user-demo-customer",
			Name:         "Asha Demo",
			Email:        "customer@example.com",
			Phone:        "9000000001",
			PasswordHash: string(hashed),
			Role:         "customer",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		models.User{
			ID:           "user-demo-reception",
			Name:         "Front Desk",
			Email:        "reception@example.com",
			Phone:        "9000000002",
			PasswordHash: string(hashed),
			Role:         "staff",
			SubRole:      "receptionist",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	if res, err := userColl.InsertMany(ctx, users); err != nil {
		log.Fatalf("Failed to insert users: %v", err)
	} else {
		fmt.Printf("Inserted user IDs: %v\n", res.InsertedIDs)
	}
}
