package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glowspa/database"
	"glowspa/models"
)

// AppointmentRepository persists confirmed and payment-pending bookings.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	MarkPaid(id string) (*models.Appointment, error)
	ListByUser(userID string) ([]models.Appointment, error)
	ListUpcoming(from, to time.Time) ([]models.Appointment, error)
}

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &MongoAppointmentRepo{coll: database.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "bookedById", Value: 1}, {Key: "dateTime", Value: -1}}},
		{Keys: bson.D{{Key: "dateTime", Value: 1}}},
		{Keys: bson.D{{Key: "razorpayOrderId", Value: 1}}, Options: options.Index().SetSparse(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new appointment document.
func (r *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	appt.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

// MarkPaid flips the payment status to paid and returns the updated record.
func (r *MongoAppointmentRepo) MarkPaid(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"paymentStatus": models.PaymentStatusPaid}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&appt); err != nil {
		return nil, fmt.Errorf("failed to mark appointment %s paid: %w", id, err)
	}
	return &appt, nil
}

// ListByUser returns the bookings created by (or on behalf of) a user, newest first.
func (r *MongoAppointmentRepo) ListByUser(userID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"bookedById": userID},
		options.Find().SetSort(bson.D{{Key: "dateTime", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for user %s: %w", userID, err)
	}
	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// ListUpcoming returns paid or cash appointments scheduled inside [from, to).
func (r *MongoAppointmentRepo) ListUpcoming(from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"dateTime": bson.M{"$gte": from, "$lt": to}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming appointments: %w", err)
	}
	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}
