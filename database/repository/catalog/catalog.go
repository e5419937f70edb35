package catalogRepo

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

// CatalogRepository persists the bookable catalog: services and room types.
type CatalogRepository interface {
	ListServices() ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	CreateService(svc *models.Service) error
	UpdateService(svc *models.Service) error
	DeleteService(id string) error

	ListRoomTypes() ([]models.RoomType, error)
	UpsertRoomType(rt *models.RoomType) error
	DeleteRoomType(typeName string) error
}

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services  *mongo.Collection
	roomTypes *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	repo := &MongoCatalogRepo{
		services:  database.Collection("services"),
		roomTypes: database.Collection("room_types"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category.name", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}
	if _, err := r.services.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListServices returns the full service catalog, ordered by name.
func (r *MongoCatalogRepo) ListServices() ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// GetServiceByID retrieves a service by its unique ID.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.services.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// CreateService inserts a new service document.
func (r *MongoCatalogRepo) CreateService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.services.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// UpdateService replaces an existing service document.
func (r *MongoCatalogRepo) UpdateService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.services.ReplaceOne(ctx, bson.M{"_id": svc.ID}, svc)
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", svc.ID)
	}
	return nil
}

// DeleteService removes a service document by its ID.
func (r *MongoCatalogRepo) DeleteService(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.services.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

// ListRoomTypes returns every room tier, cheapest first.
func (r *MongoCatalogRepo) ListRoomTypes() ([]models.RoomType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.roomTypes.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "price", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	var roomTypes []models.RoomType
	if err := cursor.All(ctx, &roomTypes); err != nil {
		return nil, fmt.Errorf("failed to decode room types: %w", err)
	}
	return roomTypes, nil
}

// UpsertRoomType creates or replaces a room tier keyed by its type name.
func (r *MongoCatalogRepo) UpsertRoomType(rt *models.RoomType) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.roomTypes.ReplaceOne(ctx, bson.M{"_id": rt.Type}, rt, opts); err != nil {
		return fmt.Errorf("failed to upsert room type %s: %w", rt.Type, err)
	}
	return nil
}

// DeleteRoomType removes a room tier by its type name.
func (r *MongoCatalogRepo) DeleteRoomType(typeName string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.roomTypes.DeleteOne(ctx, bson.M{"_id": typeName})
	if err != nil {
		return fmt.Errorf("failed to delete room type %s: %w", typeName, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("room type %s not found", typeName)
	}
	return nil
}
