package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	catalogRepo "glowspa/database/repository/catalog"
	"glowspa/models"
)

const (
	servicesCacheKey  = "catalog:services"
	roomTypesCacheKey = "catalog:roomtypes"
)

// CatalogService serves the bookable catalog, caching reads in Redis.
type CatalogService interface {
	ListServices() ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	ListRoomTypes() ([]models.RoomType, error)

	CreateService(svc *models.Service) error
	UpdateService(svc *models.Service) error
	DeleteService(id string) error
	UpsertRoomType(rt *models.RoomType) error
	DeleteRoomType(typeName string) error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo   catalogRepo.CatalogRepository
	Cache  *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

// ListServices returns the service catalog, from cache when warm.
func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	ctx := context.Background()
	if data, err := s.Cache.Get(ctx, servicesCacheKey).Result(); err == nil {
		var services []models.Service
		if err := json.Unmarshal([]byte(data), &services); err == nil {
			return services, nil
		}
	}

	services, err := s.Repo.ListServices()
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", err)
	}
	s.cacheSet(ctx, servicesCacheKey, services)
	return services, nil
}

// GetServiceByID resolves one service; the list cache is scanned first so the
// wizard's hot path rarely touches Mongo.
func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	services, err := s.ListServices()
	if err == nil {
		for i := range services {
			if services[i].ID == id {
				return &services[i], nil
			}
		}
	}
	return s.Repo.GetServiceByID(id)
}

// ListRoomTypes returns the room tiers, from cache when warm.
func (s *DefaultCatalogService) ListRoomTypes() ([]models.RoomType, error) {
	ctx := context.Background()
	if data, err := s.Cache.Get(ctx, roomTypesCacheKey).Result(); err == nil {
		var roomTypes []models.RoomType
		if err := json.Unmarshal([]byte(data), &roomTypes); err == nil {
			return roomTypes, nil
		}
	}

	roomTypes, err := s.Repo.ListRoomTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to load room-type catalog: %w", err)
	}
	s.cacheSet(ctx, roomTypesCacheKey, roomTypes)
	return roomTypes, nil
}

// CreateService adds a service and invalidates the cache.
func (s *DefaultCatalogService) CreateService(svc *models.Service) error {
	if err := s.Repo.CreateService(svc); err != nil {
		return err
	}
	s.invalidate(servicesCacheKey)
	return nil
}

// UpdateService replaces a service and invalidates the cache.
func (s *DefaultCatalogService) UpdateService(svc *models.Service) error {
	if err := s.Repo.UpdateService(svc); err != nil {
		return err
	}
	s.invalidate(servicesCacheKey)
	return nil
}

// DeleteService removes a service and invalidates the cache.
func (s *DefaultCatalogService) DeleteService(id string) error {
	if err := s.Repo.DeleteService(id); err != nil {
		return err
	}
	s.invalidate(servicesCacheKey)
	return nil
}

// UpsertRoomType creates or replaces a room tier and invalidates the cache.
func (s *DefaultCatalogService) UpsertRoomType(rt *models.RoomType) error {
	if err := s.Repo.UpsertRoomType(rt); err != nil {
		return err
	}
	s.invalidate(roomTypesCacheKey)
	return nil
}

// DeleteRoomType removes a room tier and invalidates the cache.
func (s *DefaultCatalogService) DeleteRoomType(typeName string) error {
	if err := s.Repo.DeleteRoomType(typeName); err != nil {
		return err
	}
	s.invalidate(roomTypesCacheKey)
	return nil
}

func (s *DefaultCatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.TTL).Err(); err != nil {
		s.Logger.Warn("failed to cache catalog data", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultCatalogService) invalidate(key string) {
	if err := s.Cache.Del(context.Background(), key).Err(); err != nil {
		s.Logger.Warn("failed to invalidate catalog cache", zap.String("key", key), zap.Error(err))
	}
}
