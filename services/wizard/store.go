package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"glowspa/models"
)

// SessionStore keeps wizard sessions, the staff-entered customer-details
// mirror, and the per-session submit lock. Only the wizard service touches it.
type SessionStore interface {
	SaveSession(ctx context.Context, session *models.WizardSession) error
	GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Customer-details mirror: get-or-default, overwrite-on-submit, clear-on-reset.
	SaveCustomerDetails(ctx context.Context, sessionID string, details *models.CustomerDetails) error
	GetCustomerDetails(ctx context.Context, sessionID string) (*models.CustomerDetails, error)
	ClearCustomerDetails(ctx context.Context, sessionID string) error

	// AcquireSubmitLock returns false while another submission is in flight.
	AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}

// RedisSessionStore implements SessionStore on a dedicated Redis DB.
type RedisSessionStore struct {
	client  *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

// NewRedisSessionStore creates a session store with the given session lifetime.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		client:  client,
		ttl:     ttl,
		lockTTL: 30 * time.Second,
	}
}

func sessionKey(sessionID string) string  { return "wizard:session:" + sessionID }
func customerKey(sessionID string) string { return "wizard:customer:" + sessionID }
func lockKey(sessionID string) string     { return "wizard:submit-lock:" + sessionID }

func (s *RedisSessionStore) SaveSession(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) SaveCustomerDetails(ctx context.Context, sessionID string, details *models.CustomerDetails) error {
	data, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal customer details: %w", err)
	}
	if err := s.client.Set(ctx, customerKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to mirror customer details: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) GetCustomerDetails(ctx context.Context, sessionID string) (*models.CustomerDetails, error) {
	data, err := s.client.Get(ctx, customerKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load mirrored customer details: %w", err)
	}
	var details models.CustomerDetails
	if err := json.Unmarshal([]byte(data), &details); err != nil {
		return nil, fmt.Errorf("failed to parse mirrored customer details: %w", err)
	}
	return &details, nil
}

func (s *RedisSessionStore) ClearCustomerDetails(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, customerKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear mirrored customer details: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockKey(sessionID), "1", s.lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	return ok, nil
}

func (s *RedisSessionStore) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, lockKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to release submit lock: %w", err)
	}
	return nil
}
