package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/config"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
	"github.com/redis/go-redis/v9"
)

// sessionKeyPrefix namespaces session records in Redis.
const sessionKeyPrefix = "session:"

// sessionStore is the Redis-backed implementation of [SessionStore].
//
// Each session lives under "session:<id>" as a JSON document with a TTL.
// The TTL is only a backstop that garbage-collects abandoned records; the
// authoritative expiry check happens against the stored ExpiresAt when the
// session is resolved. Deleting the key is the revocation mechanism.
type sessionStore struct {
	logger *logger.Logger
	client *redis.Client
}

// NewConnectRedis connects to the Redis instance backing the session store
// and verifies connectivity with a ping.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error parsing redis URI")
		return nil, fmt.Errorf("error parsing redis URI: %w", err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 5
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// NewSessionStore constructs a [SessionStore] backed by the provided Redis
// client and logger.
func NewSessionStore(client *redis.Client, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating session store")
	return &sessionStore{
		logger: logger,
		client: client,
	}
}

// Save persists the session record under its key with the given TTL.
func (s *sessionStore) Save(ctx context.Context, session models.Session, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(session)
	if err != nil {
		log.Err(err).Str("func", "*sessionStore.Save").Msg("error marshaling session")
		return fmt.Errorf("error marshaling session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.SessionID), payload, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*sessionStore.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Get returns the session record or [ErrSessionNotFound] when the key is
// absent: revoked, expired out of the store, or never created.
func (s *sessionStore) Get(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionStore.Get").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		log.Err(err).Str("func", "*sessionStore.Get").Msg("error unmarshaling session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// Delete revokes the session. Deleting an absent key is not an error, so
// the operation is idempotent.
func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		log.Err(err).Str("func", "*sessionStore.Delete").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
