package store

import (
	"context"
	"fmt"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/config"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
)

// Storages aggregates every persistence component of the service: user
// accounts in PostgreSQL, patient records in MongoDB, sessions in Redis.
type Storages struct {
	UserRepository    UserRepository
	PatientRepository PatientRepository
	SessionStore      SessionStore
}

// NewStorages connects to all persistence backends, applies the user
// database migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting user database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating user database: %w", err)
	}

	mongoDB, err := NewConnectMongo(ctx, cfg.Mongo, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting patient database: %w", err)
	}

	patientRepository, err := NewPatientRepository(ctx, mongoDB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating patient repository: %w", err)
	}

	redisClient, err := NewConnectRedis(ctx, cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting session store: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PatientRepository: patientRepository,
		SessionStore:      NewSessionStore(redisClient, log),
	}, nil
}
