package store

import (
	"context"
	"fmt"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/config"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const patientsCollection = "patients"

// NewConnectMongo connects to the MongoDB instance holding patient
// records, verifies connectivity with a ping, and returns the database
// handle.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(cfg.URI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during mongo connection")
		return nil, fmt.Errorf("error occured during mongo connection: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to mongo successfully")

	return client.Database(cfg.Database), nil
}

// ensurePatientIDIndex creates the unique index on the numeric patient id.
// The index is what serializes identifier allocation: a concurrent insert
// with the same id fails with a duplicate-key error and is retried.
func ensurePatientIDIndex(ctx context.Context, patients *mongo.Collection) error {
	_, err := patients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating unique patient id index: %w", err)
	}

	return nil
}
