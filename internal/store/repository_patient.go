package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sync"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// SearchResultLimit caps the number of records a search may return.
	SearchResultLimit = 50

	// addMaxAttempts bounds the identifier allocation retry loop. Each
	// attempt re-reads the current maximum, so a retry only happens when
	// a concurrent insert won the previous id.
	addMaxAttempts = 5
)

// patientRepository is the MongoDB-backed implementation of
// [PatientRepository].
//
// The collection carries a unique index on the numeric "id" field (see
// [ensurePatientIDIndex]); identifier allocation relies on it instead of a
// read-then-write race. The RWMutex gives [patientRepository.ReplaceAll]
// exclusive access for its full duration while ordinary operations share
// the read side, so a bulk dataset load is never interleaved with other
// calls and no caller observes a half-replaced collection.
type patientRepository struct {
	logger   *logger.Logger
	patients *mongo.Collection
	mu       sync.RWMutex
}

// NewPatientRepository constructs a [PatientRepository] over the patients
// collection of the given database and ensures the unique id index exists.
func NewPatientRepository(ctx context.Context, db *mongo.Database, logger *logger.Logger) (PatientRepository, error) {
	logger.Debug().Msg("creating patient repository")

	patients := db.Collection(patientsCollection)
	if err := ensurePatientIDIndex(ctx, patients); err != nil {
		logger.Err(err).Str("func", "NewPatientRepository").Msg("error ensuring patient id index")
		return nil, err
	}

	return &patientRepository{
		logger:   logger,
		patients: patients,
	}, nil
}

// Add inserts the record under the next free identifier and returns it.
//
// Allocation: read the current maximum id, insert with max+1 (1 when the
// collection is empty), and on a duplicate-key error (a concurrent add won
// the same id) re-read and retry. After [addMaxAttempts] collisions the
// operation fails with [ErrPatientIDConflict], which the caller may retry.
func (r *patientRepository) Add(ctx context.Context, patient models.Patient) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := logger.FromContext(ctx)

	for attempt := 0; attempt < addMaxAttempts; attempt++ {
		maxID, err := r.maxPatientID(ctx)
		if err != nil {
			log.Err(err).Str("func", "*patientRepository.Add").Msg("error reading current max patient id")
			return 0, err
		}

		patient.ID = maxID + 1

		_, err = r.patients.InsertOne(ctx, patient)
		if err == nil {
			return patient.ID, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			// lost the id to a concurrent add, re-read and retry
			continue
		}

		log.Err(err).Str("func", "*patientRepository.Add").Msg("error inserting patient")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return 0, ErrPatientIDConflict
}

// GetByID returns the record with the given identifier or
// [ErrPatientNotFound].
func (r *patientRepository) GetByID(ctx context.Context, id int64) (models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := logger.FromContext(ctx)

	var patient models.Patient
	err := r.patients.FindOne(ctx, bson.M{"id": id}).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Patient{}, ErrPatientNotFound
		}

		log.Err(err).Str("func", "*patientRepository.GetByID").Int64("id", id).Msg("error querying patient")
		return models.Patient{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return patient, nil
}

// List returns records ordered by ascending identifier, honoring the
// pagination offsets. An out-of-range skip yields an empty slice.
func (r *patientRepository) List(ctx context.Context, skip, limit int64) ([]models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := logger.FromContext(ctx)

	findOptions := options.Find().
		SetSort(bson.M{"id": 1}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.patients.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.List").Msg("error querying patients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	return decodePatients(ctx, cursor)
}

// Update replaces the whole record identified by patient.ID.
// Returns [ErrPatientNotFound] when no record matches.
func (r *patientRepository) Update(ctx context.Context, patient models.Patient) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := logger.FromContext(ctx)

	result, err := r.patients.ReplaceOne(ctx, bson.M{"id": patient.ID}, patient)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.Update").Int64("id", patient.ID).Msg("error replacing patient")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if result.MatchedCount == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// Delete removes the record and reports whether anything was removed.
func (r *patientRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := logger.FromContext(ctx)

	result, err := r.patients.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.Delete").Int64("id", id).Msg("error deleting patient")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.DeletedCount > 0, nil
}

// Search matches query case-insensitively as a substring of the identifier
// rendered as text, gender, work type, or smoking status. The id matches
// as text, so id 12 matches the query "1". The query is regex-quoted so
// metacharacters search literally. Results are capped at
// [SearchResultLimit].
func (r *patientRepository) Search(ctx context.Context, query string) ([]models.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := logger.FromContext(ctx)

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{"id_text": bson.M{"$toString": "$id"}}}},
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"id_text": pattern},
			bson.M{"gender": pattern},
			bson.M{"work_type": pattern},
			bson.M{"smoking_status": pattern},
		}}}},
		{{Key: "$sort", Value: bson.M{"id": 1}}},
		{{Key: "$limit", Value: SearchResultLimit}},
	}

	cursor, err := r.patients.Aggregate(ctx, pipeline)
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.Search").Msg("error searching patients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	return decodePatients(ctx, cursor)
}

// Statistics returns the aggregate counts and the stroke percentage
// rounded to two decimal places. An empty store yields all zeros instead
// of a division-by-zero fault.
func (r *patientRepository) Statistics(ctx context.Context) (models.PatientStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := logger.FromContext(ctx)

	total, err := r.patients.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.Statistics").Msg("error counting patients")
		return models.PatientStatistics{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	strokeCount, err := r.patients.CountDocuments(ctx, bson.M{"stroke": 1})
	if err != nil {
		log.Err(err).Str("func", "*patientRepository.Statistics").Msg("error counting stroke patients")
		return models.PatientStatistics{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	stats := models.PatientStatistics{
		TotalPatients:     total,
		StrokePatients:    strokeCount,
		NonStrokePatients: total - strokeCount,
	}
	if total > 0 {
		stats.StrokePercentage = math.Round(float64(strokeCount)/float64(total)*100*100) / 100
	}

	return stats, nil
}

// ReplaceAll destructively replaces the entire collection with the given
// records: delete-all, then insert-all. The write lock excludes every
// other repository operation for the full duration, so concurrent calls
// queue rather than observe a partial state. Callers must have fully
// parsed and validated the records beforehand.
func (r *patientRepository) ReplaceAll(ctx context.Context, patients []models.Patient) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logger.FromContext(ctx)

	if _, err := r.patients.DeleteMany(ctx, bson.M{}); err != nil {
		log.Err(err).Str("func", "*patientRepository.ReplaceAll").Msg("error clearing patients collection")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if len(patients) == 0 {
		return 0, nil
	}

	documents := make([]any, 0, len(patients))
	for _, patient := range patients {
		documents = append(documents, patient)
	}

	if _, err := r.patients.InsertMany(ctx, documents); err != nil {
		log.Err(err).Str("func", "*patientRepository.ReplaceAll").Msg("error inserting dataset")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return len(patients), nil
}

// maxPatientID reads the current maximum identifier, or 0 for an empty
// collection.
func (r *patientRepository) maxPatientID(ctx context.Context) (int64, error) {
	findOptions := options.FindOne().SetSort(bson.M{"id": -1})

	var last models.Patient
	err := r.patients.FindOne(ctx, bson.M{}, findOptions).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return last.ID, nil
}

// decodePatients drains the cursor into a slice, always returning a
// non-nil slice so an empty result serializes as [] rather than null.
func decodePatients(ctx context.Context, cursor *mongo.Cursor) ([]models.Patient, error) {
	patients := make([]models.Patient, 0)
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return patients, nil
}
