package store

import (
	"context"
	"time"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
)

// UserRepository owns user account persistence. It is the only component
// that touches the users table; password hash computation happens above it.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// PatientRepository owns patient record persistence, including identifier
// allocation: no other component may mint patient IDs.
type PatientRepository interface {
	// Add inserts the record and returns the assigned identifier
	// (one greater than the current maximum, 1 for an empty store).
	Add(ctx context.Context, patient models.Patient) (int64, error)

	GetByID(ctx context.Context, id int64) (models.Patient, error)

	// List returns records ordered by ascending identifier. An
	// out-of-range skip yields an empty slice, not an error.
	List(ctx context.Context, skip, limit int64) ([]models.Patient, error)

	// Update replaces the whole record identified by patient.ID.
	Update(ctx context.Context, patient models.Patient) error

	// Delete reports whether a record was actually removed; a missing id
	// is false, not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// Search matches query case-insensitively as a substring of the
	// identifier rendered as text, gender, work type, or smoking status.
	// Results are capped at SearchResultLimit.
	Search(ctx context.Context, query string) ([]models.Patient, error)

	Statistics(ctx context.Context) (models.PatientStatistics, error)

	// ReplaceAll destructively replaces the entire collection. It holds
	// exclusive access for its full duration; concurrent mutations queue
	// behind it and never observe a partial state.
	ReplaceAll(ctx context.Context, patients []models.Patient) (int, error)
}

// SessionStore owns server-side session records. Deleting a record is the
// revocation mechanism: a missing record always reads as anonymous.
type SessionStore interface {
	Save(ctx context.Context, session models.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
