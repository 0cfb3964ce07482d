package service

import (
	"context"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
)

// AuthService owns account lifecycle and credential verification. It never
// issues tokens itself; successful logins are handed to the SessionService.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// SessionService owns session issuance, resolution and revocation. The
// signed token only references the server-side record; deleting the record
// is the revocation mechanism.
type SessionService interface {
	// Begin establishes a session for the given user and returns the
	// signed token the client presents on subsequent requests.
	Begin(ctx context.Context, user models.User) (models.Token, error)

	// Resolve maps a presented token string to the session it references.
	// Expired, revoked, tampered and unknown tokens all resolve to
	// ErrUnauthenticated, never to a panic or storage error leak.
	Resolve(ctx context.Context, tokenString string) (models.Session, error)

	// End revokes the session. Ending an already-ended session is a no-op.
	End(ctx context.Context, sessionID string) error
}

// PatientService owns the patient record operations exposed over HTTP.
type PatientService interface {
	Add(ctx context.Context, patient models.Patient) (models.Patient, error)
	GetByID(ctx context.Context, id int64) (models.Patient, error)
	List(ctx context.Context, skip, limit int64) ([]models.Patient, error)
	Update(ctx context.Context, id int64, update models.PatientUpdate) (models.Patient, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string) ([]models.Patient, error)
	Statistics(ctx context.Context) (models.PatientStatistics, error)

	// LoadDataset replaces the whole collection with the given CSV rows.
	// Every row is parsed and validated before anything is deleted; a bad
	// row aborts the load with the existing records untouched.
	LoadDataset(ctx context.Context, rows []map[string]string) (int, error)
}
