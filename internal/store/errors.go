package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because the email address is already registered.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPatientNotFound is returned when a read, update, or delete targets
	// a patient record that does not exist.
	ErrPatientNotFound = errors.New("patient was not found")

	// ErrPatientIDConflict is returned when identifier allocation keeps
	// colliding with concurrent inserts after all retries are exhausted.
	// The operation may be retried by the caller.
	ErrPatientIDConflict = errors.New("patient identifier conflict")

	// ErrSessionNotFound is returned when a session lookup misses: the
	// session never existed, expired out of the store, or was revoked.
	ErrSessionNotFound = errors.New("session was not found")
)

// Low-level storage operation errors. These are returned (or wrapped) by
// repository methods when the backing store fails before any domain logic
// can be applied. They are never silently degraded to empty results.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// backing store fails (unreachable database, timeout, driver error).
	ErrExecutingQuery = errors.New("error executing storage query")

	// ErrScanningRow is returned when decoding a result row or document
	// into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan storage row")
)
