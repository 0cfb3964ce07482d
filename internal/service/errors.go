package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so the login response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated is returned whenever a presented token does not
	// resolve to a live session: expired, revoked, tampered or unknown.
	ErrUnauthenticated = errors.New("session is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// DatasetRowError reports a dataset row that could not be parsed or
// validated. Row numbers are 1-based over data rows (the header is row 0).
type DatasetRowError struct {
	Row int
	Err error
}

func (e *DatasetRowError) Error() string {
	return fmt.Sprintf("dataset row %d: %v", e.Row, e.Err)
}

func (e *DatasetRowError) Unwrap() error {
	return e.Err
}
