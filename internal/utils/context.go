// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, HTTP response
// writing, and session token generation and validation.
package utils

import (
	"context"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authentication middleware
// stores the resolved session of the current principal.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.PrincipalCtxKey, session)
var PrincipalCtxKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated session from the
// context.
//
// Returns the session and an ok flag:
//   - ok == true  - a principal was stored by the access gate
//   - ok == false - value is missing or has an unexpected type; the caller
//     must treat the request as anonymous
func GetPrincipalFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(PrincipalCtxKey).(models.Session)
	return session, ok
}
