package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 6
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// CredentialsValidator checks registration and login input. Username is
// 3-20 characters of letters, digits and underscores; email must parse as
// an address; password must be at least 6 characters.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value)

	case models.LoginRequest:
		return v.validateLoginRequest(value)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateRegisterRequest(req models.RegisterRequest) error {
	verr := &ValidationError{}

	checkUsername(verr, req.Username)
	checkEmail(verr, req.Email)
	checkPassword(verr, req.Password)

	return verr.ErrOrNil()
}

// validateLoginRequest requires both fields to be present but does not
// re-apply the registration shape rules: stricter historical rules must
// not lock out accounts created before them.
func (v *CredentialsValidator) validateLoginRequest(req models.LoginRequest) error {
	verr := &ValidationError{}

	if req.Username == "" {
		verr.Add(FieldUsername, "is required")
	}
	if req.Password == "" {
		verr.Add(FieldPassword, "is required")
	}

	return verr.ErrOrNil()
}

func checkUsername(verr *ValidationError, username string) {
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		verr.Add(FieldUsername, fmt.Sprintf("must be %d-%d characters long", MinUsernameLength, MaxUsernameLength))
		return
	}

	if !usernamePattern.MatchString(username) {
		verr.Add(FieldUsername, "may contain only letters, digits and underscores")
	}
}

func checkEmail(verr *ValidationError, email string) {
	if email == "" {
		verr.Add(FieldEmail, "is required")
		return
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		verr.Add(FieldEmail, "is not a valid email address")
	}
}

func checkPassword(verr *ValidationError, password string) {
	if len(password) < MinPasswordLength {
		verr.Add(FieldPassword, fmt.Sprintf("must be at least %d characters long", MinPasswordLength))
	}
}
