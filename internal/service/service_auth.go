package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/config"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/store"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/validators"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks registration and login input shape.
	validator validators.Validator

	// bcryptCost is the bcrypt work factor used when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		bcryptCost:     cost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Username and email are trimmed and the email is lowercased before
// validation, so "  John@Example.COM " and "john@example.com" are the same
// account. The password is bcrypt-hashed before it reaches the repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - *validators.ValidationError when the input shape is rejected.
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists when the
//     account collides with an existing one.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Str("username", req.Username).Msg("registration input rejected")
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error: hashing password")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, err
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password are indistinguishable to the
// caller: both return ErrInvalidCredentials. Failed attempts are logged at
// warn level with the username only.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", req.Username).Msg("login failed: unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("username", req.Username).Msg("login failed: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
