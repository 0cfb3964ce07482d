package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/config"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/store"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/utils"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
	"github.com/google/uuid"
)

// sessionService is the concrete implementation of SessionService.
//
// The signed JWT carries only a reference (the "jti" claim) to the
// server-side session record. The record is the single source of truth:
// a deleted or expired record reads as anonymous no matter how valid the
// token signature still is.
type sessionService struct {
	sessionStore store.SessionStore

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// lifetime controls how long a newly established session remains valid.
	lifetime time.Duration

	// now is the clock used for expiry decisions. Injected for tests.
	now func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// SessionStore and populated with token parameters from cfg.
func NewSessionService(sessionStore store.SessionStore, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionStore: sessionStore,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		lifetime:     cfg.SessionLifetime,
		now:          time.Now,
		logger:       logger,
	}
}

// Begin establishes a session for the given user.
//
// A fresh UUID identifies the session. The record is written to the session
// store with a TTL matching the session lifetime, then a signed token
// referencing it is issued. Storage failure aborts the login; a token must
// never exist without its record.
func (s *sessionService) Begin(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	now := s.now().UTC()
	session := models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.lifetime),
	}

	if err := s.sessionStore.Save(ctx, session, s.lifetime); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error: saving session record")
		return models.Token{}, fmt.Errorf("saving session record failed: %w", err)
	}

	token, err := utils.GenerateSessionToken(s.tokenIssuer, user.UserID, session.SessionID, session.ExpiresAt, s.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error: signing session token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Resolve maps a presented token string to the live session it references.
//
// Every failure mode normalises to ErrUnauthenticated: a tampered or
// malformed token, an unknown session id, and an expired record all look
// identical to the caller. An expired record found in the store is deleted
// on the spot so later lookups short-circuit.
func (s *sessionService) Resolve(ctx context.Context, tokenString string) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseSessionToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrUnauthenticated
	}

	session, err := s.sessionStore.Get(ctx, token.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrUnauthenticated
		}

		log.Err(err).Msg("error: reading session record")
		return models.Session{}, fmt.Errorf("reading session record failed: %w", err)
	}

	if session.ExpiredAt(s.now().UTC()) {
		// lazy cleanup, failure here only delays the TTL eviction
		if err := s.sessionStore.Delete(ctx, session.SessionID); err != nil {
			log.Err(err).Str("session_id", session.SessionID).Msg("error: deleting expired session record")
		}

		return models.Session{}, ErrUnauthenticated
	}

	return session, nil
}

// End revokes the session by deleting its record. Unknown session ids are
// not an error so logout stays idempotent.
func (s *sessionService) End(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if err := s.sessionStore.Delete(ctx, sessionID); err != nil {
		log.Err(err).Str("session_id", sessionID).Msg("error: deleting session record")
		return fmt.Errorf("deleting session record failed: %w", err)
	}

	return nil
}
