// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/utils"
)

// auth is the access gate in front of every patient route.
//
// It extracts the bearer token from the "Authorization" header and resolves
// it to a live session via [service.SessionService.Resolve]. On success the
// session is stored in the request context under [utils.PrincipalCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent or malformed.
//   - The token is tampered, expired, revoked or references no session.
//
// A tampered or unknown token reads exactly like an expired one; the gate
// never reveals which failure occurred.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			h.writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.Resolve(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		// Store the resolved principal in the context so that downstream
		// handlers can identify the actor without re-resolving the token.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
