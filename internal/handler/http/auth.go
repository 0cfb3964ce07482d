package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/utils"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/models"
)

// tokenResponse is the body of a successful login. The same token is also
// mirrored in the "Authorization" response header.
type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.SessionService.Begin(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("session establishment failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, tokenResponse{Token: token.SignedString}, http.StatusOK)
}

// logout revokes the current session. It sits behind the access gate, so a
// principal is always present in the context by the time it runs.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	if err := h.services.SessionService.End(ctx, session.SessionID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("username", session.Username).Msg("user logged out")

	w.WriteHeader(http.StatusNoContent)
}
