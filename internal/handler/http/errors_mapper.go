package http

import (
	"errors"
	"net/http"

	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/logger"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/service"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/store"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/utils"
	"github.com/CS-LTU/com7033-assignment-MuhammadFaizButt/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrUnauthenticated:    http.StatusUnauthorized,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	errInvalidJSON: http.StatusBadRequest,
	errInvalidCSV:  http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrPatientNotFound:       http.StatusNotFound,
	store.ErrPatientIDConflict:     http.StatusConflict,
	store.ErrSessionNotFound:       http.StatusUnauthorized,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}

	var rowErr *service.DatasetRowError
	if errors.As(err, &rowErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON body of every non-2xx response. Violations is
// present only when the input failed validation; driver-level detail never
// crosses this boundary.
type errorResponse struct {
	Error      string                      `json:"error"`
	Violations []validators.FieldViolation `json:"violations,omitempty"`
}

// writeError maps err to a status code and writes the JSON error body.
// 5xx-class causes are hidden behind a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	body := errorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		body.Error = http.StatusText(http.StatusInternalServerError)
	}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		body.Violations = verr.Violations
	}

	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	}

	utils.WriteJSON(w, body, status)
}
