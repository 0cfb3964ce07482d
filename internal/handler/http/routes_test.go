package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutes_GateCoversEveryPatientRoute(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/user/logout"},
		{http.MethodGet, "/api/patients"},
		{http.MethodPost, "/api/patients"},
		{http.MethodGet, "/api/patients/stats"},
		{http.MethodGet, "/api/patients/search"},
		{http.MethodPost, "/api/patients/dataset"},
		{http.MethodGet, "/api/patients/1"},
		{http.MethodPut, "/api/patients/1"},
		{http.MethodDelete, "/api/patients/1"},
	}

	h, _ := newTestHandler(t)
	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, strings.NewReader("{}"))

			recorder := perform(t, h, req)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestRoutes_PublicRoutesSkipTheGate(t *testing.T) {
	h, _ := newTestHandler(t)

	register := perform(t, h, httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(`{"username":"x"}`)))
	assert.NotEqual(t, http.StatusUnauthorized, register.Code)
}

func TestRoutes_UnknownPath(t *testing.T) {
	h, _ := newTestHandler(t)

	recorder := perform(t, h, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRoutes_UnsupportedMethodReadsAsNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	// the register route exists but only for POST
	recorder := perform(t, h, httptest.NewRequest(http.MethodGet, "/api/user/register", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
