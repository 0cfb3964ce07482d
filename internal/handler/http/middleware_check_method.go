package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod builds the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches a route but the method does not.
// This handler answers 404 instead, so callers probing with unsupported
// methods cannot tell a guessed path from a real one. When the method is
// actually registered the request falls through to the router's normal
// pipeline.
//
// Route lookup compares each registered pattern against the raw request
// path; parameterised segments are not expanded.
//
// Usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
