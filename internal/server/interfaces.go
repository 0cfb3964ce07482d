package server

// Server is the lifecycle contract for the transport servers this package
// manages.
//
// RunServer blocks until the server stops serving; Shutdown drains in-flight
// requests and releases resources.
type Server interface {
	// RunServer starts accepting requests and blocks until the server stops.
	RunServer()

	// Shutdown stops the server gracefully.
	Shutdown()
}
