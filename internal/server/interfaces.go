package server

// Server is the lifecycle contract for the transports exposing the aiva API.
// The HTTP server is the only implementation today.
//
// RunServer blocks until a stop signal arrives and graceful shutdown
// completes. Shutdown drains in-flight requests and releases resources; it is
// invoked by RunServer itself once a stop is requested.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
