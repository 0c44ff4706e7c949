package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer serves requests and blocks until the server stops. It
	// returns an error when a listener cannot be started.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
