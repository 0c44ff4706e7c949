// Package server runs the HTTP and gRPC listeners of the portal and stops
// them together on SIGTERM, SIGINT or SIGQUIT.
package server
