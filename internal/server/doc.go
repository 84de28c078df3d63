// Package server runs the demo HTTP server: startup, signal handling and
// graceful shutdown bounded by the configured timeout.
package server
