// Package requestsink contains the version number of requestsink and the fixed
// payloads it answers every request with.
package requestsink

// Version is the current version of requestsink.
//
// This variable is set at build time using the -X linker flag.
var Version = "devel"

const (
	// DefaultPort is used when PORT is not set.
	DefaultPort = "3000"

	// Greeting is the body of every response on the root path.
	Greeting = "Hello, World!"

	// RouteNotFound is the error message of every response off the root path.
	RouteNotFound = "Route not found"
)
