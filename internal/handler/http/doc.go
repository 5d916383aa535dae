// Package http implements the REST transport of the calendar server.
//
// It wires chi routes to the auth and event services and carries the
// cross-cutting middleware: trace IDs, access logging, security headers,
// metrics, compression, rate limiting and bearer token authentication.
// Service errors are translated to HTTP statuses in one place, see
// statusFromError.
package http
