// Package server holds the HTTP server configuration and application
// assembly.
//
// The Config struct defines the listen port (strictly validated, since
// a malformed PORT must abort startup rather than fall back), the bind
// host, and an optional serving root override.
//
// NewApp wires the Fiber application: the ray id middleware, request
// logging through the shared zap logger, and the static file handler
// mounted at the site root. No other routes exist.
package server
