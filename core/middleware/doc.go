// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and
// the static handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming
//     request, injecting it into the context and response headers for
//     tracing.
//
// Request logging itself lives in the server package, where the shared
// logger is available; it reads the RayID this middleware stores.
package middleware
