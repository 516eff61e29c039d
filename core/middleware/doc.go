// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming
//     request, injecting it into the context and response headers for tracing.
//   - Headers: Applies the fixed CORS and no-cache response headers to every
//     response and answers OPTIONS preflight requests.
//
// These middleware components are registered globally in core/router.
package middleware
