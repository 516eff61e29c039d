// Package system exposes the platform's introspection endpoints.
//
// # HTTP Endpoints
//
//   - GET /api/health : Liveness probe with the current timestamp.
//   - GET /api/config : The fixed client configuration (app name, version,
//     feature flags).
package system
