// Package auth implements the demo authentication feature.
//
// Login checks credentials against a fixed three-account table (athlete,
// coach, admin) held in memory; registration validates its input and echoes
// it back with a generated id. Neither operation stores anything, and failed
// business checks are reported inside a 200 response body with success=false,
// never as an HTTP error status.
//
// # HTTP Endpoints
//
//   - POST /api/auth/login : Authenticate against the demo table.
//   - POST /api/auth/register : Accept a registration without persisting it.
package auth
