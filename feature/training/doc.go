// Package training implements the training session demo endpoint.
//
// Submitted sessions are acknowledged with a generated id and discarded.
//
// # HTTP Endpoints
//
//   - POST /api/training/sessions : Acknowledge a training session.
package training
