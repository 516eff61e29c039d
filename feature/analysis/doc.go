// Package analysis implements the AI analysis demo endpoint.
//
// Submitted analysis results are acknowledged with a generated id and
// discarded.
//
// # HTTP Endpoints
//
//   - POST /api/ai/analysis : Acknowledge an AI analysis result.
package analysis
