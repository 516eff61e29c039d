// Package router assembles the Fiber application.
//
// It wires the global middleware (RayID, header policy, request logging,
// panic recovery), loads the registered features, and installs the
// fallthrough chain that gives the server its routing contract:
//
//  1. Exact API routes registered by features.
//  2. 404 "API endpoint not found" for anything else under /api/.
//  3. Static asset serving from the configured root (GET/HEAD only).
//  4. 404 "Not Found" for everything that remains.
//
// Transport errors are rendered as plain text by the central error handler;
// unexpected failures become a 500 whose body carries the error text.
package router
