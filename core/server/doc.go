// Package server holds the HTTP server configuration.
//
// The main application entry point handles server startup; this package only
// defines the configuration structure for it: the listen port and the root
// directory the single-page application assets are served from.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by core/router to locate the static asset root.
package server
