// Package server provides the Echo HTTP server: dashboard page, analyze API,
// health and observability endpoints.
package server
