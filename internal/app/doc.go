// Package app provides the application service layer.
//
// Orchestrates the analyze use case: URL extraction, metadata and comment
// fetch, sentiment aggregation. Sits between HTTP handlers and the domain
// port. Depends on domain interfaces, not concrete implementations.
package app
