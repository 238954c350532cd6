// Package youtube implements the domain.VideoSource port against the
// YouTube Data API v3. Calls go through a circuit breaker and a retry
// policy; API errors are translated into domain sentinel errors.
package youtube
