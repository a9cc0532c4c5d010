// Package api implements the REST surface of the task service: request and
// response DTOs, HTTP handlers, and the mapping from service errors to
// HTTP status codes and caller-safe messages.
package api
