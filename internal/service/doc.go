// Package service contains the task lifecycle service: it composes the
// domain validation and sanitization rules, the task store, and the event
// publisher into the four task operations, coupling each successful write
// to a best-effort notification.
package service
