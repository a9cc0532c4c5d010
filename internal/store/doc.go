// Package store defines the persistence contract consumed by the service
// layer, together with the sentinel errors every implementation maps its
// driver-level failures onto. The MongoDB implementation lives in
// internal/platform/mongo.
package store
