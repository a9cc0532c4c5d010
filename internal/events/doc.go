// Package events defines the task notification event, the publish/consume
// contracts, and an in-process publisher for broker-less deployments. The
// RabbitMQ-backed implementation lives in internal/platform/rabbitmq.
package events
