// Package config defines the application configuration structure and its
// loading from defaults, an optional config.yaml, and TASKFLOW_-prefixed
// environment variables.
package config
