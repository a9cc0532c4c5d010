// Package logger provides structured logging setup for the application.
package logger
