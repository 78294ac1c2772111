// Package zap implements the log.Logger interface on top of go.uber.org/zap.
package zap
