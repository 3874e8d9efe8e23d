// Package logx provides the structured Logger interface used across
// this module's ambient stack — coordinator round progress, block
// protocol events, checkpoint I/O — grounded on perf-analysis's
// pkg/utils/logger.go (DefaultLogger/StdLogger/NullLogger, WithField
// chaining, ParseLevel).
package logx
