// Package telemetry wires OpenTelemetry tracing around coordinator
// rounds, grounded on perf-analysis's pkg/telemetry (Config/Init/
// ShutdownFunc, env-driven OTLP/HTTP exporter, sampler selection). Only
// the HTTP/protobuf exporter path is kept — this module's go.mod never
// pulls in a gRPC transport.
package telemetry
