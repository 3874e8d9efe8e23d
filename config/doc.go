// Package config supplies the two configuration surfaces a merge run
// needs: per-run algorithm knobs as functional options (threshold,
// relative_threshold, negate, preserve_plain_vertices, special(v)),
// grounded on builder's BuilderOption pattern, and ambient process
// configuration (storage backend, logging, telemetry) loaded from
// file/env via viper, grounded on perf-analysis's pkg/config.
package config
