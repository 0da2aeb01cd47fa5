// Package logging builds the slog loggers used across deflacue and defines
// the standardized structured field names (component, run_id, sheet, track).
//
// Two output formats are supported: a compact colorized console format for
// interactive runs and JSON for machine consumption. WithContext derives
// per-sheet and per-track loggers from values stamped on the context by the
// services package.
package logging
