// Package services defines shared utilities consumed by the batch splitter and
// external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, cue sheet paths, and track numbers
//     for logging and tracing.
//   - Structured error markers plus the Wrap helper that classify failures as
//     sheet-scoped (skip the sheet, continue the batch) or run-scoped (abort).
package services
