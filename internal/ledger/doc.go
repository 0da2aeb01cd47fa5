// Package ledger persists a history of processed cue sheets so past runs can
// be audited with `deflacue history`. One row is written per sheet per run
// with the outcome (done, skipped, failed) and a short detail message.
package ledger
