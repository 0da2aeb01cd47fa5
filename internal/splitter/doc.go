// Package splitter orchestrates batch cue sheet processing: sheet discovery,
// parsing, output layout, and delegation of per-track extraction to the sox
// service.
//
// Failures are classified at two boundaries. Sheet-scoped errors (undecodable
// or malformed sheets, missing source audio, target directory problems) are
// logged, recorded in the ledger, and the batch continues. Run-scoped errors
// (inaccessible source path, extraction tool unavailable, concurrent run lock
// held) abort the run before or during processing.
package splitter
