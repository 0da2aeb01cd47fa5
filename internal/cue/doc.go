// Package cue parses Cue Sheet files: the line-oriented command language that
// describes how a single audio image is divided into tracks.
//
// The parser recognizes a fixed subset of commands (REM, PERFORMER, TITLE,
// FILE, INDEX, TRACK, FLAGS) and produces an immutable Sheet: the album-level
// Disc record plus the tracks in file order, each carrying a value snapshot of
// the album metadata taken when its TRACK command appeared. Track boundaries
// are expressed as sample offsets at 44100 Hz, derived from the mm:ss:ff time
// codes (75 frames per second); each track ends where the next one starts, and
// the last track runs to the end of the image.
//
// Unknown commands are logged and skipped. Malformed lines and invalid time
// codes abort the sheet with a ParseError; bytes that cannot be decoded under
// the requested text encoding abort it with ErrDecoding.
package cue
