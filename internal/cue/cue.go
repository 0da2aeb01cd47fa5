package cue

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultField is the value assumed for album fields a sheet never sets.
const DefaultField = "Unknown"

// ErrDecoding reports cue sheet bytes that cannot be decoded as text. The
// caller may retry with an explicit encoding name.
var ErrDecoding = errors.New("cue sheet decoding error")

// ParseError describes a malformed command line or time code. It is fatal for
// the sheet it occurred in; other sheets in a batch are unaffected.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("cue parse error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("cue parse error: %s", e.Message)
}

// Disc holds album-level metadata accumulated while the parser is in global
// scope. An empty string means the sheet never set the field.
type Disc struct {
	Performer  string
	Songwriter string
	Album      string
	Genre      string
	Date       string
	File       string
	Comment    string

	// Rem carries custom keys introduced by REM commands, upper-cased.
	Rem map[string]string
}

func newDisc() Disc {
	return Disc{
		Performer: DefaultField,
		Album:     DefaultField,
		Genre:     DefaultField,
	}
}

// setField assigns a named album field, reporting whether the key was one of
// the known fields. REM commands share this namespace with the dedicated
// commands: `REM DATE 1999` and `REM GENRE Jazz` are the conventional way cue
// sheets carry those values.
func (d *Disc) setField(key, value string) bool {
	switch key {
	case "PERFORMER":
		d.Performer = value
	case "SONGWRITER":
		d.Songwriter = value
	case "ALBUM":
		d.Album = value
	case "GENRE":
		d.Genre = value
	case "DATE":
		d.Date = value
	case "FILE":
		d.File = value
	case "COMMENT":
		d.Comment = value
	default:
		return false
	}
	return true
}

func (d *Disc) setRem(key, value string) {
	if d.Rem == nil {
		d.Rem = make(map[string]string)
	}
	d.Rem[key] = value
}

// snapshot returns an independent copy of the disc. The Rem map is duplicated
// so global-scope edits after a TRACK command never reach tracks that were
// already branched off.
func (d Disc) snapshot() Disc {
	cp := d
	if d.Rem != nil {
		cp.Rem = make(map[string]string, len(d.Rem))
		for key, value := range d.Rem {
			cp.Rem[key] = value
		}
	}
	return cp
}

// Track is one track of the sheet. It embeds the disc snapshot taken when the
// TRACK command was seen, so album metadata is inherited by value and may be
// overridden per track (PERFORMER, FILE, REM keys).
type Track struct {
	Disc

	// Number is the integer from the TRACK command. Numbers increase
	// monotonically through the sheet; they feed zero-padded filenames and
	// are never used for reordering.
	Number int

	Title string

	// Index is the raw mm:ss:ff time code from the INDEX command.
	Index string

	// StartSample is Index converted to samples at 44100 Hz.
	StartSample int64

	// EndSample is the start of the following track, or nil for the last
	// track ("extract to end of file").
	EndSample *int64
}

// Vorbis comment names for the whitelisted cue fields embedded into output
// files. Fields without a mapping, and unset fields, are omitted.
const (
	TagTrackNumber = "TRACKNUMBER"
	TagTitle       = "TITLE"
	TagArtist      = "ARTIST"
	TagAlbum       = "ALBUM"
	TagGenre       = "GENRE"
	TagDate        = "DATE"
)

// VorbisComments maps the track's cue fields to the standard Vorbis tag
// vocabulary, omitting unset values.
func (t *Track) VorbisComments() map[string]string {
	comments := map[string]string{
		TagTrackNumber: strconv.Itoa(t.Number),
	}
	for tag, value := range map[string]string{
		TagTitle:  t.Title,
		TagArtist: t.Performer,
		TagAlbum:  t.Album,
		TagGenre:  t.Genre,
		TagDate:   t.Date,
	} {
		if value != "" {
			comments[tag] = value
		}
	}
	return comments
}

// Sheet is the immutable result of parsing one cue file: the album record and
// the tracks in the order they appeared.
type Sheet struct {
	Disc   Disc
	Tracks []*Track
}
