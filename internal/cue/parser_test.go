package cue_test

import (
	"errors"
	"strings"
	"testing"

	"deflacue/internal/cue"
)

const basicSheet = `PERFORMER "Artist"
TITLE "Album"
FILE "disc.flac" WAVE
TRACK 01 AUDIO
TITLE "Song One"
INDEX 01 00:00:00
TRACK 02 AUDIO
TITLE "Song Two"
INDEX 01 03:30:00
`

func parse(t *testing.T, content string) *cue.Sheet {
	t.Helper()
	sheet, err := cue.NewParser(nil).Parse(content)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return sheet
}

func TestParseBasicSheet(t *testing.T) {
	sheet := parse(t, basicSheet)

	if sheet.Disc.Performer != "Artist" {
		t.Fatalf("unexpected performer: %q", sheet.Disc.Performer)
	}
	if sheet.Disc.Album != "Album" {
		t.Fatalf("unexpected album: %q", sheet.Disc.Album)
	}
	if sheet.Disc.File != "disc.flac" {
		t.Fatalf("unexpected file: %q", sheet.Disc.File)
	}
	if len(sheet.Tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(sheet.Tracks))
	}

	first, second := sheet.Tracks[0], sheet.Tracks[1]
	if first.Number != 1 || second.Number != 2 {
		t.Fatalf("unexpected track numbers: %d, %d", first.Number, second.Number)
	}
	if first.Title != "Song One" || second.Title != "Song Two" {
		t.Fatalf("unexpected titles: %q, %q", first.Title, second.Title)
	}
	if first.StartSample != 0 {
		t.Fatalf("track 1 start = %d, want 0", first.StartSample)
	}
	wantBoundary := int64((3*60 + 30) * 44100)
	if first.EndSample == nil || *first.EndSample != wantBoundary {
		t.Fatalf("track 1 end = %v, want %d", first.EndSample, wantBoundary)
	}
	if second.StartSample != wantBoundary {
		t.Fatalf("track 2 start = %d, want %d", second.StartSample, wantBoundary)
	}
	if second.EndSample != nil {
		t.Fatalf("last track end = %d, want nil", *second.EndSample)
	}

	// Tracks inherit album metadata by value.
	if first.Performer != "Artist" || first.Album != "Album" || first.File != "disc.flac" {
		t.Fatalf("track did not inherit album metadata: %+v", first.Disc)
	}
}

func TestTrackBoundariesChain(t *testing.T) {
	sheet := parse(t, `FILE "disc.flac" WAVE
TRACK 01 AUDIO
TITLE "A"
INDEX 01 00:00:00
TRACK 02 AUDIO
TITLE "B"
INDEX 01 01:00:00
TRACK 03 AUDIO
TITLE "C"
INDEX 01 02:30:10
`)
	if len(sheet.Tracks) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(sheet.Tracks))
	}
	for i := 0; i < len(sheet.Tracks)-1; i++ {
		end := sheet.Tracks[i].EndSample
		if end == nil {
			t.Fatalf("track %d has no end sample", i+1)
		}
		if *end != sheet.Tracks[i+1].StartSample {
			t.Fatalf("track %d end %d != track %d start %d", i+1, *end, i+2, sheet.Tracks[i+1].StartSample)
		}
	}
	if sheet.Tracks[2].EndSample != nil {
		t.Fatal("last track should run to end of file")
	}
}

func TestTitleScoping(t *testing.T) {
	sheet := parse(t, `TITLE "The Album"
TRACK 01 AUDIO
TITLE "The Song"
INDEX 01 00:00:00
`)
	if sheet.Disc.Album != "The Album" {
		t.Fatalf("album title = %q, want %q", sheet.Disc.Album, "The Album")
	}
	if sheet.Tracks[0].Title != "The Song" {
		t.Fatalf("track title = %q, want %q", sheet.Tracks[0].Title, "The Song")
	}
	// The track-scope TITLE must not leak back into the album record.
	if sheet.Tracks[0].Album != "The Album" {
		t.Fatalf("track inherited album = %q, want %q", sheet.Tracks[0].Album, "The Album")
	}
}

func TestRemScopedToActiveTrack(t *testing.T) {
	sheet := parse(t, `REM GENRE "Jazz"
TRACK 01 AUDIO
TITLE "One"
INDEX 01 00:00:00
REM COMPOSER "Somebody"
TRACK 02 AUDIO
TITLE "Two"
INDEX 01 00:10:00
`)
	first, second := sheet.Tracks[0], sheet.Tracks[1]

	// The REM between the TRACK commands executed in track 1's scope, so it
	// belongs to track 1 only and never reaches the album record.
	if got := first.Rem["COMPOSER"]; got != "Somebody" {
		t.Fatalf("track 1 COMPOSER = %q, want %q", got, "Somebody")
	}
	if _, ok := sheet.Disc.Rem["COMPOSER"]; ok {
		t.Fatal("album record gained a track-scoped REM key")
	}
	if _, ok := second.Rem["COMPOSER"]; ok {
		t.Fatal("track 2 snapshot gained track 1's REM key")
	}
	if first.Genre != "Jazz" || second.Genre != "Jazz" {
		t.Fatal("tracks did not inherit the global REM GENRE value")
	}
}

func TestRemSetsKnownFieldsAndStripsQuotes(t *testing.T) {
	sheet := parse(t, `REM DATE "1999"
REM GENRE Electronic
REM COMMENT plain text value
REM DISCID 8B0A140C
`)
	if sheet.Disc.Date != "1999" {
		t.Fatalf("DATE = %q, want 1999", sheet.Disc.Date)
	}
	if sheet.Disc.Genre != "Electronic" {
		t.Fatalf("GENRE = %q, want Electronic", sheet.Disc.Genre)
	}
	if sheet.Disc.Comment != "plain text value" {
		t.Fatalf("COMMENT = %q", sheet.Disc.Comment)
	}
	if got := sheet.Disc.Rem["DISCID"]; got != "8B0A140C" {
		t.Fatalf("custom REM key DISCID = %q", got)
	}
}

func TestUnknownCommandIsSkipped(t *testing.T) {
	sheet := parse(t, `PERFORMER "Artist"
PREGAP 00:02:00
TRACK 01 AUDIO
TITLE "One"
INDEX 01 00:00:00
POSTGAP 00:01:00
`)
	if len(sheet.Tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(sheet.Tracks))
	}
	if sheet.Disc.Performer != "Artist" {
		t.Fatal("parsing stopped at unknown command")
	}
}

func TestFlagsIsIgnored(t *testing.T) {
	sheet := parse(t, `TRACK 01 AUDIO
FLAGS DCP PRE
INDEX 01 00:00:00
`)
	if len(sheet.Tracks) != 1 || sheet.Tracks[0].StartSample != 0 {
		t.Fatal("FLAGS interfered with parsing")
	}
}

func TestMissingFileStillParses(t *testing.T) {
	sheet := parse(t, `PERFORMER "Artist"
TRACK 01 AUDIO
TITLE "One"
INDEX 01 00:00:00
`)
	if sheet.Disc.File != "" {
		t.Fatalf("expected empty FILE, got %q", sheet.Disc.File)
	}
	if len(sheet.Tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(sheet.Tracks))
	}
}

func TestDefaultsApplyWhenSheetIsSilent(t *testing.T) {
	sheet := parse(t, `TRACK 01 AUDIO
INDEX 01 00:00:00
`)
	if sheet.Disc.Performer != cue.DefaultField || sheet.Disc.Album != cue.DefaultField || sheet.Disc.Genre != cue.DefaultField {
		t.Fatalf("defaults not applied: %+v", sheet.Disc)
	}
	if sheet.Disc.Date != "" || sheet.Disc.Songwriter != "" {
		t.Fatalf("nullable fields should stay empty: %+v", sheet.Disc)
	}
}

func TestMalformedLineFailsSheet(t *testing.T) {
	_, err := cue.NewParser(nil).Parse("PERFORMER\nTRACK 01 AUDIO\n")
	var parseErr *cue.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Line != 1 {
		t.Fatalf("ParseError line = %d, want 1", parseErr.Line)
	}
}

func TestInvalidTimecodeFailsSheet(t *testing.T) {
	_, err := cue.NewParser(nil).Parse(`TRACK 01 AUDIO
INDEX 01 notatime
`)
	var parseErr *cue.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(parseErr.Message, "notatime") {
		t.Fatalf("unexpected message: %q", parseErr.Message)
	}
}

func TestInvalidTrackNumberFailsSheet(t *testing.T) {
	_, err := cue.NewParser(nil).Parse("TRACK one AUDIO\n")
	var parseErr *cue.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestCommandKeywordsAreCaseInsensitive(t *testing.T) {
	sheet := parse(t, `performer "Artist"
title "Album"
file "disc.flac" WAVE
track 01 AUDIO
Title "One"
index 01 00:00:00
`)
	if sheet.Disc.Performer != "Artist" || sheet.Disc.Album != "Album" {
		t.Fatalf("lower-case commands not recognized: %+v", sheet.Disc)
	}
	if len(sheet.Tracks) != 1 || sheet.Tracks[0].Title != "One" {
		t.Fatalf("unexpected tracks: %+v", sheet.Tracks)
	}
}

func TestPerTrackFileOverride(t *testing.T) {
	sheet := parse(t, `FILE "disc1.flac" WAVE
TRACK 01 AUDIO
INDEX 01 00:00:00
TRACK 02 AUDIO
FILE "disc2.flac" WAVE
INDEX 01 00:00:00
`)
	if sheet.Tracks[0].File != "disc1.flac" {
		t.Fatalf("track 1 file = %q", sheet.Tracks[0].File)
	}
	if sheet.Tracks[1].File != "disc2.flac" {
		t.Fatalf("track 2 file = %q", sheet.Tracks[1].File)
	}
	if sheet.Disc.File != "disc1.flac" {
		t.Fatalf("album file = %q", sheet.Disc.File)
	}
}

func TestVorbisComments(t *testing.T) {
	sheet := parse(t, `PERFORMER "Artist"
TITLE "Album"
REM GENRE Ambient
TRACK 04 AUDIO
TITLE "Song"
INDEX 01 00:00:00
`)
	comments := sheet.Tracks[0].VorbisComments()
	want := map[string]string{
		"TRACKNUMBER": "4",
		"TITLE":       "Song",
		"ARTIST":      "Artist",
		"ALBUM":       "Album",
		"GENRE":       "Ambient",
	}
	for key, value := range want {
		if comments[key] != value {
			t.Fatalf("comment %s = %q, want %q", key, comments[key], value)
		}
	}
	if _, ok := comments["DATE"]; ok {
		t.Fatal("unset DATE must be omitted")
	}
}
