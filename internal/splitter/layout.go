package splitter

import (
	"fmt"
	"path/filepath"
	"strconv"

	"deflacue/internal/cue"
	"deflacue/internal/textutil"
)

// TargetDir resolves where output for sourceDir goes: a sibling subdirectory
// named label when no destination is set, otherwise a subdirectory of the
// destination named after the source directory.
func TargetDir(sourceDir, destination, label string) string {
	if destination == "" {
		return filepath.Join(sourceDir, label)
	}
	return filepath.Join(destination, filepath.Base(sourceDir))
}

// BundleDir is the album directory inside the target:
// <target>/<Performer>/<Date - Album> (or just <Album> when no date).
func BundleDir(target string, disc cue.Disc) string {
	title := disc.Album
	if disc.Date != "" {
		title = disc.Date + " - " + title
	}
	return filepath.Join(
		target,
		textutil.SanitizePathComponent(disc.Performer),
		textutil.SanitizePathComponent(title),
	)
}

// TrackFileName builds "<NN> - <Title>.<ext>" with the track number
// zero-padded to the width of the track count and slashes stripped from the
// title.
func TrackFileName(number, trackCount int, title, extension string) string {
	width := len(strconv.Itoa(trackCount))
	name := textutil.StripSlashes(title)
	if name == "" {
		name = "Untitled"
	}
	return fmt.Sprintf("%0*d - %s.%s", width, number, name, extension)
}

// resolveAudioPath interprets the FILE reference of a sheet relative to the
// directory the sheet lives in.
func resolveAudioPath(sheetDir, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(sheetDir, file)
}
