package textutil

import "strings"

// StripSlashes removes slash characters from a track title so the generated
// filename stays flat. Slashes are dropped, not replaced.
func StripSlashes(title string) string {
	return strings.ReplaceAll(title, "/", "")
}

// pathComponentReplacer makes a string safe to use as one directory level.
// Separators become dashes, other filesystem-hostile characters are removed.
var pathComponentReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizePathComponent cleans a performer or album name for use as a single
// directory component. Returns "Unknown" when nothing printable remains.
func SanitizePathComponent(name string) string {
	cleaned := strings.TrimSpace(pathComponentReplacer.Replace(name))
	cleaned = strings.Trim(cleaned, "-. ")
	if cleaned == "" {
		return "Unknown"
	}
	return cleaned
}
