package cue

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText turns raw cue sheet bytes into a UTF-8 string. When encodingName
// is empty the bytes must already be valid UTF-8 (a BOM is tolerated and
// stripped); otherwise the name is resolved through the IANA registry
// (e.g. "windows-1251", "shift_jis"). Failures wrap ErrDecoding so callers can
// prompt for the correct encoding and retry.
func DecodeText(data []byte, encodingName string) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if encodingName == "" {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: content is not valid UTF-8, pass an explicit encoding", ErrDecoding)
		}
		return string(data), nil
	}

	enc, err := ianaindex.IANA.Encoding(encodingName)
	if err != nil || enc == nil {
		return "", fmt.Errorf("%w: unknown encoding %q", ErrDecoding, encodingName)
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%w: decode as %s: %v", ErrDecoding, encodingName, err)
	}
	return string(decoded), nil
}

// Load reads, decodes, and parses the cue sheet at path.
func Load(path, encodingName string, logger *slog.Logger) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cue sheet: %w", err)
	}
	content, err := DecodeText(data, encodingName)
	if err != nil {
		return nil, err
	}
	return NewParser(logger).Parse(content)
}
