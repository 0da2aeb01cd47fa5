package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for batch failure classification. Sheet-scoped markers are
// caught at the per-sheet boundary and logged; run-scoped markers terminate
// the whole batch.
var (
	// ErrMissingSource marks a sheet whose referenced audio image does not
	// exist on disk. Sheet-scoped.
	ErrMissingSource = errors.New("source audio missing")
	// ErrDirectoryCreate marks a target directory that could not be created.
	// Sheet-scoped.
	ErrDirectoryCreate = errors.New("directory creation failed")
	// ErrToolUnavailable marks an extraction tool that cannot be located or
	// invoked. Run-scoped, checked once before any sheet is processed.
	ErrToolUnavailable = errors.New("extraction tool unavailable")
	// ErrExternalTool marks a failed extraction call. Track-scoped: logged,
	// then processing continues with the next track.
	ErrExternalTool = errors.New("external tool error")
)

// Wrap builds an error message that includes sheet context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, sheet, operation, message string, err error) error {
	detail := buildDetail(sheet, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FatalToRun reports whether an error must terminate the whole batch rather
// than just the sheet it occurred in.
func FatalToRun(err error) bool {
	return errors.Is(err, ErrToolUnavailable)
}

func buildDetail(sheet, operation, message string) string {
	parts := make([]string, 0, 3)
	if sheet = strings.TrimSpace(sheet); sheet != "" {
		parts = append(parts, sheet)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
