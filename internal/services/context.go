package services

import "context"

type contextKey string

const (
	runIDKey contextKey = "run_id"
	sheetKey contextKey = "sheet"
	trackKey contextKey = "track"
)

// WithRunID annotates context with the batch run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the batch run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSheet annotates context with the cue sheet path being processed.
func WithSheet(ctx context.Context, sheet string) context.Context {
	if sheet == "" {
		return ctx
	}
	return context.WithValue(ctx, sheetKey, sheet)
}

// SheetFromContext returns the cue sheet path if present.
func SheetFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(sheetKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithTrack annotates context with the track number being extracted.
func WithTrack(ctx context.Context, number int) context.Context {
	if number <= 0 {
		return ctx
	}
	return context.WithValue(ctx, trackKey, number)
}

// TrackFromContext returns the track number if present.
func TrackFromContext(ctx context.Context) (int, bool) {
	if v, ok := ctx.Value(trackKey).(int); ok && v > 0 {
		return v, true
	}
	return 0, false
}
