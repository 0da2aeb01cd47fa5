package cue

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"deflacue/internal/logging"
)

// commandKind enumerates the recognized cue sheet commands. Keywords outside
// this set are skipped with a warning, never an error.
type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdRem
	cmdPerformer
	cmdTitle
	cmdFile
	cmdIndex
	cmdTrack
	cmdFlags
)

var commandKinds = map[string]commandKind{
	"REM":       cmdRem,
	"PERFORMER": cmdPerformer,
	"TITLE":     cmdTitle,
	"FILE":      cmdFile,
	"INDEX":     cmdIndex,
	"TRACK":     cmdTrack,
	"FLAGS":     cmdFlags,
}

// Parser interprets cue sheet text into a Sheet.
type Parser struct {
	logger *slog.Logger
}

// NewParser constructs a parser. A nil logger disables diagnostics.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Parser{logger: logger.With(logging.String(logging.FieldComponent, "cue"))}
}

// sheetState is the mutable state of one parse. active points at the track
// subsequent commands apply to; nil means global (album) scope. Only the
// TRACK command transitions the scope.
type sheetState struct {
	disc   Disc
	tracks []*Track
	active *Track
}

// Parse interprets the decoded text of a cue sheet. The returned sheet is
// complete: track end positions are already linked to the next track's start.
func (p *Parser) Parse(content string) (*Sheet, error) {
	state := &sheetState{disc: newDisc()}

	for number, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if err := p.interpret(state, number+1, line); err != nil {
			return nil, err
		}
	}

	for i := 0; i < len(state.tracks)-1; i++ {
		start := state.tracks[i+1].StartSample
		state.tracks[i].EndSample = &start
	}

	return &Sheet{Disc: state.disc, Tracks: state.tracks}, nil
}

func (p *Parser) interpret(state *sheetState, number int, line string) error {
	keyword, args, ok := strings.Cut(line, " ")
	if !ok {
		return &ParseError{Line: number, Message: fmt.Sprintf("command %q has no argument", keyword)}
	}
	p.logger.Debug("cue command",
		logging.Int("line", number),
		logging.String("keyword", keyword),
		logging.String("args", args))

	switch commandKinds[strings.ToUpper(keyword)] {
	case cmdRem:
		key, value, ok := strings.Cut(args, " ")
		if !ok {
			return &ParseError{Line: number, Message: "REM needs a key and a value"}
		}
		if strings.HasPrefix(value, `"`) {
			value = unquote(value)
		}
		setRemField(state, strings.ToUpper(key), value)

	case cmdPerformer:
		if state.active != nil {
			state.active.Performer = unquote(args)
		} else {
			state.disc.Performer = unquote(args)
		}

	case cmdTitle:
		// In global scope TITLE names the album; inside a track it names
		// the track and leaves the album untouched.
		if state.active != nil {
			state.active.Title = unquote(args)
		} else {
			state.disc.Album = unquote(args)
		}

	case cmdFile:
		// Drop the trailing type token (WAVE, BINARY, ...).
		name := args
		if idx := strings.LastIndex(args, " "); idx >= 0 {
			name = args[:idx]
		}
		if state.active != nil {
			state.active.File = unquote(name)
		} else {
			state.disc.File = unquote(name)
		}

	case cmdIndex:
		fields := strings.Fields(args)
		if len(fields) < 2 {
			return &ParseError{Line: number, Message: "INDEX needs a number and a time code"}
		}
		if state.active == nil {
			p.logger.Warn("INDEX before any TRACK, skipping", logging.Int("line", number))
			return nil
		}
		samples, err := TimecodeToSamples(fields[1])
		if err != nil {
			return &ParseError{Line: number, Message: err.Error()}
		}
		state.active.Index = fields[1]
		state.active.StartSample = samples

	case cmdTrack:
		fields := strings.Fields(args)
		if len(fields) < 2 {
			return &ParseError{Line: number, Message: "TRACK needs a number and a type"}
		}
		num, err := strconv.Atoi(fields[0])
		if err != nil {
			return &ParseError{Line: number, Message: fmt.Sprintf("track number %q is not an integer", fields[0])}
		}
		track := &Track{Disc: state.disc.snapshot(), Number: num}
		state.tracks = append(state.tracks, track)
		state.active = track

	case cmdFlags:
		// Recognized, deliberately ignored.

	default:
		p.logger.Warn("unknown cue command, skipping",
			logging.Int("line", number),
			logging.String("keyword", keyword))
	}
	return nil
}

// setRemField applies a REM key to the current scope. Known album fields are
// written directly; TITLE targets the active track's title; anything else
// lands in the Rem map.
func setRemField(state *sheetState, key, value string) {
	if state.active != nil {
		if key == "TITLE" {
			state.active.Title = value
			return
		}
		if !state.active.Disc.setField(key, value) {
			state.active.setRem(key, value)
		}
		return
	}
	if !state.disc.setField(key, value) {
		state.disc.setRem(key, value)
	}
}

func unquote(value string) string {
	return strings.Trim(value, ` "`)
}
