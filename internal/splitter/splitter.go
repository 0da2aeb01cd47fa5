package splitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"deflacue/internal/config"
	"deflacue/internal/cue"
	"deflacue/internal/ledger"
	"deflacue/internal/logging"
	"deflacue/internal/services"
	"deflacue/internal/services/sox"
)

// Options describe one batch run.
type Options struct {
	Source      string
	Destination string
	Recursive   bool
	Encoding    string
	DryRun      bool
}

// Summary aggregates the outcome of a run.
type Summary struct {
	RunID           string
	Sheets          int
	Done            int
	Skipped         int
	Failed          int
	TracksExtracted int
	TracksFailed    int
}

// Splitter drives the batch: discover cue sheets, parse them, and hand each
// track to the extractor. Sheets are processed strictly one at a time, tracks
// within a sheet strictly one at a time.
type Splitter struct {
	cfg       *config.Config
	logger    *slog.Logger
	extractor sox.Extractor
	history   *ledger.Store
}

// New constructs a splitter using the configured sox binary. history may be
// nil (dry runs pass no ledger).
func New(cfg *config.Config, logger *slog.Logger, history *ledger.Store) *Splitter {
	return NewWithDependencies(cfg, logger, sox.NewCLI(sox.WithBinary(cfg.Sox.Binary)), history)
}

// NewWithDependencies allows injecting the extractor (used in tests).
func NewWithDependencies(cfg *config.Config, logger *slog.Logger, extractor sox.Extractor, history *ledger.Store) *Splitter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Splitter{
		cfg:       cfg,
		logger:    logger.With(logging.String(logging.FieldComponent, "splitter")),
		extractor: extractor,
		history:   history,
	}
}

// Run processes every cue sheet under opts.Source. Sheet-scoped failures are
// logged and recorded; only run-scoped failures (bad source path, extraction
// tool unavailable, lock contention) return an error.
func (s *Splitter) Run(ctx context.Context, opts Options) (*Summary, error) {
	summary := &Summary{RunID: uuid.NewString()}
	ctx = services.WithRunID(ctx, summary.RunID)
	logger := logging.WithContext(ctx, s.logger)

	source, err := filepath.Abs(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("resolve source path: %w", err)
	}
	if _, err := os.Stat(source); err != nil {
		return nil, fmt.Errorf("source path %q is not accessible: %w", opts.Source, err)
	}

	// The collaborator is probed once up front; without it no sheet can be
	// processed, dry run included.
	if err := s.extractor.Available(ctx); err != nil {
		return nil, err
	}

	if !opts.DryRun {
		unlock, err := s.acquireRunLock()
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	destination := opts.Destination
	if destination != "" {
		if destination, err = filepath.Abs(destination); err != nil {
			return nil, fmt.Errorf("resolve destination path: %w", err)
		}
	}

	logger.Info("starting batch run",
		logging.String("source", source),
		logging.String("destination", destination),
		logging.Bool("recursive", opts.Recursive),
		logging.Bool("dry_run", opts.DryRun))

	groups, err := DiscoverSheets(source, opts.Recursive)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		logger.Info("no cue sheets found")
		return summary, nil
	}

	for _, group := range groups {
		target := TargetDir(group.Dir, destination, s.cfg.Output.DirLabel)
		logger.Info("working on directory",
			logging.String("dir", group.Dir),
			logging.String("target", target))

		for _, name := range group.Sheets {
			sheetPath := filepath.Join(group.Dir, name)
			sheetCtx := services.WithSheet(ctx, sheetPath)

			summary.Sheets++
			entry := s.processSheet(sheetCtx, sheetPath, target, opts, summary)
			entry.RunID = summary.RunID
			entry.Sheet = sheetPath

			switch entry.Outcome {
			case ledger.OutcomeDone:
				summary.Done++
			case ledger.OutcomeSkipped:
				summary.Skipped++
			default:
				summary.Failed++
			}

			if !opts.DryRun && s.history != nil {
				if _, err := s.history.Record(sheetCtx, entry); err != nil {
					logging.WithContext(sheetCtx, s.logger).Warn("ledger write failed", logging.Error(err))
				}
			}
		}
	}

	logger.Info("batch run finished",
		logging.Int("sheets", summary.Sheets),
		logging.Int("done", summary.Done),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
		logging.Int("tracks_extracted", summary.TracksExtracted),
		logging.Int("tracks_failed", summary.TracksFailed))
	return summary, nil
}

// processSheet handles one cue sheet inside the per-sheet error boundary:
// everything that goes wrong here is logged and recorded, never propagated.
func (s *Splitter) processSheet(ctx context.Context, sheetPath, target string, opts Options, summary *Summary) ledger.Entry {
	logger := logging.WithContext(ctx, s.logger)
	logger.Info("processing cue sheet", logging.String("name", filepath.Base(sheetPath)))

	sheet, err := cue.Load(sheetPath, opts.Encoding, s.logger)
	if err != nil {
		if errors.Is(err, cue.ErrDecoding) {
			logger.Error("cue sheet could not be decoded, pass -e with the correct encoding", logging.Error(err))
		} else {
			logger.Error("cue sheet could not be parsed", logging.Error(err))
		}
		return ledger.Entry{Outcome: ledger.OutcomeFailed, Detail: err.Error()}
	}

	entry := ledger.Entry{
		Performer: sheet.Disc.Performer,
		Album:     sheet.Disc.Album,
		Tracks:    len(sheet.Tracks),
	}

	sheetDir := filepath.Dir(sheetPath)
	albumAudio := resolveAudioPath(sheetDir, sheet.Disc.File)
	if albumAudio == "" {
		err := services.Wrap(services.ErrMissingSource, sheetPath, "resolve audio", "sheet has no FILE command", nil)
		logger.Error("cue sheet skipped", logging.Error(err))
		entry.Outcome = ledger.OutcomeSkipped
		entry.Detail = err.Error()
		return entry
	}
	if _, statErr := os.Stat(albumAudio); statErr != nil {
		err := services.Wrap(services.ErrMissingSource, sheetPath, "resolve audio", albumAudio, statErr)
		logger.Error("cue sheet skipped", logging.Error(err))
		entry.Outcome = ledger.OutcomeSkipped
		entry.Detail = err.Error()
		return entry
	}

	bundle := BundleDir(target, sheet.Disc)
	if opts.DryRun {
		logger.Info("dry run: would create directory", logging.String("dir", bundle))
	} else if err := os.MkdirAll(bundle, 0o755); err != nil {
		wrapped := services.Wrap(services.ErrDirectoryCreate, sheetPath, "create target", bundle, err)
		logger.Error("cue sheet failed", logging.Error(wrapped))
		entry.Outcome = ledger.OutcomeFailed
		entry.Detail = wrapped.Error()
		return entry
	}

	failed := 0
	for _, track := range sheet.Tracks {
		trackCtx := services.WithTrack(ctx, track.Number)
		if err := s.extractTrack(trackCtx, sheetDir, bundle, sheet, track, opts); err != nil {
			logging.WithContext(trackCtx, s.logger).Error("track extraction failed", logging.Error(err))
			failed++
			summary.TracksFailed++
			continue
		}
		if !opts.DryRun {
			summary.TracksExtracted++
		}
	}

	entry.Outcome = ledger.OutcomeDone
	if failed > 0 {
		entry.Detail = fmt.Sprintf("%d of %d tracks failed", failed, len(sheet.Tracks))
	}
	return entry
}

func (s *Splitter) extractTrack(ctx context.Context, sheetDir, bundle string, sheet *cue.Sheet, track *cue.Track, opts Options) error {
	logger := logging.WithContext(ctx, s.logger)

	filename := TrackFileName(track.Number, len(sheet.Tracks), track.Title, s.cfg.Output.Extension)
	target := filepath.Join(bundle, filename)

	// Multi-file sheets override FILE per track.
	audio := resolveAudioPath(sheetDir, track.File)
	if _, err := os.Stat(audio); err != nil {
		return services.Wrap(services.ErrMissingSource, "", "resolve audio", audio, err)
	}

	req := sox.Request{
		Source:      audio,
		StartSample: track.StartSample,
		EndSample:   track.EndSample,
		Target:      target,
		Comments:    track.VorbisComments(),
	}

	if opts.DryRun {
		logger.Info("dry run: would extract",
			logging.String("target", filename),
			logging.Int64("start_sample", req.StartSample),
			logging.Any("end_sample", endSampleValue(req.EndSample)))
		return nil
	}

	logger.Info("extracting", logging.String("target", filename))
	return s.extractor.Extract(ctx, req)
}

func endSampleValue(end *int64) any {
	if end == nil {
		return "eof"
	}
	return *end
}

func (s *Splitter) acquireRunLock() (func(), error) {
	lockPath := s.cfg.Paths.LockPath
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another deflacue run is already in progress (lock %s)", lockPath)
	}
	return func() { _ = lock.Unlock() }, nil
}
