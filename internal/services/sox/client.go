package sox

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"deflacue/internal/services"
)

var commandContext = exec.CommandContext

// Request describes one track extraction: cut [StartSample, EndSample) out of
// Source into Target with the given Vorbis comments embedded. A nil EndSample
// means "to the end of the source".
type Request struct {
	Source      string
	StartSample int64
	EndSample   *int64
	Target      string
	Comments    map[string]string
}

// Extractor defines the external audio extraction behaviour.
type Extractor interface {
	Available(ctx context.Context) error
	Extract(ctx context.Context, req Request) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the sox command-line tool.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "sox"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Available probes the sox binary once; a failure is run-scoped.
func (c *CLI) Available(ctx context.Context) error {
	if _, err := exec.LookPath(c.binary); err != nil {
		return services.Wrap(services.ErrToolUnavailable, "", "probe", fmt.Sprintf("binary %q not found", c.binary), err)
	}
	if err := commandContext(ctx, c.binary, "--version").Run(); err != nil {
		return services.Wrap(services.ErrToolUnavailable, "", "probe", fmt.Sprintf("%s --version failed", c.binary), err)
	}
	return nil
}

// Extract runs sox to produce one trimmed, tagged track file.
func (c *CLI) Extract(ctx context.Context, req Request) error {
	if req.Source == "" {
		return errors.New("source path required")
	}
	if req.Target == "" {
		return errors.New("target path required")
	}

	cmd := commandContext(ctx, c.binary, c.args(req)...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "", "sox", tail(output), err)
	}
	return nil
}

// args builds the sox argument list:
//
//	sox -V1 <source> --comment "" [--add-comment K=V ...] <target> trim <start>s [<length>s]
func (c *CLI) args(req Request) []string {
	args := []string{"-V1", req.Source, "--comment", ""}

	keys := make([]string, 0, len(req.Comments))
	for key := range req.Comments {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		args = append(args, "--add-comment", key+"="+req.Comments[key])
	}

	args = append(args, req.Target, "trim", strconv.FormatInt(req.StartSample, 10)+"s")
	if req.EndSample != nil {
		args = append(args, strconv.FormatInt(*req.EndSample-req.StartSample, 10)+"s")
	}
	return args
}

func tail(output []byte) string {
	text := strings.TrimSpace(string(output))
	if text == "" {
		return "extraction failed"
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	return strings.Join(lines, "; ")
}

var _ Extractor = (*CLI)(nil)
