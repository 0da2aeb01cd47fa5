package main

import (
	"log/slog"

	"deflacue/internal/config"
	"deflacue/internal/logging"
)

// commandContext carries the persistent flag values and lazily-loaded
// configuration shared by all subcommands.
type commandContext struct {
	configFlag string
	encoding   string
	debug      bool

	cfg *config.Config
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, _, _, err := config.Load(c.configFlag)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	return cfg, nil
}

// bootstrap loads configuration and builds the logger, honouring --debug.
func (c *commandContext) bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Logging.Level
	if c.debug {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
