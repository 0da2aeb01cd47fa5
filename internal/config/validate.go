package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Paths.LedgerPath) == "" {
		c.Paths.LedgerPath = defaultLedgerPath
	}
	if c.Paths.LedgerPath, err = expandPath(c.Paths.LedgerPath); err != nil {
		return fmt.Errorf("paths.ledger_path: %w", err)
	}
	if strings.TrimSpace(c.Paths.LockPath) == "" {
		c.Paths.LockPath = defaultLockPath
	}
	if c.Paths.LockPath, err = expandPath(c.Paths.LockPath); err != nil {
		return fmt.Errorf("paths.lock_path: %w", err)
	}

	c.Output.DirLabel = strings.TrimSpace(c.Output.DirLabel)
	if c.Output.DirLabel == "" {
		c.Output.DirLabel = defaultDirLabel
	}
	c.Output.Extension = strings.TrimPrefix(strings.TrimSpace(c.Output.Extension), ".")
	if c.Output.Extension == "" {
		c.Output.Extension = defaultExtension
	}

	c.Sox.Binary = strings.TrimSpace(c.Sox.Binary)
	if c.Sox.Binary == "" {
		c.Sox.Binary = defaultSoxBinary
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Output.DirLabel, `/\`) {
		return fmt.Errorf("output.dir_label %q must be a bare directory name", c.Output.DirLabel)
	}
	if strings.ContainsAny(c.Output.Extension, `/\.`) {
		return fmt.Errorf("output.extension %q must be a bare extension", c.Output.Extension)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
