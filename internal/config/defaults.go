package config

const (
	defaultLedgerPath = "~/.local/share/deflacue/ledger.db"
	defaultLockPath   = "~/.local/share/deflacue/deflacue.lock"
	defaultDirLabel   = "deflacue"
	defaultExtension  = "flac"
	defaultSoxBinary  = "sox"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LedgerPath: defaultLedgerPath,
			LockPath:   defaultLockPath,
		},
		Output: Output{
			DirLabel:  defaultDirLabel,
			Extension: defaultExtension,
		},
		Sox: Sox{
			Binary: defaultSoxBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
