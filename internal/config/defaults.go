package config

const (
	defaultConfigPath     = "~/.config/morson/config.toml"
	defaultOutputPath     = "output"
	defaultLogDir         = "~/.local/share/morson/logs"
	defaultLockDir        = "~/.local/share/morson/locks"
	defaultHistoryPath    = "~/.local/share/morson/history.db"
	defaultHistoryLimit   = 20
	defaultBatchWorkers   = 4
	defaultBatchExtension = ".morson"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	maxBatchWorkers       = 64
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Path:      defaultOutputPath,
			Overwrite: true,
			Lock:      true,
		},
		Paths: Paths{
			LogDir:      defaultLogDir,
			LockDir:     defaultLockDir,
			HistoryPath: defaultHistoryPath,
		},
		History: History{
			Enabled: true,
			Limit:   defaultHistoryLimit,
		},
		Batch: Batch{
			Workers:   defaultBatchWorkers,
			Extension: defaultBatchExtension,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
