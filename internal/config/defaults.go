package config

const (
	defaultInputDir     = "~/.local/share/textlab/input"
	defaultOutputDir    = "~/.local/share/textlab/output"
	defaultLogDir       = "~/.local/share/textlab/logs"
	defaultTopWords     = 5
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultHistoryLimit = 20
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir:  defaultInputDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Analysis: Analysis{
			TopWords: defaultTopWords,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
			Limit:   defaultHistoryLimit,
		},
	}
}
