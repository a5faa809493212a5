package config

const (
	defaultOutputDir      = "."
	defaultFuzzyThreshold = 0.90
	defaultPreviewMembers = 5
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
		},
		Match: Match{
			FuzzyThreshold: defaultFuzzyThreshold,
			PreviewMembers: defaultPreviewMembers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
