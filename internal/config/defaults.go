package config

const (
	defaultBind                 = "127.0.0.1:8000"
	defaultReadHeaderTimeout    = 5
	defaultWriteTimeout         = 75
	defaultShutdownTimeout      = 10
	defaultMaxBodyBytes         = 64 * 1024
	defaultExtractorBinary      = "yt-dlp"
	defaultExtractorTimeout     = 40
	defaultSocketTimeout        = 20
	defaultExtractorRetries     = 1
	defaultExtractorWorkers     = 8
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultLogOutput            = "stderr"
	minExtractorTimeout         = 5
	maxExtractorTimeout         = 120
	defaultConfigPathExpression = "~/.config/mediaprobe/config.toml"
	projectConfigName           = "mediaprobe.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind:              defaultBind,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			WriteTimeout:      defaultWriteTimeout,
			ShutdownTimeout:   defaultShutdownTimeout,
			MaxBodyBytes:      defaultMaxBodyBytes,
		},
		Extractor: Extractor{
			Binary:        defaultExtractorBinary,
			Timeout:       defaultExtractorTimeout,
			SocketTimeout: defaultSocketTimeout,
			Retries:       defaultExtractorRetries,
			Workers:       defaultExtractorWorkers,
		},
		Logging: Logging{
			Format:  defaultLogFormat,
			Level:   defaultLogLevel,
			Outputs: []string{defaultLogOutput},
		},
	}
}
