package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains HTTP listener configuration. Durations are in seconds.
type Server struct {
	Bind              string `toml:"bind"`
	ReadHeaderTimeout int    `toml:"read_header_timeout"`
	WriteTimeout      int    `toml:"write_timeout"`
	ShutdownTimeout   int    `toml:"shutdown_timeout"`
	MaxBodyBytes      int64  `toml:"max_body_bytes"`
	// APIToken enables bearer authentication on /api routes when set.
	APIToken string `toml:"api_token"`
}

// Extractor contains settings for the external extraction engine (yt-dlp).
type Extractor struct {
	Binary string `toml:"binary"`
	// Timeout bounds a single extraction call, in seconds.
	Timeout int `toml:"timeout"`
	// SocketTimeout is handed to the engine for each outbound connection.
	SocketTimeout int    `toml:"socket_timeout"`
	Retries       int    `toml:"retries"`
	Workers       int    `toml:"workers"`
	Proxy         string `toml:"proxy"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format  string   `toml:"format"`
	Level   string   `toml:"level"`
	Outputs []string `toml:"outputs"`
}

// Config encapsulates all configuration values for mediaprobe.
//
// Configuration sections by subsystem:
//   - Server: HTTP bind address and timeouts
//   - Extractor: yt-dlp binary, timeouts, retry and concurrency limits
//   - Logging: log format and level
type Config struct {
	Server    Server    `toml:"server"`
	Extractor Extractor `toml:"extractor"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPathExpression)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// values normalized. The second return value is the resolved path and the third reports
// whether a file was actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPathExpression)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// ExtractionTimeout returns the bound applied to each extraction call.
func (c *Config) ExtractionTimeout() time.Duration {
	return time.Duration(c.Extractor.Timeout) * time.Second
}

// ShutdownTimeout returns the grace period for in-flight requests on shutdown.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
