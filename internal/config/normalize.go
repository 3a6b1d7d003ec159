package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

func (c *Config) normalize() error {
	c.normalizeServer()
	if err := c.normalizeExtractor(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	c.Server.APIToken = strings.TrimSpace(c.Server.APIToken)
	if c.Server.APIToken == "" {
		c.Server.APIToken = strings.TrimSpace(os.Getenv("MEDIAPROBE_API_TOKEN"))
	}
	if c.Server.Bind == "" {
		c.Server.Bind = defaultBind
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		c.Server.ReadHeaderTimeout = defaultReadHeaderTimeout
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = defaultMaxBodyBytes
	}
}

func (c *Config) normalizeExtractor() error {
	c.Extractor.Binary = strings.TrimSpace(c.Extractor.Binary)
	if c.Extractor.Binary == "" {
		if value, ok := os.LookupEnv("YTDLP_PATH"); ok && strings.TrimSpace(value) != "" {
			c.Extractor.Binary = strings.TrimSpace(value)
		} else {
			c.Extractor.Binary = defaultExtractorBinary
		}
	}
	if strings.ContainsAny(c.Extractor.Binary, `/\`) || strings.HasPrefix(c.Extractor.Binary, "~") {
		expanded, err := expandPath(c.Extractor.Binary)
		if err != nil {
			return fmt.Errorf("extractor.binary: %w", err)
		}
		c.Extractor.Binary = expanded
	}
	if c.Extractor.Workers <= 0 {
		c.Extractor.Workers = defaultExtractorWorkers
	}
	if c.Extractor.SocketTimeout <= 0 {
		c.Extractor.SocketTimeout = defaultSocketTimeout
	}
	if c.Extractor.Retries < 0 {
		c.Extractor.Retries = 0
	}
	c.Extractor.Proxy = strings.TrimSpace(c.Extractor.Proxy)
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	outputs := lo.Compact(lo.Map(c.Logging.Outputs, func(path string, _ int) string {
		return strings.TrimSpace(path)
	}))
	for i, path := range outputs {
		if path == "stdout" || path == "stderr" {
			continue
		}
		expanded, err := expandPath(path)
		if err != nil {
			return fmt.Errorf("logging.outputs: %w", err)
		}
		outputs[i] = expanded
	}
	outputs = lo.Uniq(outputs)
	if len(outputs) == 0 {
		outputs = []string{defaultLogOutput}
	}
	c.Logging.Outputs = outputs
	return nil
}
