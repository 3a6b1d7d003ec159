package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateExtractor(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind must be host:port: %w", err)
	}
	if c.Server.WriteTimeout < 0 {
		return errors.New("server.write_timeout must not be negative")
	}
	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.Extractor.Timeout {
		return errors.New("server.write_timeout must be greater than extractor.timeout")
	}
	return nil
}

func (c *Config) validateExtractor() error {
	if c.Extractor.Timeout < minExtractorTimeout || c.Extractor.Timeout > maxExtractorTimeout {
		return fmt.Errorf("extractor.timeout must be between %d and %d seconds", minExtractorTimeout, maxExtractorTimeout)
	}
	if c.Extractor.SocketTimeout > c.Extractor.Timeout {
		return errors.New("extractor.socket_timeout must not exceed extractor.timeout")
	}
	if c.Extractor.Retries > 10 {
		return errors.New("extractor.retries must be 10 or fewer")
	}
	if c.Extractor.Proxy != "" {
		parsed, err := url.Parse(c.Extractor.Proxy)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("extractor.proxy must be an absolute URL, got %q", c.Extractor.Proxy)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (valid: console, json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (valid: debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}
