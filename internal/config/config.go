package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
)

// Config holds everything the client needs to reach the backend and run.
type Config struct {
	URL          string            `yaml:"url"`
	Headers      map[string]string `yaml:"headers"`
	Timeout      time.Duration     `yaml:"timeout"`
	ExampleDelay time.Duration     `yaml:"example_delay"`
	LogFile      string            `yaml:"log_file"`
	LogLevel     string            `yaml:"log_level"`
}

const (
	DefaultURL          = "http://localhost:5000"
	DefaultExampleDelay = 500 * time.Millisecond
	DefaultLogLevel     = "info"
)

func Default() *Config {
	return &Config{
		URL:          DefaultURL,
		Headers:      map[string]string{},
		ExampleDelay: DefaultExampleDelay,
		LogLevel:     DefaultLogLevel,
	}
}

func (c *Config) Validate() error {
	if _, err := c.ParsedURL(); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.ExampleDelay < 0 {
		return fmt.Errorf("example_delay must not be negative, got %s", c.ExampleDelay)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

func (c *Config) ParsedURL() (*url.URL, error) {
	u, err := url.Parse(c.URL)
	if err != nil {
		return nil, fmt.Errorf("could not parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid url %q: scheme must be http or https", c.URL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid url %q: missing host", c.URL)
	}

	return u, nil
}

func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
}

// merge copies the values set in other over c.
func (c *Config) merge(other *Config) {
	if other.URL != "" {
		c.URL = other.URL
	}
	for k, v := range other.Headers {
		c.Headers[k] = v
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	if other.ExampleDelay != 0 {
		c.ExampleDelay = other.ExampleDelay
	}
	if other.LogFile != "" {
		c.LogFile = other.LogFile
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}
