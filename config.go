package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/spotdemo4/tamil-insight/internal/config"
	"github.com/spotdemo4/tamil-insight/internal/tui"
)

type options struct {
	configPath string
	url        string
	timeout    time.Duration
	logLevel   string
	text       string
	format     string
}

func (o *options) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "config file path")
	flags.StringVar(&o.url, "url", "", "analysis backend url (env TI_URL)")
	flags.DurationVar(&o.timeout, "timeout", 0, "request timeout, 0 for none (env TI_TIMEOUT)")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error (env TI_LOG_LEVEL)")

	cmd.Flags().StringVarP(&o.text, "text", "t", "", "analyze this text once and print the result ('-' reads stdin)")
	cmd.Flags().StringVarP(&o.format, "format", "f", "text", "one-shot output format: text, html, json")
}

// getConfig loads the layered configuration and applies flags set on cmd.
func (o *options) getConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.NewLoader(tui.PrintWarn).Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		c.URL = o.url
	}
	if flags.Changed("timeout") {
		c.Timeout = o.timeout
	}
	if flags.Changed("log-level") {
		c.LogLevel = o.logLevel
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// newLogger writes to the configured log file when the terminal belongs to
// the UI, and to stderr otherwise.
func newLogger(c *config.Config, toFile bool) (*slog.Logger, io.Closer, error) {
	level, err := c.Level()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)

	if toFile {
		w = io.Discard

		if c.LogFile != "" {
			f, err := openLogFile(c.LogFile)
			if err != nil {
				tui.PrintWarn("warning: could not open log file: %v", err)
			} else {
				w = f
				closer = f
			}
		}
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closer, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("could not create log dir: %w", err)
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) // #nosec G304 -- configured path
}
