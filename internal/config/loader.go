package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "tamil-insight"
	envFile    = appName + ".env"
	envPrefix  = "TI_"
	headerEnv  = envPrefix + "HEADER_"
	configFile = "config.yaml"
)

// WarnFunc reports a problem that does not stop loading.
type WarnFunc func(format string, args ...any)

type Loader struct {
	configDir string
	cacheDir  string
	warn      WarnFunc
}

// NewLoader looks up the user config and cache dirs. A nil warn discards
// warnings.
func NewLoader(warn WarnFunc) *Loader {
	if warn == nil {
		warn = func(string, ...any) {}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		warn("warning: could not get config dir: %v", err)
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		warn("warning: could not get cache dir: %v", err)
	}

	return &Loader{
		configDir: configDir,
		cacheDir:  cacheDir,
		warn:      warn,
	}
}

// Load builds the configuration from, lowest priority first: defaults, the
// YAML file (customPath if given), the dotenv file and the environment.
// The result is not validated; callers validate after applying flags.
func (l *Loader) Load(customPath string) (*Config, error) {
	c := Default()

	// YAML file
	path := customPath
	if path == "" && l.configDir != "" {
		path = filepath.Join(l.configDir, appName, configFile)
	}
	if path != "" {
		err := l.loadFile(c, path)
		switch {
		case err == nil:
		case customPath == "" && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("could not load %s: %w", path, err)
		}
	}

	// Get .env file
	if l.configDir != "" {
		path := filepath.Join(l.configDir, envFile)
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			l.warn("warning: could not load %s: %v", path, err)
		}
	}

	// Get env vars
	if err := l.loadEnv(c); err != nil {
		return nil, err
	}

	if c.LogFile == "" && l.cacheDir != "" {
		c.LogFile = filepath.Join(l.cacheDir, appName, appName+".log")
	}

	return c, nil
}

func (l *Loader) loadFile(c *Config, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- user supplied config path
	if err != nil {
		return err
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	c.merge(&file)
	return nil
}

func (l *Loader) loadEnv(c *Config) error {
	if v := os.Getenv(envPrefix + "URL"); v != "" {
		c.URL = v
	}
	if v := os.Getenv(envPrefix + "LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	durations := map[string]*time.Duration{
		envPrefix + "TIMEOUT":       &c.Timeout,
		envPrefix + "EXAMPLE_DELAY": &c.ExampleDelay,
	}
	for name, dst := range durations {
		v := os.Getenv(name)
		if v == "" {
			continue
		}

		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid value for '%s': %w", name, err)
		}
		*dst = d
	}

	// Get headers
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, headerEnv) {
			continue
		}

		kv := strings.SplitN(e, "=", 2)
		if len(kv) != 2 {
			continue
		}

		c.Headers[strings.TrimPrefix(kv[0], headerEnv)] = kv[1]
	}

	return nil
}
