package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIBase is the aggregation service the original tool always talked to.
	DefaultAPIBase = "http://localhost:3000/api"
	// DefaultLimit bounds the number of postings requested per search.
	DefaultLimit     = 20
	DefaultTimeout   = 30 * time.Second
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Environment / .env keys.
const (
	EnvAPIBase   = "JOBSKILL_API_BASE"
	EnvLimit     = "JOBSKILL_LIMIT"
	EnvTimeout   = "JOBSKILL_TIMEOUT"
	EnvLogLevel  = "JOBSKILL_LOG_LEVEL"
	EnvLogFormat = "JOBSKILL_LOG_FORMAT"
)

// Config is the in-memory representation of ~/.jobskill/config.yaml.
// Zero values mean "not set" and are filled from defaults by Resolve.
type Config struct {
	APIBase   string        `yaml:"api_base,omitempty"`
	Limit     int           `yaml:"limit,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
	LogLevel  string        `yaml:"log_level,omitempty"`
	LogFormat string        `yaml:"log_format,omitempty"`
}

// Dir returns the absolute path to ~/.jobskill/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".jobskill"), nil
}

// Path returns the absolute path to ~/.jobskill/config.yaml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIBase:   DefaultAPIBase,
		Limit:     DefaultLimit,
		Timeout:   DefaultTimeout,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// LoadFile reads and parses ~/.jobskill/config.yaml.
// A missing file yields an empty Config and no error.
func LoadFile() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve builds the effective configuration. Precedence, highest first:
// process environment, ~/.jobskill/.env, ~/.jobskill/config.yaml, defaults.
func Resolve() (*Config, error) {
	cfg := Default()

	file, err := LoadFile()
	if err != nil {
		return nil, err
	}
	cfg.merge(file)

	dotenv, err := LoadDotEnv()
	if err != nil {
		return nil, err
	}
	lookup := func(key string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(dotenv[key])
	}

	var env Config
	env.APIBase = lookup(EnvAPIBase)
	env.LogLevel = lookup(EnvLogLevel)
	env.LogFormat = lookup(EnvLogFormat)
	if v := lookup(EnvLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive integer", EnvLimit, v)
		}
		env.Limit = n
	}
	if v := lookup(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive duration (e.g. 30s)", EnvTimeout, v)
		}
		env.Timeout = d
	}
	cfg.merge(&env)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge copies every set field of o into c.
func (c *Config) merge(o *Config) {
	if o == nil {
		return
	}
	if o.APIBase != "" {
		c.APIBase = o.APIBase
	}
	if o.Limit != 0 {
		c.Limit = o.Limit
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFormat != "" {
		c.LogFormat = o.LogFormat
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBase) == "" {
		return fmt.Errorf("api base URL is empty")
	}
	if !strings.HasPrefix(c.APIBase, "http://") && !strings.HasPrefix(c.APIBase, "https://") {
		return fmt.Errorf("api base URL %q must start with http:// or https://", c.APIBase)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// Save marshals cfg and writes it to ~/.jobskill/config.yaml while holding
// an exclusive lock on config.yaml.lock. It returns the path written.
func Save(cfg *Config) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("cannot create config dir: %w", err)
	}

	l := flock.New(path + ".lock")
	locked, err := l.TryLock()
	if err != nil {
		return "", fmt.Errorf("cannot acquire config lock: %w", err)
	}
	if !locked {
		return "", fmt.Errorf("config is being written by another process (lock: %s)", path+".lock")
	}
	defer func() { _ = l.Unlock() }()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("cannot marshal config: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("cannot write config %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return path, nil
}
