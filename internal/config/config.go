package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/egrn/pkg/egrn"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override egrn.yaml.
const (
	EnvCollision = "EGRN_COLLISION"
	EnvURLPrefix = "EGRN_URL_PREFIX"
	EnvLogFormat = "EGRN_LOG_FORMAT"
)

type RetryConfig struct {
	MaxAttempts  *int   `yaml:"max_attempts,omitempty"`
	InitialDelay string `yaml:"initial_delay,omitempty"`
	MaxDelay     string `yaml:"max_delay,omitempty"`
}

type ProjectConfig struct {
	Collision     string      `yaml:"collision,omitempty"`
	URLFilePrefix string      `yaml:"url_file_prefix,omitempty"`
	LogFormat     string      `yaml:"log_format,omitempty"`
	Retry         RetryConfig `yaml:"retry"`
}

const ConfigFileName = "egrn.yaml"

// Load reads egrn.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file from an explicit path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %v: %w", filepath.Base(path), err, egrn.ErrInvalidConfig)
	}
	return &cfg, nil
}

// RetrySettings are the effective retry parameters for filesystem operations.
type RetrySettings struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// Settings are the effective values after applying environment overrides to
// a project config and filling in defaults.
type Settings struct {
	Collision     egrn.CollisionPolicy
	URLFilePrefix string
	LogFormat     string
	Retry         RetrySettings
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Collision:     egrn.CollisionSuffix,
		URLFilePrefix: egrn.DefaultURLFilePrefix,
		LogFormat:     "text",
		Retry: RetrySettings{
			MaxAttempts:  egrn.DefaultRetryMaxAttempts,
			InitialDelay: egrn.DefaultRetryInitialDelay,
			MaxDelay:     egrn.DefaultRetryMaxDelay,
		},
	}
}

// Resolve merges cfg (which may be nil) with environment variables read
// through getenv. Environment values win over the file.
func Resolve(cfg *ProjectConfig, getenv func(string) string) (Settings, error) {
	s := Defaults()
	if getenv == nil {
		getenv = os.Getenv
	}
	if cfg == nil {
		cfg = &ProjectConfig{}
	}

	collision := firstNonEmpty(getenv(EnvCollision), cfg.Collision)
	if collision != "" {
		policy, err := egrn.ParseCollisionPolicy(collision)
		if err != nil {
			return s, err
		}
		s.Collision = policy
	}

	if prefix := firstNonEmpty(getenv(EnvURLPrefix), cfg.URLFilePrefix); prefix != "" {
		s.URLFilePrefix = prefix
	}
	if format := firstNonEmpty(getenv(EnvLogFormat), cfg.LogFormat); format != "" {
		s.LogFormat = strings.ToLower(format)
	}

	if cfg.Retry.MaxAttempts != nil {
		if *cfg.Retry.MaxAttempts < 0 {
			return s, fmt.Errorf("retry.max_attempts must not be negative: %w", egrn.ErrInvalidConfig)
		}
		s.Retry.MaxAttempts = *cfg.Retry.MaxAttempts
	}
	var err error
	if s.Retry.InitialDelay, err = parseDuration("retry.initial_delay", cfg.Retry.InitialDelay, s.Retry.InitialDelay); err != nil {
		return s, err
	}
	if s.Retry.MaxDelay, err = parseDuration("retry.max_delay", cfg.Retry.MaxDelay, s.Retry.MaxDelay); err != nil {
		return s, err
	}
	if s.Retry.MaxDelay < s.Retry.InitialDelay {
		return s, fmt.Errorf("retry.max_delay (%s) is shorter than retry.initial_delay (%s): %w",
			s.Retry.MaxDelay, s.Retry.InitialDelay, egrn.ErrInvalidConfig)
	}
	return s, nil
}

func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, egrn.ErrInvalidConfig)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive: %w", key, egrn.ErrInvalidConfig)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
