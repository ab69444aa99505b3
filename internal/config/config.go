// Package config loads layered settings: flags, VOICETRACER_* environment
// variables, $HOME/.voicetracer/config.yaml, then built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	EnvPrefix = "VOICETRACER"
	dirName   = ".voicetracer"
	fileName  = "config"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Session  SessionConfig  `mapstructure:"session"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	RateLimitPerMin int           `mapstructure:"rate_limit_per_min"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type AnalysisConfig struct {
	AIismLimit          int     `mapstructure:"ai_ism_limit"`
	VoiceShiftThreshold float64 `mapstructure:"voice_shift_threshold"`
	MinWords            int     `mapstructure:"min_words"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			Mode:            "release",
			RequestTimeout:  30 * time.Second,
			MaxBodyBytes:    2 << 20,
			AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:8080"},
			RateLimitPerMin: 60,
		},
		Cache:   CacheConfig{TTL: 15 * time.Minute},
		Session: SessionConfig{TTL: 2 * time.Hour},
		Analysis: AnalysisConfig{
			AIismLimit:          10,
			VoiceShiftThreshold: 0.05,
			MinWords:            100,
		},
		Log: LogConfig{Level: "info"},
	}
}

// SetDefaults registers every key with v so environment overrides apply
// even when no config file exists.
func SetDefaults(v *viper.Viper) {
	for key, value := range flatten("", Default().Settings()) {
		v.SetDefault(key, value)
	}
}

// Load reads configuration into v and decodes it. An empty cfgFile searches
// $HOME/.voicetracer; a missing file there is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("%w: read config: %v", ErrInvalidConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decode config: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Server.Port > 0 && c.Server.Port < 65536, "server.port %d out of range", c.Server.Port)
	check(c.Server.Mode == "debug" || c.Server.Mode == "release" || c.Server.Mode == "test",
		"server.mode %q must be debug, release or test", c.Server.Mode)
	check(c.Server.RequestTimeout > 0, "server.request_timeout must be positive")
	check(c.Server.MaxBodyBytes > 0, "server.max_body_bytes must be positive")
	check(c.Server.RateLimitPerMin >= 0, "server.rate_limit_per_min must not be negative")
	check(c.Cache.TTL > 0, "cache.ttl must be positive")
	check(c.Session.TTL > 0, "session.ttl must be positive")
	check(c.Analysis.AIismLimit >= 0, "analysis.ai_ism_limit must not be negative")
	check(c.Analysis.VoiceShiftThreshold >= 0 && c.Analysis.VoiceShiftThreshold <= 1,
		"analysis.voice_shift_threshold %v outside [0,1]", c.Analysis.VoiceShiftThreshold)
	check(c.Analysis.MinWords >= 0, "analysis.min_words must not be negative")

	var lvl slog.Level
	check(lvl.UnmarshalText([]byte(c.Log.Level)) == nil, "log.level %q is not a slog level", c.Log.Level)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// SlogLevel parses Log.Level, falling back to info.
func (c LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Settings renders c as nested maps with durations as strings, the shape
// written to config files.
func (c Config) Settings() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"port":               c.Server.Port,
			"mode":               c.Server.Mode,
			"request_timeout":    c.Server.RequestTimeout.String(),
			"max_body_bytes":     c.Server.MaxBodyBytes,
			"allowed_origins":    c.Server.AllowedOrigins,
			"rate_limit_per_min": c.Server.RateLimitPerMin,
		},
		"cache":   map[string]any{"ttl": c.Cache.TTL.String()},
		"session": map[string]any{"ttl": c.Session.TTL.String()},
		"analysis": map[string]any{
			"ai_ism_limit":          c.Analysis.AIismLimit,
			"voice_shift_threshold": c.Analysis.VoiceShiftThreshold,
			"min_words":             c.Analysis.MinWords,
		},
		"log": map[string]any{"level": c.Log.Level},
	}
}

// YAML encodes c in config file form.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c.Settings())
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// DefaultDir is $HOME/.voicetracer.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath is $HOME/.voicetracer/config.yaml.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName+".yaml"), nil
}

const fileHeader = `# VoiceTracer configuration
#
# Precedence (highest first):
#   1. CLI flags
#   2. Environment variables (VOICETRACER_*, e.g. VOICETRACER_SERVER_PORT)
#   3. This file
#   4. Built-in defaults

`

// WriteFile writes c to path. It refuses to overwrite an existing file
// unless force is set.
func WriteFile(path string, c Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}
	}
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func flatten(prefix string, m map[string]any) map[string]any {
	out := make(map[string]any)
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			for nk, nv := range flatten(key, nested) {
				out[nk] = nv
			}
			continue
		}
		out[key] = v
	}
	return out
}
