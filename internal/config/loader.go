package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/leynos/podbot/internal/coreerr"
	"github.com/leynos/podbot/internal/envport"
	"github.com/leynos/podbot/pkg/logger"
)

// CLIOverrides carries the global CLI flags that take highest precedence.
// An empty string/nil field means "not supplied on the command line".
type CLIOverrides struct {
	EngineSocket string
	Image        string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigPath forces the explicit --config path, taking precedence over
// every other discovery source.
func WithConfigPath(path string) LoaderOption {
	return func(l *Loader) { l.configPathOverride = path }
}

// Loader discovers, reads, and merges podbot's layered configuration.
type Loader struct {
	env                envport.Env
	configPathOverride string
}

// NewLoader builds a Loader bound to env for PODBOT_* lookups and HOME
// resolution.
func NewLoader(env envport.Env, opts ...LoaderOption) *Loader {
	l := &Loader{env: env}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves the configuration by merging, in increasing precedence:
// defaults, the discovered TOML file (if any), environment variables, and
// cli overrides.
func (l *Loader) Load(cli CLIOverrides) (AppConfig, error) {
	v := viper.New()
	v.SetConfigType("toml")
	applyDefaults(v)

	if path := l.resolveConfigPath(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, &coreerr.OrthoConfigError{
				Message: fmt.Sprintf("reading config file %s: %s", path, err),
				Err:     err,
			}
		}
	}

	var cfg AppConfig
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, decodeHook); err != nil {
		return AppConfig{}, &coreerr.OrthoConfigError{Message: fmt.Sprintf("parsing configuration: %s", err), Err: err}
	}

	if err := applyEnvOverrides(&cfg, l.env); err != nil {
		return AppConfig{}, err
	}

	applyCLIOverrides(&cfg, cli)

	return cfg, nil
}

// applyCLIOverrides applies the highest-precedence layer. Empty fields
// leave the prior layer's value untouched.
func applyCLIOverrides(cfg *AppConfig, cli CLIOverrides) {
	if cli.EngineSocket != "" {
		cfg.EngineSocket = cli.EngineSocket
	}
	if cli.Image != "" {
		cfg.Image = cli.Image
	}
}

// resolveConfigPath implements the discovery order: explicit override,
// PODBOT_CONFIG_PATH, the XDG-default path, then the dotfile fallback.
// Implicit candidates are skipped unless the file actually exists;
// explicit ones (CLI, env) are returned unconditionally so a missing file
// there surfaces a clear read error rather than silently falling through.
func (l *Loader) resolveConfigPath() string {
	if l.configPathOverride != "" {
		return l.configPathOverride
	}
	if p, ok := l.env.LookupEnv("PODBOT_CONFIG_PATH"); ok && p != "" {
		return p
	}

	configHome := l.env.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := l.env.Home(); err == nil && home != "" {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		candidate := filepath.Join(configHome, "podbot", "config.toml")
		if fileExists(candidate) {
			return candidate
		}
	}

	if home, err := l.env.Home(); err == nil && home != "" {
		fallback := filepath.Join(home, ".podbot.toml")
		if fileExists(fallback) {
			return fallback
		}
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug().Err(err).Str("path", path).Msg("unexpected error checking config file")
		}
		return false
	}
	return !info.IsDir()
}
