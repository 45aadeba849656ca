// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads Tecken settings from defaults, config.toml, TECKEN_*
// environment variables and command line overrides, in increasing precedence.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/logger"
	"github.com/janderssonse/tecken/internal/platform"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. TECKEN_CATALOG_SOURCE.
const EnvPrefix = "TECKEN"

// Config keys, also usable as override keys.
const (
	KeyCatalogSource     = "catalog.source"
	KeyCatalogMerge      = "catalog.merge"
	KeyCatalogTimeout    = "catalog.timeout"
	KeyCatalogWatch      = "catalog.watch"
	KeyHideOtherCategory = "catalog.hide_other_category"
	KeyLocale            = "ui.locale"
	KeySearchDebounce    = "ui.search_debounce"
	KeyNotifyDuration    = "ui.notify_duration"
	KeyCopiedDuration    = "ui.copied_duration"
	KeyLogFile           = "log.file"
	KeyLogLevel          = "log.level"
)

// ErrInvalidConfig marks validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete runtime configuration.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// CatalogConfig controls where symbols come from.
type CatalogConfig struct {
	Source            string        `mapstructure:"source"`
	Merge             bool          `mapstructure:"merge"`
	Timeout           time.Duration `mapstructure:"timeout"`
	Watch             bool          `mapstructure:"watch"`
	HideOtherCategory bool          `mapstructure:"hide_other_category"`
}

// UIConfig controls the interactive picker.
type UIConfig struct {
	Locale         string        `mapstructure:"locale"`
	SearchDebounce time.Duration `mapstructure:"search_debounce"`
	NotifyDuration time.Duration `mapstructure:"notify_duration"`
	CopiedDuration time.Duration `mapstructure:"copied_duration"`
}

// LogConfig controls the log sink.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// LoadOptions selects the config file and command line overrides.
type LoadOptions struct {
	File      string                 // explicit config file; must exist when set
	Overrides map[string]interface{} // highest precedence, keyed by the Key* constants
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCatalogSource, "")
	v.SetDefault(KeyCatalogMerge, false)
	v.SetDefault(KeyCatalogTimeout, catalog.DefaultTimeout)
	v.SetDefault(KeyCatalogWatch, true)
	v.SetDefault(KeyHideOtherCategory, false)
	v.SetDefault(KeyLocale, catalog.LocaleChinese)
	v.SetDefault(KeySearchDebounce, 300*time.Millisecond)
	v.SetDefault(KeyNotifyDuration, 2*time.Second)
	v.SetDefault(KeyCopiedDuration, 1500*time.Millisecond)
	v.SetDefault(KeyLogFile, platform.LogFilePath())
	v.SetDefault(KeyLogLevel, "info")
}

// Default returns the configuration with nothing but defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// Load resolves the configuration.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := readConfigFile(v, opts.File); err != nil {
		return nil, err
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "failed to decode configuration"), ErrInvalidConfig)
	}

	cfg.Catalog.Source = strings.TrimSpace(cfg.Catalog.Source)
	cfg.Log.File = platform.ExpandPath(cfg.Log.File)

	return &cfg, nil
}

func readConfigFile(v *viper.Viper, explicit string) error {
	path := explicit
	if path == "" {
		path = platform.ConfigFilePath()
		if !platform.FileExists(path) {
			return nil
		}
	}

	v.SetConfigFile(platform.ExpandPath(path))
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return errors.WithHint(
			errors.Mark(errors.Wrapf(err, "failed to read config file %s", path), ErrInvalidConfig),
			"check the file exists and is valid TOML",
		)
	}

	logger.Debugw("Config file loaded", logger.FieldPath, path)

	return nil
}

// Validate rejects values the rest of the program cannot work with.
func (c *Config) Validate() error {
	var problems []string

	if !catalog.ValidLocale(c.UI.Locale) {
		problems = append(problems, "ui.locale must be zh or en, got "+c.UI.Locale)
	}

	durations := []struct {
		key   string
		value time.Duration
	}{
		{KeyCatalogTimeout, c.Catalog.Timeout},
		{KeySearchDebounce, c.UI.SearchDebounce},
		{KeyNotifyDuration, c.UI.NotifyDuration},
		{KeyCopiedDuration, c.UI.CopiedDuration},
	}

	for _, d := range durations {
		if d.value <= 0 {
			problems = append(problems, d.key+" must be positive")
		}
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level must be debug, info, warn or error")
	}

	if len(problems) == 0 {
		return nil
	}

	return errors.Mark(errors.Newf("%s", strings.Join(problems, "; ")), ErrInvalidConfig)
}
