package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-config/cfgx"
)

// DefaultSettingsKey is the config name the base URL is persisted under.
const DefaultSettingsKey = "trails.settings"

// Config captures module-level configuration knobs. Feature packages
// (resolver, settings, block, transport) pull from these nested structs.
type Config struct {
	Trails       TrailsConfig       `mapstructure:"trails" koanf:"trails" json:"trails"`
	Localization LocalizationConfig `mapstructure:"localization" koanf:"localization" json:"localization"`
	Persistence  PersistenceConfig  `mapstructure:"persistence" koanf:"persistence" json:"persistence"`
	Server       ServerConfig       `mapstructure:"server" koanf:"server" json:"server"`
	Render       RenderConfig       `mapstructure:"render" koanf:"render" json:"render"`
	Metrics      MetricsConfig      `mapstructure:"metrics" koanf:"metrics" json:"metrics"`
}

// TrailsConfig scopes the resolver behaviour.
type TrailsConfig struct {
	// BaseURL seeds the setting until an administrator stores one.
	BaseURL     string `mapstructure:"base_url" koanf:"base_url" json:"base_url"`
	SettingsKey string `mapstructure:"settings_key" koanf:"settings_key" json:"settings_key"`
	// CandidateParams lists route params checked first, in order, when
	// looking for the viewed entity.
	CandidateParams []string `mapstructure:"candidate_params" koanf:"candidate_params" json:"candidate_params"`
}

// LocalizationConfig controls the locale used for form labels and block copy.
type LocalizationConfig struct {
	DefaultLocale string `mapstructure:"default_locale" koanf:"default_locale" json:"default_locale"`
}

// PersistenceConfig configures the settings database.
type PersistenceConfig struct {
	Driver      string `mapstructure:"driver" koanf:"driver" json:"driver"`
	DSN         string `mapstructure:"dsn" koanf:"dsn" json:"dsn"`
	AutoMigrate bool   `mapstructure:"auto_migrate" koanf:"auto_migrate" json:"auto_migrate"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Host string `mapstructure:"host" koanf:"host" json:"host"`
	Port string `mapstructure:"port" koanf:"port" json:"port"`
}

// RenderConfig tweaks the iframe markup.
type RenderConfig struct {
	Theme  string `mapstructure:"theme" koanf:"theme" json:"theme"`
	Width  string `mapstructure:"width" koanf:"width" json:"width"`
	Height string `mapstructure:"height" koanf:"height" json:"height"`
}

// MetricsConfig toggles the prometheus collectors.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled" koanf:"enabled" json:"enabled"`
	Namespace string `mapstructure:"namespace" koanf:"namespace" json:"namespace"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Trails: TrailsConfig{
			SettingsKey: DefaultSettingsKey,
		},
		Localization: LocalizationConfig{DefaultLocale: "en"},
		Persistence: PersistenceConfig{
			Driver:      "sqlite",
			DSN:         "file:trails.db?cache=shared&_busy_timeout=5000",
			AutoMigrate: true,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: "8482",
		},
		Render: RenderConfig{
			Theme:  "trails_iframe",
			Width:  "100%",
			Height: "600",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "trails",
		},
	}
}

// Validate ensures required fields are present and sane.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Trails.SettingsKey) == "" {
		return errors.New("trails.settings_key is required")
	}
	if c.Localization.DefaultLocale == "" {
		return errors.New("localization.default_locale is required")
	}
	for i, name := range c.Trails.CandidateParams {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("trails.candidate_params[%d] must not be empty", i)
		}
	}
	if c.Metrics.Enabled && strings.TrimSpace(c.Metrics.Namespace) == "" {
		return errors.New("metrics.namespace is required when metrics are enabled")
	}
	return nil
}

// Load decodes input (Config, *Config or a raw map) into a validated Config.
// Raw maps go through cfgx so hosts can hand over whatever their loader
// produced.
func Load(input any, opts ...LoadOption) (Config, error) {
	settings := loadOptions{}
	for _, opt := range opts {
		opt(&settings)
	}

	var cfg Config
	switch v := input.(type) {
	case nil:
		cfg = Defaults()
	case Config:
		cfg = v
	case *Config:
		if v != nil {
			cfg = *v
		}
	case map[string]any:
		buildOpts := append([]cfgx.Option[Config]{cfgx.WithDefaults(Defaults())}, settings.buildOpts...)
		built, err := cfgx.Build[Config](v, buildOpts...)
		if err != nil {
			return Config{}, err
		}
		cfg = built
	default:
		return Config{}, fmt.Errorf("unsupported config input type: %T", input)
	}

	cfg = cfg.withDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOption lets callers amend cfgx build options.
type LoadOption func(*loadOptions)

type loadOptions struct {
	buildOpts []cfgx.Option[Config]
}

// WithBuildOptions forwards cfgx options (duration hooks, preprocessors, etc.).
func WithBuildOptions(opts ...cfgx.Option[Config]) LoadOption {
	return func(lo *loadOptions) {
		lo.buildOpts = append(lo.buildOpts, opts...)
	}
}

func (c Config) withDefaults() Config {
	defaults := Defaults()

	c.Trails.BaseURL = strings.TrimSpace(c.Trails.BaseURL)
	if strings.TrimSpace(c.Trails.SettingsKey) == "" {
		c.Trails.SettingsKey = defaults.Trails.SettingsKey
	}
	if c.Localization.DefaultLocale == "" {
		c.Localization.DefaultLocale = defaults.Localization.DefaultLocale
	}
	if c.Persistence.Driver == "" {
		c.Persistence.Driver = defaults.Persistence.Driver
	}
	if c.Persistence.DSN == "" {
		c.Persistence.DSN = defaults.Persistence.DSN
	}
	if c.Server.Host == "" {
		c.Server.Host = defaults.Server.Host
	}
	if c.Server.Port == "" {
		c.Server.Port = defaults.Server.Port
	}
	if c.Render.Theme == "" {
		c.Render.Theme = defaults.Render.Theme
	}
	if c.Render.Width == "" {
		c.Render.Width = defaults.Render.Width
	}
	if c.Render.Height == "" {
		c.Render.Height = defaults.Render.Height
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = defaults.Metrics.Namespace
	}
	return c
}
