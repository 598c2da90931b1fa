package folio

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides: FOLIO_SESSION_SECRET
// sets session_secret.
const EnvPrefix = "FOLIO_"

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `yaml:"name" koanf:"name"`               // Site name (default "Portfolio")
	URL         string `yaml:"url" koanf:"url"`                 // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description" koanf:"description"` // Meta description
	Author      string `yaml:"author" koanf:"author"`

	Addr      string `yaml:"addr" koanf:"addr"`             // Listen address (default ":3000")
	StaticDir string `yaml:"static_dir" koanf:"static_dir"` // User static assets (default "public")

	SessionSecret string `yaml:"session_secret" koanf:"session_secret"` // Required: signs the theme session cookie
	CookieSecure  bool   `yaml:"cookie_secure" koanf:"cookie_secure"`   // Set true for HTTPS

	AnalyticsEnabled       bool   `yaml:"analytics_enabled" koanf:"analytics_enabled"`
	AnalyticsDatabasePath  string `yaml:"analytics_database_path" koanf:"analytics_database_path"` // default "data/analytics.db"
	AnalyticsRetentionDays int    `yaml:"analytics_retention_days" koanf:"analytics_retention_days"`

	// FragmentRateLimit caps nav fragment requests per IP per minute.
	FragmentRateLimit int `yaml:"fragment_rate_limit" koanf:"fragment_rate_limit"`

	LogLevel string `yaml:"log_level" koanf:"log_level"` // debug, info, warn, error
	LogDev   bool   `yaml:"log_dev" koanf:"log_dev"`     // human-readable console logs
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() SiteConfig {
	cfg := SiteConfig{AnalyticsEnabled: true}
	cfg.setDefaults()
	return cfg
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.AnalyticsRetentionDays == 0 {
		c.AnalyticsRetentionDays = 365
	}
	if c.FragmentRateLimit == 0 {
		c.FragmentRateLimit = 600
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadConfig reads the YAML file at path if it exists, then overlays
// FOLIO_* environment variables.
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return SiteConfig{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Validate checks that required settings are present and values are sane.
func (c SiteConfig) Validate() error {
	var errs []error
	if c.SessionSecret == "" {
		errs = append(errs, errors.New("session_secret is required"))
	}
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.FragmentRateLimit < 0 {
		errs = append(errs, errors.New("fragment_rate_limit must be non-negative"))
	}
	if c.AnalyticsRetentionDays < 0 {
		errs = append(errs, errors.New("analytics_retention_days must be non-negative"))
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log_level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// YAML renders the configuration with the session secret redacted.
func (c SiteConfig) YAML() ([]byte, error) {
	if c.SessionSecret != "" {
		c.SessionSecret = "[redacted]"
	}
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// NewLogger builds the zap logger described by the config.
func (c SiteConfig) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.LogDev {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}
