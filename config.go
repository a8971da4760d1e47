package folio

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eringen/folio/content"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Blog")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description
	Author      string `yaml:"author"`      // Default author for posts without one

	Addr       string       `yaml:"addr"`       // Listen address (default ":3000")
	ContentDir string       `yaml:"contentDir"` // Post directory (default "content/posts")
	Mode       content.Mode `yaml:"mode"`       // production or development (default production)

	LogLevel  string `yaml:"logLevel"`  // debug, info, warn, error (default "info")
	LogFormat string `yaml:"logFormat"` // text or json (default "text")

	SearchRateLimit  int           `yaml:"searchRateLimit"`  // Searches per window per IP (default 30)
	SearchRateWindow time.Duration `yaml:"searchRateWindow"` // default 1min
	CacheMaxAge      time.Duration `yaml:"cacheMaxAge"`      // Cache-Control max-age for API responses (default 5min)
	ShutdownTimeout  time.Duration `yaml:"shutdownTimeout"`  // Graceful shutdown budget (default 10s)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/posts"
	}
	if c.Mode == "" {
		c.Mode = content.ModeProduction
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.SearchRateLimit == 0 {
		c.SearchRateLimit = 30
	}
	if c.SearchRateWindow == 0 {
		c.SearchRateWindow = time.Minute
	}
	if c.CacheMaxAge == 0 {
		c.CacheMaxAge = 5 * time.Minute
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// LoadConfig reads a YAML config file (if path is non-empty), applies FOLIO_*
// environment overrides and fills defaults for anything still unset.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	cfg.setDefaults()

	mode, err := content.ParseMode(string(cfg.Mode))
	if err != nil {
		return cfg, err
	}
	cfg.Mode = mode
	return cfg, nil
}

// applyEnvOverrides reads FOLIO_* environment variables over cfg.
func applyEnvOverrides(cfg *SiteConfig) error {
	cfg.Name = EnvOr("FOLIO_NAME", cfg.Name)
	cfg.URL = EnvOr("FOLIO_URL", cfg.URL)
	cfg.Description = EnvOr("FOLIO_DESCRIPTION", cfg.Description)
	cfg.Author = EnvOr("FOLIO_AUTHOR", cfg.Author)
	cfg.Addr = EnvOr("FOLIO_ADDR", cfg.Addr)
	cfg.ContentDir = EnvOr("FOLIO_CONTENT_DIR", cfg.ContentDir)
	cfg.Mode = content.Mode(EnvOr("FOLIO_MODE", string(cfg.Mode)))
	cfg.LogLevel = EnvOr("FOLIO_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = EnvOr("FOLIO_LOG_FORMAT", cfg.LogFormat)
	if v := os.Getenv("FOLIO_SEARCH_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FOLIO_SEARCH_RATE_LIMIT: %w", err)
		}
		cfg.SearchRateLimit = n
	}
	for key, dst := range map[string]*time.Duration{
		"FOLIO_SEARCH_RATE_WINDOW": &cfg.SearchRateWindow,
		"FOLIO_CACHE_MAX_AGE":      &cfg.CacheMaxAge,
		"FOLIO_SHUTDOWN_TIMEOUT":   &cfg.ShutdownTimeout,
	} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
	}
	return nil
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

// WithProvider serves catalogs from p instead of a provider over
// Config.ContentDir.
func WithProvider(p *content.Provider) Option {
	return func(a *App) {
		a.Provider = p
	}
}

// WithLogger sets the application logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}
