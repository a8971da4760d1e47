package folio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/eringen/folio/content"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	want := SiteConfig{
		Name:             "Blog",
		URL:              "http://localhost:3000",
		Addr:             ":3000",
		ContentDir:       "content/posts",
		Mode:             content.ModeProduction,
		LogLevel:         "info",
		LogFormat:        "text",
		SearchRateLimit:  30,
		SearchRateWindow: time.Minute,
		CacheMaxAge:      5 * time.Minute,
		ShutdownTimeout:  10 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
name: Haejun's Notes
url: https://haejun.example
author: Haejun
contentDir: site/posts
mode: dev
logFormat: json
searchRateWindow: 30s
cacheMaxAge: 1h
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Haejun's Notes" {
		t.Errorf("Name = %q, want %q", cfg.Name, "Haejun's Notes")
	}
	if cfg.ContentDir != "site/posts" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "site/posts")
	}
	if cfg.Mode != content.ModeDevelopment {
		t.Errorf("Mode = %q, want %q", cfg.Mode, content.ModeDevelopment)
	}
	if cfg.SearchRateWindow != 30*time.Second {
		t.Errorf("SearchRateWindow = %v, want 30s", cfg.SearchRateWindow)
	}
	if cfg.CacheMaxAge != time.Hour {
		t.Errorf("CacheMaxAge = %v, want 1h", cfg.CacheMaxAge)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want default :3000", cfg.Addr)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "addr: \":4000\"\nmode: production\n")
	t.Setenv("FOLIO_ADDR", ":8080")
	t.Setenv("FOLIO_MODE", "development")
	t.Setenv("FOLIO_CONTENT_DIR", "/srv/posts")
	t.Setenv("FOLIO_SEARCH_RATE_LIMIT", "5")
	t.Setenv("FOLIO_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("FOLIO_NAME", "From Env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.Mode != content.ModeDevelopment {
		t.Errorf("Mode = %q, want %q", cfg.Mode, content.ModeDevelopment)
	}
	if cfg.ContentDir != "/srv/posts" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "/srv/posts")
	}
	if cfg.Name != "From Env" {
		t.Errorf("Name = %q, want %q", cfg.Name, "From Env")
	}
	if cfg.SearchRateLimit != 5 {
		t.Errorf("SearchRateLimit = %d, want 5", cfg.SearchRateLimit)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 3s", cfg.ShutdownTimeout)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		env  map[string]string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
		},
		{
			name: "bad yaml",
			path: func(t *testing.T) string { return writeConfig(t, "name: [unclosed\n") },
		},
		{
			name: "unknown mode",
			path: func(t *testing.T) string { return writeConfig(t, "mode: staging\n") },
		},
		{
			name: "bad duration env",
			path: func(t *testing.T) string { return "" },
			env:  map[string]string{"FOLIO_CACHE_MAX_AGE": "soon"},
		},
		{
			name: "bad rate limit env",
			path: func(t *testing.T) string { return "" },
			env:  map[string]string{"FOLIO_SEARCH_RATE_LIMIT": "lots"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadConfig(tt.path(t)); err == nil {
				t.Errorf("LoadConfig succeeded, want error")
			}
		})
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("FOLIO_TEST_SET", "value")
	if got := EnvOr("FOLIO_TEST_SET", "fallback"); got != "value" {
		t.Errorf("EnvOr(set) = %q, want %q", got, "value")
	}
	if got := EnvOr("FOLIO_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("EnvOr(unset) = %q, want %q", got, "fallback")
	}
}
