package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strataviz/strata/pkg/cache"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Chart != "area" {
		t.Errorf("Chart = %q, want area", cfg.Chart)
	}
	if cfg.Width != 800 || cfg.Height != 400 {
		t.Errorf("Frame = %dx%d, want 800x400", cfg.Width, cfg.Height)
	}
	if cfg.Cache.Backend != "file" {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Serve.Addr = %q, want :8080", cfg.Serve.Addr)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
style = "vivid"
width = 1200

[cache]
backend = "none"

[serve]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Style != "vivid" {
		t.Errorf("Style = %q, want vivid", cfg.Style)
	}
	if cfg.Width != 1200 {
		t.Errorf("Width = %d, want 1200", cfg.Width)
	}
	// Unset keys keep their defaults
	if cfg.Height != 400 {
		t.Errorf("Height = %d, want default 400", cfg.Height)
	}
	if cfg.Chart != "area" {
		t.Errorf("Chart = %q, want default area", cfg.Chart)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Serve.Addr != ":9090" {
		t.Errorf("Serve.Addr = %q, want :9090", cfg.Serve.Addr)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("explicit missing config path should fail")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`style = [unclosed`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed config should fail")
	}
}

func TestLoadConfigDefaultPathAbsent(t *testing.T) {
	// Point XDG_CONFIG_HOME at an empty dir so the default path is absent.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig with absent default file: %v", err)
	}
	if cfg.Chart != DefaultConfig().Chart {
		t.Error("absent default config should yield defaults")
	}
}

func TestOpenCache(t *testing.T) {
	none, err := openCache(CacheConfig{Backend: "none"})
	if err != nil {
		t.Fatalf("none backend: %v", err)
	}
	if _, ok := none.(*cache.NullCache); !ok {
		t.Errorf("none backend = %T, want *cache.NullCache", none)
	}

	file, err := openCache(CacheConfig{Backend: "file", Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	if _, ok := file.(*cache.FileCache); !ok {
		t.Errorf("file backend = %T, want *cache.FileCache", file)
	}

	if _, err := openCache(CacheConfig{Backend: "memcached"}); err == nil {
		t.Error("unknown backend should fail")
	}
}
