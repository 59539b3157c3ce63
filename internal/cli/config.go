package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/strataviz/strata/pkg/cache"
	"github.com/strataviz/strata/pkg/pipeline"
)

// Config holds file-based defaults for the CLI. Command flags override
// everything here; the file only shifts the defaults.
type Config struct {
	Chart  string `toml:"chart"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Style  string `toml:"style"`
	Curve  string `toml:"curve"`
	Offset string `toml:"offset"`
	Order  string `toml:"order"`

	Cache CacheConfig `toml:"cache"`
	Serve ServeConfig `toml:"serve"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo", "none".
	Backend string `toml:"backend"`
	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the built-in defaults used when no config file is
// present.
func DefaultConfig() Config {
	return Config{
		Chart:  pipeline.DefaultChart,
		Width:  pipeline.DefaultWidth,
		Height: pipeline.DefaultHeight,
		Style:  pipeline.DefaultStyle,
		Curve:  pipeline.DefaultCurve,
		Offset: pipeline.DefaultOffset,
		Order:  pipeline.DefaultOrder,
		Cache:  CacheConfig{Backend: "file"},
		Serve:  ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig reads a TOML config file and merges it over the defaults.
//
// With an explicit path, a missing or malformed file is an error. With an
// empty path, the default location (~/.config/strata/config.toml) is tried
// and silently skipped when absent.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config file location, empty if the home
// directory cannot be determined.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// pipelineOptions converts the config defaults into pipeline options.
func (cfg Config) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Chart:  cfg.Chart,
		Width:  cfg.Width,
		Height: cfg.Height,
		Style:  cfg.Style,
		Curve:  cfg.Curve,
		Offset: cfg.Offset,
		Order:  cfg.Order,
	}
}

// openCache builds the configured cache backend.
// A failing network backend falls back to no caching; chart rendering should
// not depend on cache availability.
func openCache(cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "none":
		return cache.NewNullCache(), nil

	case "redis":
		c, err := cache.NewRedisCache(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return c, nil

	case "mongo":
		database := cfg.MongoDatabase
		if database == "" {
			database = appName
		}
		collection := cfg.MongoCollection
		if collection == "" {
			collection = "artifacts"
		}
		c, err := cache.NewMongoCache(context.Background(), cfg.MongoURI, database, collection)
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return c, nil

	case "file", "":
		dir := cfg.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)

	default:
		return nil, fmt.Errorf("unknown cache backend: %q (must be file, redis, mongo, or none)", cfg.Backend)
	}
}
