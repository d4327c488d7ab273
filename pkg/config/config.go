// Package config loads arena's settings from a TOML file and the environment.
//
// The file lives at $XDG_CONFIG_HOME/arena/config.toml (falling back to
// ~/.config/arena/config.toml). A missing file is not an error: every field
// has a default. Environment variables override the file, and command-line
// flags override both (the CLI applies those itself).
//
//	[defaults]
//	end_height = 3
//	side_height = 2
//	view = "elevation"
//
//	[cache]
//	backend = "redis"   # file, redis or none
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/arena/pkg/errors"
)

const appName = "arena"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Environment variables that override the file.
const (
	EnvCacheBackend = "ARENA_CACHE_BACKEND"
	EnvCacheDir     = "ARENA_CACHE_DIR"
	EnvRedisAddr    = "ARENA_REDIS_ADDR"
	EnvRedisURL     = "ARENA_REDIS_URL"
	EnvServerAddr   = "ARENA_SERVER_ADDR"
)

// Config is the merged configuration.
type Config struct {
	Defaults Defaults `toml:"defaults"`
	Cache    Cache    `toml:"cache"`
	Server   Server   `toml:"server"`
}

// Defaults seeds court and render options the user did not pass.
type Defaults struct {
	EndHeight  int     `toml:"end_height"`
	SideHeight int     `toml:"side_height"`
	View       string  `toml:"view"`
	Scale      float64 `toml:"scale"`
}

// Cache selects and configures the cache backend.
type Cache struct {
	Backend   string `toml:"backend"`
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
	RedisURL  string `toml:"redis_url"`
	RedisDB   int    `toml:"redis_db"`
}

// Server configures `arena serve`.
type Server struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	MaxBodyBytes    int64    `toml:"max_body_bytes"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Duration is a time.Duration written as a string ("15s") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			EndHeight:  3,
			SideHeight: 3,
			View:       "plan",
			Scale:      2,
		},
		Cache: Cache{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
		},
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{60 * time.Second},
			MaxBodyBytes:    1 << 20,
			ShutdownTimeout: Duration{10 * time.Second},
		},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the default file cache directory (~/.cache/arena/).
func CacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads the config file at path over the defaults and applies the
// environment. An empty path means [Path]. A missing file at the default
// location is ignored; a missing file the caller named explicitly is not.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err) && !explicit:
		case os.IsNotExist(err):
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvCacheBackend); ok {
		c.Cache.Backend = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvCacheDir); ok {
		c.Cache.Dir = v
	}
	if v, ok := lookup(EnvRedisAddr); ok {
		c.Cache.RedisAddr = v
	}
	if v, ok := lookup(EnvRedisURL); ok {
		c.Cache.RedisURL = v
	}
	if v, ok := lookup(EnvServerAddr); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup("ARENA_REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "ARENA_REDIS_DB: %q is not a number", v)
		}
		c.Cache.RedisDB = db
	}
	return nil
}

// Validate checks enumerated fields and ranges.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "cache backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	switch c.Defaults.View {
	case "plan", "elevation":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "default view %q (must be one of: plan, elevation)", c.Defaults.View)
	}
	if err := errors.ValidateHeight("defaults.end_height", c.Defaults.EndHeight); err != nil {
		return err
	}
	if err := errors.ValidateHeight("defaults.side_height", c.Defaults.SideHeight); err != nil {
		return err
	}
	if c.Defaults.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "defaults.scale must be positive")
	}
	return nil
}

// Write saves c as TOML, creating the parent directory.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
