// Package cli implements the arena command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arena/pkg/cache"
	"github.com/matzehuels/arena/pkg/config"
	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/design"
	"github.com/matzehuels/arena/pkg/edit"
	"github.com/matzehuels/arena/pkg/errors"
	arenaio "github.com/matzehuels/arena/pkg/io"
	"github.com/matzehuels/arena/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "arena"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag; empty means the default location.
	configPath string
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the config file named by --config (or the default one).
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, nil, c.Logger), nil
}

// newCache opens the configured cache backend. A file cache that cannot be
// created degrades to no caching; an unreachable redis is an error.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			URL:  c.cfg.Cache.RedisURL,
			Addr: c.cfg.Cache.RedisAddr,
			DB:   c.cfg.Cache.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis cache: %w", err)
		}
		c.Logger.Debug("using redis cache", "addr", c.cfg.Cache.RedisAddr)
		return rc, nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable", "dir", dir, "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured file cache directory, defaulting to the
// XDG location (~/.cache/arena/).
func (c *CLI) cacheDir() (string, error) {
	if c.cfg != nil && c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cacheDir()
}

func cacheDir() (string, error) {
	return config.CacheDir()
}

// =============================================================================
// Court Input
// =============================================================================

// courtFlags are the generator inputs shared by every command that can
// build a court from dimensions instead of reading one from a file.
type courtFlags struct {
	width      int
	length     int
	endHeight  int
	sideHeight int
	standalone bool
	noCache    bool
}

func (f *courtFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.width, "width", "W", 0, "court width in meters")
	cmd.Flags().IntVarP(&f.length, "length", "L", 0, "court length in meters")
	cmd.Flags().IntVar(&f.endHeight, "end-height", 0, "end wall height in meters (default from config)")
	cmd.Flags().IntVar(&f.sideHeight, "side-height", 0, "side wall height in meters (default from config)")
	cmd.Flags().BoolVar(&f.standalone, "standalone", false, "a single standalone end wall")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// options converts the flags into pipeline options, filling unset heights
// from the config defaults.
func (f *courtFlags) options(cfg *config.Config) pipeline.Options {
	opts := pipeline.Options{
		Width:      f.width,
		Length:     f.length,
		EndHeight:  f.endHeight,
		SideHeight: f.sideHeight,
		Standalone: f.standalone,
	}
	if opts.EndHeight == 0 {
		opts.EndHeight = cfg.Defaults.EndHeight
	}
	if opts.SideHeight == 0 {
		opts.SideHeight = cfg.Defaults.SideHeight
	}
	return opts
}

// warnLargeCourt logs a warning for unusually large dimensions.
func (c *CLI) warnLargeCourt(f *courtFlags) {
	if f.standalone {
		return
	}
	for _, w := range court.SizeWarnings(f.width, f.length) {
		c.Logger.Warn(w)
	}
}

// courtSource is a resolved court plus where it came from.
type courtSource struct {
	court   *court.Court
	name    string // base name for derived output files
	applied []bool
	ops     []edit.Op
}

// loadCourt resolves the court a command operates on: a court JSON file, a
// YAML/TOML design file, or the dimension flags.
func (c *CLI) loadCourt(ctx context.Context, args []string, flags *courtFlags) (*courtSource, error) {
	if len(args) == 0 {
		runner, err := c.newRunner(ctx, flags.noCache)
		if err != nil {
			return nil, err
		}
		defer runner.Close()

		opts := flags.options(c.cfg)
		c.warnLargeCourt(flags)
		ct, _, err := runner.BuildCourt(ctx, opts)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("court_%dx%d", flags.width, flags.length)
		if flags.standalone {
			name = "standalone"
		}
		return &courtSource{court: ct, name: name}, nil
	}

	path := args[0]
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if strings.EqualFold(filepath.Ext(path), ".json") {
		ct, err := arenaio.ImportJSON(path)
		if err != nil {
			return nil, err
		}
		return &courtSource{court: ct, name: name}, nil
	}

	d, err := design.Load(path)
	if err != nil {
		return nil, err
	}
	res, err := d.Build()
	if err != nil {
		return nil, err
	}
	for _, r := range res.Rejected {
		printWarning("op %d (%s) rejected: %s", r.Index+1, r.Op, r.Reason)
	}
	if d.Name != "" {
		name = d.Name
	}
	return &courtSource{court: res.Court, name: name, applied: res.Applied, ops: d.Ops}, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
