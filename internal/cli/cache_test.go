package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/arena/pkg/cache"
	"github.com/matzehuels/arena/pkg/config"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
	if !strings.Contains(dir, ".cache") {
		t.Errorf("cacheDir() = %q, should contain '.cache'", dir)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(xdg, "arena"); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCLICacheDirFromConfig(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	c.cfg.Cache.Dir = "/srv/arena-cache"

	dir, err := c.cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/srv/arena-cache" {
		t.Errorf("cacheDir() = %q, want config dir", dir)
	}
}

func TestNewCacheBackends(t *testing.T) {
	ctx := context.Background()
	c := New(os.Stderr, LogInfo)
	c.cfg.Cache.Dir = t.TempDir()

	ch, err := c.newCache(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ch.(*cache.FileCache); !ok {
		t.Errorf("file backend gave %T", ch)
	}

	ch, err = c.newCache(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ch.(*cache.NullCache); !ok {
		t.Errorf("--no-cache gave %T", ch)
	}

	c.cfg.Cache.Backend = config.BackendNone
	ch, err = c.newCache(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ch.(*cache.NullCache); !ok {
		t.Errorf("none backend gave %T", ch)
	}

	c.cfg.Cache.Backend = config.BackendRedis
	c.cfg.Cache.RedisAddr = "127.0.0.1:1"
	if _, err := c.newCache(ctx, false); err == nil {
		t.Error("unreachable redis should fail")
	}
}
