package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/arena/pkg/errors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvCacheBackend, "file")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Defaults, cfg.Defaults)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeFileNotFound, errors.GetCode(err))
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
[defaults]
end_height = 2
view = "elevation"

[cache]
backend = "redis"
redis_addr = "cache:6379"

[server]
addr = ":9000"
read_timeout = "5s"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Defaults.EndHeight)
	assert.Equal(t, 3, cfg.Defaults.SideHeight, "unset keys keep defaults")
	assert.Equal(t, "elevation", cfg.Defaults.View)
	assert.Equal(t, BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout.Duration)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, `
[cache]
backend = "redis"
redis_addr = "cache:6379"
`)
	t.Setenv(EnvCacheBackend, "NONE")
	t.Setenv(EnvRedisAddr, "other:6380")
	t.Setenv(EnvServerAddr, "127.0.0.1:7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendNone, cfg.Cache.Backend)
	assert.Equal(t, "other:6380", cfg.Cache.RedisAddr)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"malformed", `[defaults`, errors.ErrCodeInvalidFormat},
		{"bad duration", "[server]\nread_timeout = \"soon\"", errors.ErrCodeInvalidFormat},
		{"bad backend", "[cache]\nbackend = \"memcached\"", errors.ErrCodeInvalidInput},
		{"bad view", "[defaults]\nview = \"side\"", errors.ErrCodeInvalidInput},
		{"bad height", "[defaults]\nend_height = 5", errors.ErrCodeInvalidHeight},
		{"bad scale", "[defaults]\nscale = -1.0", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestApplyEnvRedisDB(t *testing.T) {
	env := map[string]string{"ARENA_REDIS_DB": "4"}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, 4, cfg.Cache.RedisDB)

	env["ARENA_REDIS_DB"] = "four"
	assert.Error(t, cfg.applyEnv(lookup))
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "arena", "config.toml"), p)
}

func TestCacheDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	p, err := CacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "arena"), p)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Default()
	cfg.Cache.Backend = BackendRedis
	cfg.Server.ReadTimeout = Duration{3 * time.Second}
	require.NoError(t, cfg.Write(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, got.Cache.Backend)
	assert.Equal(t, 3*time.Second, got.Server.ReadTimeout.Duration)
}
