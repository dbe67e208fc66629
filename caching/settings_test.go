package caching

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearRedisEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"REDIS_ENABLED", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_POOL_SIZE",
		"REDIS_DIAL_TIMEOUT", "REDIS_READ_TIMEOUT", "REDIS_WRITE_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	clearRedisEnv(t)

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.False(t, s.Enabled)
	assert.Equal(t, "localhost:6379", s.Addr)
	assert.Equal(t, 5*time.Second, s.DialTimeout)
}

func TestLoadSettingsFromEnvAndFile(t *testing.T) {
	clearRedisEnv(t)
	// godotenv does not override variables that are already present
	require.NoError(t, os.Unsetenv("REDIS_ADDR"))
	require.NoError(t, os.Unsetenv("REDIS_DB"))

	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("REDIS_ADDR=cache:6380\nREDIS_DB=2\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("REDIS_ADDR")
		_ = os.Unsetenv("REDIS_DB")
	})
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_READ_TIMEOUT", "250ms")

	s, err := LoadSettings(file, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.True(t, s.Enabled)
	assert.Equal(t, "cache:6380", s.Addr)
	assert.Equal(t, 2, s.DB)
	assert.Equal(t, 250*time.Millisecond, s.ReadTimeout)
}

func TestLoadSettingsRejectsGarbage(t *testing.T) {
	clearRedisEnv(t)
	t.Setenv("REDIS_ENABLED", "maybe")
	_, err := LoadSettings()
	assert.Error(t, err)

	clearRedisEnv(t)
	t.Setenv("REDIS_DIAL_TIMEOUT", "soon")
	_, err = LoadSettings()
	assert.Error(t, err)
}

func TestConnectDisabledSkipsDial(t *testing.T) {
	client, err := Connect(context.Background(), Settings{Enabled: false, Addr: "127.0.0.1:1"}, nil)
	require.NoError(t, err)
	assert.False(t, client.HasValue())
}

func TestConnectFailsOnUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(context.Background(), Settings{Enabled: true, Addr: addr, DialTimeout: 200 * time.Millisecond}, nil)
	assert.Error(t, err)
}

func TestNewFromSettings(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	c, err := NewFromSettings(ctx, Settings{Enabled: true, Addr: mr.Addr()}, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close(ctx) })
	assert.True(t, c.Available())

	require.NoError(t, c.AddToSortedSet(ctx, "Board", "ada", 1, 0))
	assert.True(t, mr.Exists("board"))

	off, err := NewFromSettings(ctx, Settings{Enabled: false}, Options{})
	require.NoError(t, err)
	assert.False(t, off.Available())
}
