package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("VITACOACH_DB", "/tmp/vc-test.db")
	t.Setenv("VITACOACH_LOG_LEVEL", "debug")
	t.Setenv("VITACOACH_ADDR", "127.0.0.1:9090")
	t.Setenv("VITACOACH_JWT_SECRET", "s3cret")
	t.Setenv("VITACOACH_JWT_TTL_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	want := Config{
		DBPath:    "/tmp/vc-test.db",
		LogLevel:  "debug",
		Addr:      "127.0.0.1:9090",
		JWTSecret: "s3cret",
		JWTTTL:    15 * time.Minute,
	}
	assert.Empty(t, cmp.Diff(want, cfg))
	assert.NoError(t, cfg.ValidateServer())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VITACOACH_DB", "")
	t.Setenv("VITACOACH_LOG_LEVEL", "")
	t.Setenv("VITACOACH_ADDR", "")
	t.Setenv("VITACOACH_JWT_SECRET", "")
	t.Setenv("VITACOACH_JWT_TTL_MINUTES", "nope")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 60*time.Minute, cfg.JWTTTL)
	assert.Contains(t, cfg.DBPath, ".vitacoach.db")
	assert.Error(t, cfg.ValidateServer())
}
