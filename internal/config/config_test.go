package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/testutil"
)

// isolate runs the test from an empty directory with every mapped variable
// cleared, so local .env or config.yaml files cannot leak in.
func isolate(t *testing.T) {
	t.Helper()
	for key := range envMappings {
		t.Setenv(key, "")
	}
	t.Setenv(ConfigPathEnvVar, "")
	testutil.Chdir(t, t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, ":3000", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "book-api", cfg.App.Name)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"*"}, cfg.Security.CORSOrigins)
	assert.False(t, cfg.Security.EnableHSTS)
	assert.Empty(t, cfg.Catalog.DSN)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "8081")
	t.Setenv("APP_VERSION", "2.3.4")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173")
	t.Setenv("ENABLE_HSTS", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "2.3.4", cfg.App.Version)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.Security.CORSOrigins)
	assert.True(t, cfg.Security.EnableHSTS)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_EmptyEnvMeansUnset(t *testing.T) {
	isolate(t)
	t.Setenv("APP_VERSION", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	yml := "server:\n  port: 9000\napp:\n  environment: staging\n  version: 9.9.9\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("APP_VERSION", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, "from-env", cfg.App.Version, "environment must win over file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"port out of range", "PORT", "70000"},
		{"unknown log level", "LOG_LEVEL", "loud"},
		{"unknown log format", "LOG_FORMAT", "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("APP_VERSION=from_file\nENVIRONMENT=from_file\n"), 0o644))
	t.Setenv("APP_VERSION", "from_env")
	require.NoError(t, os.Unsetenv("ENVIRONMENT"))

	LoadEnvFiles()
	t.Cleanup(func() { _ = os.Unsetenv("ENVIRONMENT") })

	assert.Equal(t, "from_env", os.Getenv("APP_VERSION"))
	assert.Equal(t, "from_file", os.Getenv("ENVIRONMENT"))
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:3000", ServerConfig{Host: "127.0.0.1", Port: 3000}.Addr())
}
