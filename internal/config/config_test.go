package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalYAML = `
jwt:
  secret: test-secret
`

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "devcamper", cfg.Database.DBName)
	assert.Equal(t, "24h", cfg.JWT.TokenExpiration)
	assert.Equal(t, 30, cfg.JWT.CookieExpireDays)
	assert.Equal(t, "public/uploads", cfg.Upload.Path)
	assert.Equal(t, int64(1<<20), cfg.Upload.MaxSizeByte)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigYAMLValues(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: test-secret
  cookie_expire_days: 7
`))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 7, cfg.JWT.CookieExpireDays)
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	t.Setenv("SERVER_PORT", "7001")
	t.Setenv("JWT_COOKIE_EXPIRE", "14")
	t.Setenv("DB_NAME", "devcamper_test")

	cfg, err := LoadConfig(writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: test-secret
`))
	require.NoError(t, err)

	assert.Equal(t, "7001", cfg.Server.Port)
	assert.Equal(t, 14, cfg.JWT.CookieExpireDays)
	assert.Equal(t, "devcamper_test", cfg.Database.DBName)
}

func TestSetFieldTypedValues(t *testing.T) {
	var d time.Duration
	require.NoError(t, setField(reflect.ValueOf(&d).Elem(), "90s"))
	assert.Equal(t, 90*time.Second, d)

	var n int64
	require.NoError(t, setField(reflect.ValueOf(&n).Elem(), "42"))
	assert.Equal(t, int64(42), n)

	var b bool
	require.NoError(t, setField(reflect.ValueOf(&b).Elem(), "true"))
	assert.True(t, b)

	assert.Error(t, setField(reflect.ValueOf(&d).Elem(), "not-a-duration"))
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, `
server:
  port: "9090"
`))
	assert.Error(t, err)
}

func TestCookieExpiry(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, 30*24*time.Hour, cfg.CookieExpiry())
}

func TestPostgresConnectionString(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, minimalYAML))
	require.NoError(t, err)

	dsn := cfg.GetPostgresConnectionString()
	assert.Contains(t, dsn, "/devcamper")
	assert.Contains(t, dsn, "sslmode=disable")
}
