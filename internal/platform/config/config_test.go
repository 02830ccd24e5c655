package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

// TestLoad_DefaultValues checks the built-in defaults with no config files.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "copy-census", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "Shakespeare Census", cfg.Census.Name)
	assert.Equal(t, DefaultCopyIDPrefix, cfg.Census.CopyIDPrefix)
	assert.Equal(t, []string{"editor", "admin"}, cfg.Census.EditorRoles)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, DefaultDatabaseMaxOpenConns, cfg.Database.MaxOpenConns)
	assert.Equal(t, "./exports", cfg.Export.Dir)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("CENSUS_SERVER__PORT", "9090")
	t.Setenv("CENSUS_LOG__LEVEL", "trace")
	t.Setenv("CENSUS_CENSUS__COPY_ID_PREFIX", "F")
	t.Setenv("CENSUS_DATABASE__LOG_QUERIES", "true")

	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, "F", cfg.Census.CopyIDPrefix)
	assert.True(t, cfg.Database.LogQueries)
}

func TestLoad_EnvVarList(t *testing.T) {
	t.Setenv("CENSUS_CENSUS__EDITOR_ROLES", "librarian,admin")

	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"librarian", "admin"}, cfg.Census.EditorRoles)
}

func TestLoad_EnvVarListSingleItem(t *testing.T) {
	t.Setenv("CENSUS_CENSUS__EDITOR_ROLES", "curator")

	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"curator"}, cfg.Census.EditorRoles)
}

func TestEnvValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  any
	}{
		{"scalar", "9090", "9090"},
		{"list", "librarian,admin", []string{"librarian", "admin"}},
		{"list with spaces", "editor, admin ", []string{"editor", "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value := envValue("CENSUS_CENSUS__EDITOR_ROLES", tt.value)

			assert.Equal(t, "census.editor_roles", key)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"CENSUS_SERVER__PORT":           "server.port",
		"CENSUS_CENSUS__COPY_ID_PREFIX": "census.copy_id_prefix",
		"CENSUS_LOG__FILE__MAX_SIZE":    "log.file.max_size",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, envKey(in))
		})
	}
}

func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestLoad_ProfileOverridesBase(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "base.yaml", `
census:
  name: Folio Census
  copy_id_prefix: F
database:
  path: /srv/census/base.db
`)
	writeConfig(t, dir, "prod.yaml", `
app:
  environment: prod
database:
  path: /srv/census/prod.db
  max_open_conns: 8
`)

	cfg, err := LoadFrom(dir, "prod")
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.App.Environment)
	assert.Equal(t, "Folio Census", cfg.Census.Name)
	assert.Equal(t, "F", cfg.Census.CopyIDPrefix)
	assert.Equal(t, "/srv/census/prod.db", cfg.Database.Path)
	assert.Equal(t, 8, cfg.Database.MaxOpenConns)
}

func TestLoad_EnvBeatsFiles(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "base.yaml", "log:\n  level: debug\n")
	t.Setenv("CENSUS_LOG__LEVEL", "error")

	cfg, err := LoadFrom(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "base.yaml", "census: [unclosed\n")

	_, err := LoadFrom(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

// TestLoad_NonExistentProfile tests that a missing profile file is ignored.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "copy-census", cfg.App.Name)
}

func TestLoad_AuthHeaderDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "X-User-ID", cfg.Auth.SubjectHeader)
	assert.Equal(t, "X-User-Roles", cfg.Auth.RolesHeader)
}

func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/census.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

func TestLoad_TelemetryDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "copy-census", cfg.Telemetry.ServiceName)
	assert.InDelta(t, 1.0, cfg.Telemetry.SamplingRate, 0)
	assert.True(t, cfg.Telemetry.Insecure)
}

func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "copy-census", d["app.name"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, "info", d["log.level"])
	assert.Equal(t, DefaultCopyIDPrefix, d["census.copy_id_prefix"])
	assert.Equal(t, DefaultDatabasePath, d["database.path"])
}
