//go:build integration

package integration

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/copy-census/internal/adapters/store/sqlstore"
	"github.com/jsamuelsen/copy-census/internal/platform/config"
)

// TestConfig_OpensConfiguredStore loads layered config from disk and opens
// the store it names, the way the service boots.
func TestConfig_OpensConfiguredStore(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "db", "census.db")

	base := "census:\n  name: Folio Census\n  copy_id_prefix: F\ndatabase:\n  path: /nonexistent/base.db\n"
	profile := "app:\n  environment: test\ndatabase:\n  max_open_conns: 2\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(profile), 0o600))
	t.Setenv("CENSUS_DATABASE__PATH", dbPath)

	cfg, err := config.LoadFrom(dir, "test")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Folio Census", cfg.Census.Name)
	assert.Equal(t, "F", cfg.Census.CopyIDPrefix)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, 2, cfg.Database.MaxOpenConns)

	ctx := context.Background()
	store, err := sqlstore.Open(ctx, sqlstore.Config{
		Path:         cfg.Database.Path,
		AutoMigrate:  cfg.Database.AutoMigrate,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Check(ctx))
	assert.FileExists(t, dbPath)
}

// TestConfig_RejectsInvalidFiles checks that a bad profile stops boot.
func TestConfig_RejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		wantErr string
	}{
		{name: "unknown log level", profile: "log:\n  level: verbose\n", wantErr: "log.level"},
		{name: "blank copy id prefix", profile: "census:\n  copy_id_prefix: \"\"\n", wantErr: "census.copy_id_prefix"},
		{name: "no editor roles", profile: "census:\n  editor_roles: []\n", wantErr: "census.editor_roles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(tt.profile), 0o600))

			cfg, err := config.LoadFrom(dir, "bad")
			require.NoError(t, err)

			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
