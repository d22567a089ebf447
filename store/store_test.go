package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ronney221/Bankroll-Buddy/config"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg := config.Default()
	cfg.Store.Path = filepath.Join(dir, "sessions.json")

	s, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	assert.IsType(t, &JSONFileStore{}, s)

	cfg.Store.Type = config.StoreSQLite
	cfg.Store.Path = filepath.Join(dir, "sessions.db")

	s2, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })
	assert.IsType(t, &SQLiteStore{}, s2)

	cfg.Store.Type = "postgres"
	_, err = Open(cfg)
	require.Error(t, err)
}
