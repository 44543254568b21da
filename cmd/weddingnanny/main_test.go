package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/weddingnanny/content"
	"github.com/eringen/weddingnanny/storage"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestBackupLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("STORAGE_FILE", path)

	out := run(t, "backup", "create", "Before", "Launch")
	assert.Contains(t, out, "(Before Launch)")

	store, closeStore := openStore()
	backups := store.Backups()
	require.Len(t, backups, 1)
	id := backups[0].ID
	g := store.Global()
	g.SiteName = "Edited"
	require.NoError(t, store.UpdateGlobal(g, ""))
	closeStore()

	out = run(t, "backup", "list")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Before Launch")

	out = run(t, "backup", "restore", id)
	assert.Contains(t, out, "Re-run with --yes")
	assert.Contains(t, out, `"siteName": "Edited"`)

	store, closeStore = openStore()
	assert.Equal(t, "Edited", store.Global().SiteName, "restore without --yes changes nothing")
	closeStore()

	out = run(t, "backup", "restore", id, "--yes")
	assert.Contains(t, out, "Applied restore: Before Launch")

	out = run(t, "logs", "-n", "1")
	assert.Contains(t, out, "Restored Backup: Before Launch")
	assert.NotContains(t, out, "Created Backup")

	run(t, "backup", "delete", id)
	store, closeStore = openStore()
	assert.Empty(t, store.Backups())
	assert.Equal(t, content.DefaultGlobal().SiteName, store.Global().SiteName)
	closeStore()
}

func TestStorageConfigFromEnv(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	require.NoError(t, initConfig(nil))

	cfg, err := storageConfig()
	require.NoError(t, err)
	assert.Equal(t, storage.BackendRedis, cfg.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 3, cfg.Redis.DB)

	t.Setenv("STORAGE_BACKEND", "postgres")
	_, err = storageConfig()
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}

func TestPrintProposal(t *testing.T) {
	var out bytes.Buffer
	printProposal(&out, content.Proposal{Action: content.ActionReset, Label: "Factory Defaults"})
	assert.True(t, strings.HasPrefix(out.String(), `reset "Factory Defaults": 0 lines added, 0 lines removed`))
	assert.Contains(t, out.String(), "already identical")
}
