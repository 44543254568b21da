package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/weddingnanny/content"
	"github.com/eringen/weddingnanny/storage"
)

func openSlots(t *testing.T) map[string]storage.Slot {
	t.Helper()
	dir := t.TempDir()
	mr := miniredis.RunT(t)

	slots := map[string]storage.Slot{}
	var err error
	slots["sqlite"], err = storage.Open(storage.Config{Backend: storage.BackendSQLite, DatabasePath: filepath.Join(dir, "db", "test.db")})
	require.NoError(t, err)
	slots["redis"], err = storage.Open(storage.Config{Backend: storage.BackendRedis, Redis: storage.RedisConfig{Address: mr.Addr(), Prefix: "test:"}})
	require.NoError(t, err)
	slots["file"], err = storage.Open(storage.Config{Backend: storage.BackendFile, FilePath: filepath.Join(dir, "slot.json")})
	require.NoError(t, err)
	slots["memory"], err = storage.Open(storage.Config{Backend: storage.BackendMemory})
	require.NoError(t, err)

	t.Cleanup(func() {
		for _, s := range slots {
			s.Close()
		}
	})
	return slots
}

func TestSlotsReportEmptyKey(t *testing.T) {
	for name, slot := range openSlots(t) {
		t.Run(name, func(t *testing.T) {
			v, ok, err := slot.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, v)
		})
	}
}

func TestSlotsPutOverwrites(t *testing.T) {
	for name, slot := range openSlots(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, slot.Put("k", []byte("first")))
			require.NoError(t, slot.Put("k", []byte(`{"second":"<b>&</b>"}`)))
			require.NoError(t, slot.Put("other", []byte("x")))

			v, ok, err := slot.Get("k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"second":"<b>&</b>"}`, string(v))
		})
	}
}

func TestSlotsRoundTripStoreState(t *testing.T) {
	for name, slot := range openSlots(t) {
		t.Run(name, func(t *testing.T) {
			s := content.New(content.NewAdapter(slot))
			require.NoError(t, s.Load())

			g := s.Global()
			g.SiteName = "Persisted via " + name
			require.NoError(t, s.UpdateGlobal(g, ""))
			_, err := s.CreateBackup("Before Launch")
			require.NoError(t, err)

			reopened := content.New(content.NewAdapter(slot))
			require.NoError(t, reopened.Load())
			assert.Equal(t, s.State(), reopened.State())
		})
	}
}

func TestSQLiteSlotSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := storage.NewSQLiteSlot(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(content.StateKey, []byte("saved")))
	require.NoError(t, s.Close())

	s, err = storage.NewSQLiteSlot(path)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.Get(content.StateKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "saved", string(v))
}

func TestFileSlotCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))

	s, err := storage.NewFileSlot(path)
	require.NoError(t, err)
	_, _, err = s.Get("k")
	assert.Error(t, err)
	assert.Error(t, s.Put("k", []byte("v")), "a corrupt file must not be silently overwritten")
}

func TestFileSlotLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewFileSlot(filepath.Join(dir, "slot.json"))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Put("k", []byte("v")))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRedisSlotRequiresAddress(t *testing.T) {
	s, err := storage.NewRedisSlot(storage.RedisConfig{})
	assert.ErrorIs(t, err, storage.ErrEmptyAddress)
	assert.Nil(t, s)
}

func TestRedisSlotUsesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := storage.NewRedisSlot(storage.RedisConfig{Address: mr.Addr(), Prefix: "site-a:"})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put(content.StateKey, []byte("blob")))
	got, err := mr.Get("site-a:" + content.StateKey)
	require.NoError(t, err)
	assert.Equal(t, "blob", got)
}

func TestRedisSlotReadFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := storage.NewRedisSlot(storage.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	defer s.Close()

	mr.SetError("LOADING")
	_, _, err = s.Get("k")
	assert.Error(t, err)

	a := content.NewAdapter(s)
	assert.True(t, content.IsPersistenceError(a.Save(content.State{})))
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    storage.Backend
		wantErr bool
	}{
		{"", storage.BackendSQLite, false},
		{"SQLite", storage.BackendSQLite, false},
		{" redis ", storage.BackendRedis, false},
		{"file", storage.BackendFile, false},
		{"memory", storage.BackendMemory, false},
		{"postgres", "", true},
	}
	for _, tt := range tests {
		got, err := storage.ParseBackend(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, storage.ErrUnknownBackend, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := storage.Open(storage.Config{Backend: "etcd"})
	assert.ErrorIs(t, err, storage.ErrUnknownBackend)
}
