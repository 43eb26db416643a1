package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Bolt {
	t.Helper()

	db, err := NewBolt(filepath.Join(t.TempDir(), "test.bolt"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}
	})

	return db
}

func TestBolt_Ping(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(); err != nil {
		t.Errorf("Ping() error = %v, want nil", err)
	}
}

func TestBolt_GetSet(t *testing.T) {
	db := setupTestDB(t)

	v, err := db.Get(KeyClasses)
	require.NoError(t, err)
	assert.Nil(t, v, "missing key should read as nil")

	require.NoError(t, db.Set(KeyClasses, []byte(`[{"id":"a"}]`)))
	require.NoError(t, db.Set(KeyGoal, []byte(`90`)))

	v, err = db.Get(KeyClasses)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(v))

	require.NoError(t, db.Set(KeyGoal, []byte(`45`)))

	v, err = db.Get(KeyGoal)
	require.NoError(t, err)
	assert.Equal(t, "45", string(v))

	keys, err := db.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{KeyClasses, KeyGoal}, keys)
}

func TestBolt_GetReturnsCopy(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Set(KeyDark, []byte("true")))

	v, err := db.Get(KeyDark)
	require.NoError(t, err)

	v[0] = 'X'

	again, err := db.Get(KeyDark)
	require.NoError(t, err)
	assert.Equal(t, "true", string(again))
}

func TestBolt_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "persist.bolt")

	db, err := NewBolt(path)
	require.NoError(t, err)
	require.NoError(t, db.Set(KeyStudyLog, []byte(`{"2024-03-04":60}`)))
	require.NoError(t, db.Close())

	db, err = NewBolt(path)
	require.NoError(t, err)

	defer func() { _ = db.Close() }()

	v, err := db.Get(KeyStudyLog)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2024-03-04":60}`, string(v))
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	assert.NoError(t, m.Ping())

	v, err := m.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, v)

	buf := []byte("abc")
	require.NoError(t, m.Set("k", buf))

	buf[0] = 'z'

	v, err = m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(v))

	keys, err := m.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)

	assert.NoError(t, m.Close())
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"", BackendBolt, false},
		{"bolt", BackendBolt, false},
		{" SQLite ", BackendSQLite, false},
		{"memory", BackendMemory, false},
		{"redis", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackend(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen(t *testing.T) {
	for _, backend := range []Backend{BackendBolt, BackendSQLite, BackendMemory} {
		t.Run(string(backend), func(t *testing.T) {
			dir := t.TempDir()

			kv, err := Open(backend, dir)
			require.NoError(t, err)

			defer func() { _ = kv.Close() }()

			require.NoError(t, kv.Ping())
			require.NoError(t, kv.Set(KeyTodos, []byte(`[]`)))

			v, err := kv.Get(KeyTodos)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(v))

			if name := backend.FileName(); name != "" {
				assert.FileExists(t, filepath.Join(dir, name))
			}
		})
	}
}
