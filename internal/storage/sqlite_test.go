package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLiteKV(t *testing.T) KV {
	t.Helper()
	kv, err := NewSQLiteKV(context.Background(), "file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestSQLiteKVRoundTrip(t *testing.T) {
	kv := setupSQLiteKV(t)
	ctx := context.Background()

	_, found, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "k1", []byte(`{"a":1}`)))
	raw, found, err := kv.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"a":1}`, string(raw))

	// Upsert overwrites in place.
	require.NoError(t, kv.Set(ctx, "k1", []byte(`{"a":2}`)))
	raw, _, err = kv.Get(ctx, "k1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(raw))
}

func TestSQLiteKVDelete(t *testing.T) {
	kv := setupSQLiteKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k1", []byte("1")))
	require.NoError(t, kv.Set(ctx, "k2", []byte("2")))

	require.NoError(t, kv.Delete(ctx, "k1", "k2", "k3"))

	for _, key := range []string{"k1", "k2"} {
		_, found, err := kv.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, found)
	}

	require.NoError(t, kv.Delete(ctx))
}

func TestSQLiteKVPing(t *testing.T) {
	kv := setupSQLiteKV(t)
	require.NoError(t, kv.Ping(context.Background()))
}
