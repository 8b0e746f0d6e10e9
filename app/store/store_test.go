package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingKeyReturnsDefault(t *testing.T) {
	kv := NewMemory()
	got := Read(kv, "nothing", []string{"fallback"})
	assert.Equal(t, []string{"fallback"}, got)
}

func TestReadCorruptValueReturnsDefault(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Set("usuarios", "{not json"))
	got := Read(kv, "usuarios", 42)
	assert.Equal(t, 42, got)
	// the corrupt value stays put, reads keep defaulting
	raw, ok, err := kv.Get("usuarios")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{not json", raw)
}

func TestWriteThenRead(t *testing.T) {
	kv := NewMemory()
	type rec struct {
		Name string `json:"name"`
	}
	require.NoError(t, Write(kv, "k", rec{Name: "Ana"}))
	got := Read(kv, "k", rec{})
	assert.Equal(t, "Ana", got.Name)
}

func TestDeleteThenReadDefaults(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, Write(kv, "k", "v"))
	require.NoError(t, kv.Delete("k"))
	assert.Equal(t, "gone", Read(kv, "k", "gone"))
}
