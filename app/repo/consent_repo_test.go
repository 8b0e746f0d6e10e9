package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elite-motors/app/store"
)

func TestConsentSentinel(t *testing.T) {
	kv := store.NewMemory()
	r := NewConsentRepository(kv)

	assert.False(t, r.Accepted())
	require.NoError(t, r.Accept())
	assert.True(t, r.Accepted())

	// the stored value is the bare sentinel, not JSON
	raw, ok, err := kv.Get("cookiesAccepted")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", raw)
}

func TestConsentIgnoresForeignValues(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set("cookiesAccepted", "yes"))
	assert.False(t, NewConsentRepository(kv).Accepted())
}
