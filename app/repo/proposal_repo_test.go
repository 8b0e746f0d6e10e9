package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elite-motors/app/models"
	"elite-motors/app/store"
)

func TestProposalsAppendInOrder(t *testing.T) {
	r := NewProposalRepository(store.NewMemory())

	assert.Empty(t, r.All())

	require.NoError(t, r.Add(models.Proposal{ID: 1, Vehicle: "Elite"}))
	require.NoError(t, r.Add(models.Proposal{ID: 2, Vehicle: "Vision"}))
	require.NoError(t, r.Add(models.Proposal{ID: 3, Vehicle: "Urban"}))

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Elite", all[0].Vehicle, "oldest first")
	assert.Equal(t, "Urban", all[2].Vehicle)
}

func TestProposalsSurviveCorruptStore(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set("propostas", "][")) // someone scribbled on the key
	r := NewProposalRepository(kv)

	assert.Empty(t, r.All())
	require.NoError(t, r.Add(models.Proposal{ID: 1, Vehicle: "Elite"}))
	assert.Len(t, r.All(), 1)
}
