package repo

import (
	"elite-motors/app/models"
	"elite-motors/app/store"
)

// ProposalRepository is the append-only ledger of submitted offers,
// oldest first. Nothing updates or removes an entry once written.
type ProposalRepository struct{ kv store.KV }

func NewProposalRepository(kv store.KV) *ProposalRepository {
	return &ProposalRepository{kv: kv}
}

func (r *ProposalRepository) All() []models.Proposal {
	return store.Read(r.kv, keyProposals, []models.Proposal{})
}

func (r *ProposalRepository) Save(list []models.Proposal) error {
	return store.Write(r.kv, keyProposals, list)
}

// Add is read-append-write; a second writer on the same store races
// last-write-wins (see store.Watcher).
func (r *ProposalRepository) Add(p models.Proposal) error {
	return r.Save(append(r.All(), p))
}
