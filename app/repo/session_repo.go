package repo

import (
	"elite-motors/app/models"
	"elite-motors/app/store"
)

// SessionRepository holds the single current-user record. Possession
// of the stored record is the whole trust model; there is no token and
// no expiry.
type SessionRepository struct{ kv store.KV }

func NewSessionRepository(kv store.KV) *SessionRepository {
	return &SessionRepository{kv: kv}
}

func (r *SessionRepository) Set(u models.User) error {
	return store.Write(r.kv, keySession, u)
}

func (r *SessionRepository) Get() *models.User {
	u := store.Read[*models.User](r.kv, keySession, nil)
	return u
}

func (r *SessionRepository) Clear() error {
	return r.kv.Delete(keySession)
}
