package repo

import "elite-motors/app/store"

// ConsentRepository tracks the cookie-notice acknowledgement. The
// stored value is the literal sentinel "true" for compatibility with
// data written by the original site.
type ConsentRepository struct{ kv store.KV }

func NewConsentRepository(kv store.KV) *ConsentRepository {
	return &ConsentRepository{kv: kv}
}

func (r *ConsentRepository) Accepted() bool {
	raw, ok, err := r.kv.Get(keyConsent)
	return err == nil && ok && raw == "true"
}

func (r *ConsentRepository) Accept() error {
	return r.kv.Set(keyConsent, "true")
}
