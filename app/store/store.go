package store

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// KV is the raw key-value contract every backend implements. Values
// are opaque strings; JSON framing lives in Read/Write.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Read returns the JSON-decoded value at key, or def when the key is
// absent or the stored value does not decode. Decode and backend
// failures are logged, never propagated.
func Read[T any](kv KV, key string, def T) T {
	raw, ok, err := kv.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("store read failed")
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("store value corrupt, using default")
		return def
	}
	return v
}

// Write serializes v and stores it under key.
func Write[T any](kv KV, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(key, string(raw))
}
