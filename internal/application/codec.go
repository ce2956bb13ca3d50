package application

import (
	"context"
	"encoding/json"
	"fmt"

	"edet/internal/ports"
)

// Values is a decoded view of a KeyValueStore.Get response
type Values map[string][]byte

// Load reads keys from the store, wrapping failures in PersistenceError
func Load(ctx context.Context, store ports.KeyValueStore, keys ...string) (Values, error) {
	vals, err := store.Get(ctx, keys...)
	if err != nil {
		return nil, &PersistenceError{Op: "get", Keys: keys, Err: err}
	}
	return Values(vals), nil
}

// Decode unmarshals the value stored under key into v.
// Returns false without touching v when the key is absent.
func (v Values) Decode(key string, out any) (bool, error) {
	raw, ok := v[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, &PersistenceError{Op: "decode", Keys: []string{key}, Err: err}
	}
	return true, nil
}

// Entries accumulates JSON-encoded values for a single Set call
type Entries map[string][]byte

// Put encodes v under key
func (e Entries) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	e[key] = raw
	return nil
}

// Save writes the entries, wrapping failures in PersistenceError
func Save(ctx context.Context, store ports.KeyValueStore, entries Entries) error {
	if err := store.Set(ctx, map[string][]byte(entries)); err != nil {
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		return &PersistenceError{Op: "set", Keys: keys, Err: err}
	}
	return nil
}
