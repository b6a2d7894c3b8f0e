package store

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// DefaultKeyPrefix is the key prefix used when none is configured.
const DefaultKeyPrefix = "state"

// Key returns the storage key of namespace.
//
// The namespace is hashed with xxh3, so the key is always a valid JetStream KV
// key regardless of the characters in namespace.
//
// Parameters:
//   - prefix: Key prefix, DefaultKeyPrefix when empty
//   - namespace: Caller-scoped identifier
//
// Returns:
//   - string: Key of the form "<prefix>.<16 hex digits>"
//
// Example:
//
//	store.Key("state", "ms.rivera@school.example") // "state.4f0c1d..."
func Key(prefix, namespace string) string {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return fmt.Sprintf("%s.%016x", prefix, xxh3.HashString(namespace))
}
