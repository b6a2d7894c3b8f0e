package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/rota/internal/kvutil"
	"github.com/arloliu/rota/types"
)

// KV stores state in a NATS JetStream KeyValue bucket.
//
// Each namespace is one key holding the JSON form of AppState. The entry
// revision is the store revision, so Save maps directly onto kv.Create and
// kv.Update.
type KV struct {
	kv     jetstream.KeyValue
	prefix string
}

var _ types.StateStore = (*KV)(nil)

// NewKV creates a store on an existing bucket.
//
// Parameters:
//   - kv: JetStream KeyValue bucket
//   - prefix: Key prefix, DefaultKeyPrefix when empty
//
// Returns:
//   - *KV: Store instance
func NewKV(kv jetstream.KeyValue, prefix string) *KV {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &KV{kv: kv, prefix: prefix}
}

// OpenKV creates or opens the bucket described by opts and returns a store on it.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - js: JetStream context
//   - opts: Bucket options
//   - prefix: Key prefix
//   - retries: Bucket creation attempts
//
// Returns:
//   - *KV: Store instance
//   - error: Bucket creation failure, wrapped with types.ErrStoreUnavailable on connectivity issues
func OpenKV(ctx context.Context, js jetstream.JetStream, opts kvutil.BucketOptions, prefix string, retries int) (*KV, error) {
	kv, err := kvutil.EnsureBucket(ctx, js, opts, retries)
	if err != nil {
		if IsConnectivityError(err) {
			return nil, fmt.Errorf("open bucket %s: %w: %w", opts.Bucket, types.ErrStoreUnavailable, err)
		}

		return nil, fmt.Errorf("open bucket %s: %w", opts.Bucket, err)
	}

	return NewKV(kv, prefix), nil
}

// Load returns the stored state for namespace and its revision.
func (s *KV) Load(ctx context.Context, namespace string) (types.AppState, uint64, error) {
	entry, err := s.kv.Get(ctx, Key(s.prefix, namespace))
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return types.AppState{}, 0, types.ErrStateNotFound
		}

		return types.AppState{}, 0, classify("load", namespace, err)
	}

	var state types.AppState
	if err := json.Unmarshal(entry.Value(), &state); err != nil {
		return types.AppState{}, 0, fmt.Errorf("decode state for %q (revision %d): %w", namespace, entry.Revision(), err)
	}

	return state, entry.Revision(), nil
}

// Save stores state for namespace if its revision is still revision.
//
// Revision 0 creates the key; JetStream rejects the create if the key exists.
// Any other revision is an optimistic update; JetStream rejects it if another
// writer saved in between. Both rejections are reported as
// types.ErrRevisionConflict.
func (s *KV) Save(ctx context.Context, namespace string, state types.AppState, revision uint64) (uint64, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return 0, fmt.Errorf("encode state for %q: %w", namespace, err)
	}

	key := Key(s.prefix, namespace)

	var rev uint64
	if revision == 0 {
		rev, err = s.kv.Create(ctx, key, data)
	} else {
		rev, err = s.kv.Update(ctx, key, data, revision)
	}
	if err != nil {
		if isRevisionMismatch(err) {
			return 0, fmt.Errorf("save state for %q at revision %d: %w", namespace, revision, types.ErrRevisionConflict)
		}

		return 0, classify("save", namespace, err)
	}

	return rev, nil
}

// Delete removes the state of namespace. Deleting a missing namespace is not an error.
func (s *KV) Delete(ctx context.Context, namespace string) error {
	err := s.kv.Delete(ctx, Key(s.prefix, namespace))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return classify("delete", namespace, err)
	}

	return nil
}
