// Package kvutil provides helpers for the JetStream KeyValue bucket that holds rota state.
package kvutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// maxHistory is the largest per-key history JetStream KV accepts.
const maxHistory = 64

// BucketOptions describes the state bucket.
type BucketOptions struct {
	// Bucket is the bucket name.
	Bucket string

	// History is the number of revisions kept per key (1-64).
	History int

	// Replicas is the stream replication factor.
	Replicas int

	// Memory selects memory storage instead of file storage.
	Memory bool
}

// KeyValueConfig converts opts into a jetstream.KeyValueConfig.
//
// State never expires, so the bucket has no TTL.
//
// Returns:
//   - jetstream.KeyValueConfig: Bucket configuration
//   - error: Empty bucket name, history outside 1-64 or fewer than one replica
func (o BucketOptions) KeyValueConfig() (jetstream.KeyValueConfig, error) {
	if o.Bucket == "" {
		return jetstream.KeyValueConfig{}, errors.New("bucket name is required")
	}
	if o.History < 1 || o.History > maxHistory {
		return jetstream.KeyValueConfig{}, fmt.Errorf("history must be between 1 and %d, got %d", maxHistory, o.History)
	}
	if o.Replicas < 1 {
		return jetstream.KeyValueConfig{}, fmt.Errorf("replicas must be at least 1, got %d", o.Replicas)
	}

	storage := jetstream.FileStorage
	if o.Memory {
		storage = jetstream.MemoryStorage
	}

	return jetstream.KeyValueConfig{
		Bucket:      o.Bucket,
		Description: "rota classroom rotation state",
		History:     uint8(o.History), //nolint:gosec // bounded by maxHistory above
		Replicas:    o.Replicas,
		Storage:     storage,
	}, nil
}

// EnsureBucket creates or opens the state bucket with retry logic.
//
// Several CLI invocations or services may start at the same time against an
// empty server; whichever loses the create race opens the bucket instead.
// Transient failures are retried with exponential backoff (10ms, 20ms, 40ms...).
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - js: JetStream context
//   - opts: Bucket options
//   - maxRetries: Maximum number of attempts (default: 3)
//
// Returns:
//   - jetstream.KeyValue: The KV bucket instance
//   - error: Invalid options, or the last error after all attempts
//
// Example:
//
//	kv, err := kvutil.EnsureBucket(ctx, js, kvutil.BucketOptions{
//	    Bucket:   "rota-state",
//	    History:  5,
//	    Replicas: 1,
//	}, 3)
func EnsureBucket(ctx context.Context, js jetstream.JetStream, opts BucketOptions, maxRetries int) (jetstream.KeyValue, error) {
	cfg, err := opts.KeyValueConfig()
	if err != nil {
		return nil, err
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		kv, err := js.CreateKeyValue(ctx, cfg)
		if err == nil {
			return kv, nil
		}

		if errors.Is(err, jetstream.ErrBucketExists) {
			// Existing bucket with a different configuration, e.g. other history.
			kv, err := js.KeyValue(ctx, cfg.Bucket)
			if err == nil {
				return kv, nil
			}
			lastErr = fmt.Errorf("bucket exists but failed to open: %w", err)
		} else {
			lastErr = err
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("context cancelled during KV bucket creation: %w", ctx.Err())
		}

		if attempt < maxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * 10 * time.Millisecond //nolint:gosec // attempt is bounded by maxRetries
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("failed to create/open KV bucket %s after %d attempts: %w",
		cfg.Bucket, maxRetries, lastErr)
}
