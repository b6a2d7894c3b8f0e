package kvutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"

	rotatest "github.com/arloliu/rota/testing"
)

func TestBucketOptions_KeyValueConfig(t *testing.T) {
	tests := []struct {
		name    string
		opts    BucketOptions
		wantErr string
	}{
		{"valid", BucketOptions{Bucket: "rota-state", History: 5, Replicas: 1}, ""},
		{"missing bucket", BucketOptions{History: 5, Replicas: 1}, "bucket name is required"},
		{"zero history", BucketOptions{Bucket: "b", History: 0, Replicas: 1}, "history must be between"},
		{"history too large", BucketOptions{Bucket: "b", History: 65, Replicas: 1}, "history must be between"},
		{"no replicas", BucketOptions{Bucket: "b", History: 1}, "replicas must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.opts.KeyValueConfig()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "rota-state", cfg.Bucket)
			require.Equal(t, uint8(5), cfg.History)
			require.Equal(t, jetstream.FileStorage, cfg.Storage)
			require.Zero(t, cfg.TTL)
		})
	}

	t.Run("memory storage", func(t *testing.T) {
		cfg, err := BucketOptions{Bucket: "b", History: 1, Replicas: 1, Memory: true}.KeyValueConfig()
		require.NoError(t, err)
		require.Equal(t, jetstream.MemoryStorage, cfg.Storage)
	})
}

func TestEnsureBucket(t *testing.T) {
	_, nc := rotatest.StartEmbeddedNATS(t)

	ctx := context.Background()
	js, err := jetstream.New(nc)
	require.NoError(t, err)

	t.Run("successful creation on first try", func(t *testing.T) {
		kv, err := EnsureBucket(ctx, js, BucketOptions{Bucket: "rota-bucket-1", History: 5, Replicas: 1, Memory: true}, 3)
		require.NoError(t, err)
		require.Equal(t, "rota-bucket-1", kv.Bucket())

		status, err := kv.Status(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(5), status.History())
	})

	t.Run("bucket exists with other history - should open it", func(t *testing.T) {
		_, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: "rota-bucket-2", History: 1})
		require.NoError(t, err)

		kv, err := EnsureBucket(ctx, js, BucketOptions{Bucket: "rota-bucket-2", History: 10, Replicas: 1}, 3)
		require.NoError(t, err)
		require.NotNil(t, kv)
	})

	t.Run("concurrent creates - 10 callers", func(t *testing.T) {
		const callers = 10

		var wg sync.WaitGroup
		errs := make(chan error, callers)
		kvs := make([]jetstream.KeyValue, callers)
		opts := BucketOptions{Bucket: "rota-bucket-3", History: 5, Replicas: 1}

		for i := range callers {
			wg.Add(1) //nolint:revive // Standard pattern for concurrent operations
			go func(idx int) {
				defer wg.Done()

				kv, err := EnsureBucket(ctx, js, opts, 5)
				if err != nil {
					errs <- err
					return
				}
				kvs[idx] = kv
			}(i)
		}

		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		for i, kv := range kvs {
			require.NotNil(t, kv, "caller %d should have a KV instance", i)
		}
	})

	t.Run("invalid options are not retried", func(t *testing.T) {
		_, err := EnsureBucket(ctx, js, BucketOptions{Bucket: "rota-bucket-4"}, 3)
		require.ErrorContains(t, err, "history must be between")
	})

	t.Run("context timeout - should fail gracefully", func(t *testing.T) {
		shortCtx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()

		time.Sleep(time.Millisecond)

		_, err := EnsureBucket(shortCtx, js, BucketOptions{Bucket: "rota-bucket-5", History: 1, Replicas: 1}, 3)
		require.Error(t, err)
		require.Contains(t, err.Error(), "context")
	})
}
