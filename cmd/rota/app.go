package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arloliu/rota"
	"github.com/arloliu/rota/internal/kvutil"
	"github.com/arloliu/rota/internal/logging"
	"github.com/arloliu/rota/internal/metrics"
	"github.com/arloliu/rota/internal/shuffle"
	"github.com/arloliu/rota/store"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configPath  string
	natsURL     string
	namespace   string
	seed        uint64
	logLevel    string
	logFormat   string
	metricsAddr string
}

// storeOpener opens the state store for a loaded configuration. The returned
// function releases the store's resources.
type storeOpener func(ctx context.Context, cfg *rota.Config, natsURL string) (rota.StateStore, func(), error)

// app carries the state of one CLI invocation.
type app struct {
	flags     globalFlags
	out       io.Writer
	errOut    io.Writer
	openStore storeOpener
	registry  *prometheus.Registry

	svc     *rota.Service
	closers []func()
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:       out,
		errOut:    errOut,
		openStore: openKVStore,
		registry:  prometheus.NewRegistry(),
	}
}

// setup loads the configuration and builds the Service. It runs before every
// command that talks to the store.
func (a *app) setup(ctx context.Context) error {
	if a.flags.namespace == "" {
		return rota.ErrNamespaceRequired
	}

	cfg := rota.DefaultConfig()
	if a.flags.configPath != "" {
		loaded, err := rota.LoadConfig(a.flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := logging.New(a.errOut, a.flags.logLevel, a.flags.logFormat)
	if err != nil {
		return err
	}

	collector := metrics.NewPrometheus(a.registry, "")
	if a.flags.metricsAddr != "" {
		if err := a.serveMetrics(a.flags.metricsAddr); err != nil {
			return err
		}
	}

	st, release, err := a.openStore(ctx, &cfg, a.flags.natsURL)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, release)

	opts := []rota.Option{
		rota.WithLogger(log.With("namespace", a.flags.namespace)),
		rota.WithMetrics(collector),
	}
	if a.flags.seed != 0 {
		opts = append(opts, rota.WithRand(shuffle.Seeded(a.flags.seed)))
	}

	svc, err := rota.NewService(&cfg, st, opts...)
	if err != nil {
		return err
	}
	a.svc = svc

	return nil
}

// serveMetrics exposes the registry on addr until close is called.
func (a *app) serveMetrics(addr string) error {
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintln(a.errOut, "metrics server:", err)
		}
	}()

	a.closers = append(a.closers, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	return nil
}

// close releases everything setup acquired, newest first.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// openKVStore connects to NATS and opens (or creates) the configured bucket.
func openKVStore(ctx context.Context, cfg *rota.Config, natsURL string) (rota.StateStore, func(), error) {
	if natsURL == "" {
		natsURL = os.Getenv("NATS_URL")
	}
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}

	nc, err := nats.Connect(natsURL, nats.Name("rota-cli"), nats.Timeout(cfg.OperationTimeout))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: connect to %s: %w", rota.ErrStoreUnavailable, natsURL, err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("create jetstream context: %w", err)
	}

	openCtx, cancel := context.WithTimeout(ctx, cfg.OperationTimeout)
	defer cancel()

	kv, err := store.OpenKV(openCtx, js, kvutil.BucketOptions{
		Bucket:   cfg.KV.Bucket,
		History:  cfg.KV.History,
		Replicas: cfg.KV.Replicas,
	}, cfg.KV.KeyPrefix, cfg.KV.CreateRetries)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}

	return kv, func() { _ = nc.Drain() }, nil
}
