// Command rota manages weekly classroom job rotations stored in NATS JetStream KV.
//
// Usage:
//
//	rota --namespace room-12 assign
//	rota --namespace room-12 show
//	rota --namespace room-12 student add 21
//	rota --namespace room-12 reset-all --student 1 --student 2 --job "Line Leader"
//
// Global flags select the configuration file, NATS server, namespace, random
// seed, log level and an optional Prometheus metrics listener.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	a := newApp(os.Stdout, os.Stderr)
	err := newRootCmd(a).ExecuteContext(ctx)
	a.close()
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
