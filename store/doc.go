// Package store provides types.StateStore implementations.
//
// KV persists state in a NATS JetStream KeyValue bucket and uses entry
// revisions for compare-and-swap. Memory keeps state in-process with the same
// revision semantics and suits tests, examples and single-process use.
// Instrumented wraps any StateStore with latency and conflict metrics.
//
// Namespaces are hashed into keys (see Key), so any caller identifier is
// accepted without escaping.
package store
