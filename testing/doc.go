// Package testing provides test utilities for rota.
//
// It offers an embedded NATS server with JetStream for exercising the KV
// state store, and a logger that writes through testing.T. It follows Go's
// convention of providing testing utilities in a dedicated package (similar
// to net/http/httptest).
//
// Example usage:
//
//	import (
//	    "testing"
//	    rotatest "github.com/arloliu/rota/testing"
//	)
//
//	func TestMyStore(t *testing.T) {
//	    _, nc := rotatest.StartEmbeddedNATS(t)
//	    kv := rotatest.CreateJetStreamKV(t, nc, "rota-state")
//	    st := store.NewKV(kv, "state")
//	    // ...
//	}
package testing
