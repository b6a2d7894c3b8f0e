package types

import "context"

// Hooks defines callbacks for Service events.
//
// All hooks are optional. Hooks run synchronously after the event, on the
// caller's goroutine, and receive the caller's context.
//
// Hook execution behavior:
//   - OnStateSaved and OnNotice only fire after the new state was durably saved
//   - Hook errors are logged but never fail the operation
//   - A slow hook delays the return of the Service call that triggered it
//
// Example:
//
//	hooks := &rota.Hooks{
//	    OnNotice: func(ctx context.Context, namespace string, n rota.Notice) error {
//	        return notifier.Send(ctx, namespace, n.Message)
//	    },
//	}
type Hooks struct {
	// OnStateSaved is called after an operation's new state was saved.
	// op names the operation ("assign", "clear", "reset_history", ...).
	OnStateSaved func(ctx context.Context, namespace, op string, state AppState) error

	// OnNotice is called for every notice of a saved operation, in order.
	OnNotice func(ctx context.Context, namespace string, notice Notice) error

	// OnError is called when an operation fails.
	OnError func(ctx context.Context, err error) error
}
