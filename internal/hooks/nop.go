package hooks

import (
	"context"

	"github.com/arloliu/rota/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, string, string, types.AppState) error = (*NopHooks)(nil).OnStateSaved
	_ func(context.Context, string, types.Notice) error           = (*NopHooks)(nil).OnNotice
	_ func(context.Context, error) error                          = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnStateSaved: h.OnStateSaved,
		OnNotice:     h.OnNotice,
		OnError:      h.OnError,
	}
}

// Fill returns h with every nil callback replaced by its no-op.
func Fill(h *types.Hooks) types.Hooks {
	nop := NewNop()
	if h == nil {
		return nop
	}

	out := *h
	if out.OnStateSaved == nil {
		out.OnStateSaved = nop.OnStateSaved
	}
	if out.OnNotice == nil {
		out.OnNotice = nop.OnNotice
	}
	if out.OnError == nil {
		out.OnError = nop.OnError
	}

	return out
}

// OnStateSaved is a no-op implementation.
func (h *NopHooks) OnStateSaved(_ context.Context, _ /* namespace */, _ /* op */ string, _ types.AppState) error {
	return nil
}

// OnNotice is a no-op implementation.
func (h *NopHooks) OnNotice(_ context.Context, _ /* namespace */ string, _ types.Notice) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
