// Package observability provides hooks for instrumenting diagram edits.
//
// Library packages never log. They report what they did through the hooks
// registered here, and the application decides what to do with the events:
// log them, count them, or ignore them.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so no import cycles
// arise and the core stays free of logging and metrics dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEditHooks(&myEditHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Edit().OnEditApplied(ctx, "convert-node", id, time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Edit Hooks
// =============================================================================

// EditHooks receives events from editing commands and merges.
type EditHooks interface {
	// OnEditApplied records a committed edit of op on target.
	OnEditApplied(ctx context.Context, op, target string, duration time.Duration)

	// OnEditRefused records an edit the constraint rules refused.
	OnEditRefused(ctx context.Context, op, target string, reason error)

	// OnMerge records a drop of moving onto stationary. Transfer is true when
	// edges were handed over and false when the stationary node adopted the
	// moving node's type.
	OnMerge(ctx context.Context, moving, stationary string, transfer bool)
}

// =============================================================================
// Audit Hooks
// =============================================================================

// AuditHooks receives events from whole-diagram checks.
type AuditHooks interface {
	// OnAuditComplete records a finished audit.
	OnAuditComplete(ctx context.Context, nodes, edges, violations int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEditHooks is a no-op implementation of EditHooks.
type NoopEditHooks struct{}

func (NoopEditHooks) OnEditApplied(context.Context, string, string, time.Duration) {}
func (NoopEditHooks) OnEditRefused(context.Context, string, string, error)         {}
func (NoopEditHooks) OnMerge(context.Context, string, string, bool)                {}

// NoopAuditHooks is a no-op implementation of AuditHooks.
type NoopAuditHooks struct{}

func (NoopAuditHooks) OnAuditComplete(context.Context, int, int, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	editHooks  EditHooks  = NoopEditHooks{}
	auditHooks AuditHooks = NoopAuditHooks{}
	hooksMu    sync.RWMutex
)

// SetEditHooks registers custom edit hooks.
// This should be called once at application startup before any edits.
func SetEditHooks(h EditHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editHooks = h
	}
}

// SetAuditHooks registers custom audit hooks.
func SetAuditHooks(h AuditHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		auditHooks = h
	}
}

// Edit returns the registered edit hooks.
func Edit() EditHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editHooks
}

// Audit returns the registered audit hooks.
func Audit() AuditHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return auditHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editHooks = NoopEditHooks{}
	auditHooks = NoopAuditHooks{}
}
