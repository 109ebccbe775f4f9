package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/observability"
)

// LogHooks reports engine events to a logger. The logger in the event's
// context wins over the fallback, so events follow the command's level.
type LogHooks struct {
	fallback *log.Logger
}

var (
	_ observability.EditHooks  = LogHooks{}
	_ observability.AuditHooks = LogHooks{}
)

// Hooks returns observability hooks that log through c's logger.
func (c *CLI) Hooks() LogHooks {
	return LogHooks{fallback: c.Logger}
}

func (h LogHooks) logger(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return h.fallback
}

func (h LogHooks) OnEditApplied(ctx context.Context, op, target string, d time.Duration) {
	h.logger(ctx).Debug("edit applied", "op", op, "target", target, "took", d.Round(time.Microsecond))
}

func (h LogHooks) OnEditRefused(ctx context.Context, op, target string, reason error) {
	h.logger(ctx).Warn("edit refused", "op", op, "target", target, "reason", errors.UserMessage(reason))
}

func (h LogHooks) OnMerge(ctx context.Context, moving, stationary string, transfer bool) {
	h.logger(ctx).Debug("merged", "moving", moving, "into", stationary, "edges_transferred", transfer)
}

func (h LogHooks) OnAuditComplete(ctx context.Context, nodes, edges, violations int, d time.Duration) {
	h.logger(ctx).Debug("audit complete", "nodes", nodes, "edges", edges, "violations", violations, "took", d.Round(time.Microsecond))
}
