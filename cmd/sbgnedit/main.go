package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/sbgnedit/internal/cli"
	"github.com/matzehuels/sbgnedit/pkg/buildinfo"
	"github.com/matzehuels/sbgnedit/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	buildinfo.Resolve()

	c := cli.New(os.Stderr, cli.LogInfo)
	hooks := c.Hooks()
	observability.SetEditHooks(hooks)
	observability.SetAuditHooks(hooks)

	return c.RootCommand().ExecuteContext(ctx)
}
