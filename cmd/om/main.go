// Package main is the entry point for the om CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/juspay/omnix-sub000/cmd/om/commands"
	"github.com/juspay/omnix-sub000/internal/app"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	_ "github.com/juspay/omnix-sub000/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	cli := commands.New(components.App)
	if f, ok := components.Logger.(commands.LogFormatter); ok {
		cli.SetLogFormatter(f)
	}
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Failed units are already reported by the renderer and the summary.
		if errors.Is(err, domain.ErrUnitFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
