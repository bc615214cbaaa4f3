// Package nix implements the store, build and flake ports on top of the nix CLI.
package nix

import (
	"bytes"
	"context"
	"io"
	"slices"
	"strings"

	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	nixBin      = "nix"
	nixStoreBin = "nix-store"
)

// experimentalFeatures are enabled on every nix invocation.
var experimentalFeatures = []string{"--extra-experimental-features", "nix-command flakes"}

// cli runs nix binaries through a ports.Runner.
type cli struct {
	runner ports.Runner
}

// nix runs the nix binary with flakes enabled.
func (c cli) nix(ctx context.Context, log io.Writer, args ...string) ([]byte, error) {
	return c.run(ctx, log, domain.NewCommand(nixBin, slices.Concat(experimentalFeatures, args)...))
}

// nixStore runs the legacy nix-store binary.
func (c cli) nixStore(ctx context.Context, log io.Writer, args ...string) ([]byte, error) {
	return c.run(ctx, log, domain.NewCommand(nixStoreBin, args...))
}

// attach runs the nix binary on a pseudo terminal.
func (c cli) attach(ctx context.Context, out io.Writer, args ...string) error {
	cmd := domain.NewCommand(nixBin, slices.Concat(experimentalFeatures, args)...)
	if err := c.runner.Attach(ctx, cmd, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrNixCommandFailed.Error()), "args", strings.Join(args, " "))
	}
	return nil
}

func (c cli) run(ctx context.Context, log io.Writer, cmd domain.Command) ([]byte, error) {
	out, err := c.runner.Output(ctx, cmd, log)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNixCommandFailed.Error()), "args", strings.Join(cmd.Args, " "))
	}
	return out, nil
}

// lines splits command output into non-empty trimmed lines.
func lines(out []byte) []string {
	var result []string
	for _, line := range bytes.Split(out, []byte("\n")) {
		if s := strings.TrimSpace(string(line)); s != "" {
			result = append(result, s)
		}
	}
	return result
}

func storePaths(ss []string) []domain.StorePath {
	paths := make([]domain.StorePath, len(ss))
	for i, s := range ss {
		paths[i] = domain.StorePath(s)
	}
	return paths
}

func pathArgs(paths []domain.StorePath) []string {
	args := make([]string, len(paths))
	for i, p := range paths {
		args[i] = p.String()
	}
	return args
}
