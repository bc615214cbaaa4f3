package nix

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// missingAttribute is how nix reports that a flake lacks an output attribute.
const missingAttribute = "does not provide attribute"

// Flake implements ports.FlakeEvaluator and ports.FlakeCommands.
type Flake struct {
	cli cli
}

// NewFlake creates a new Flake.
func NewFlake(runner ports.Runner) *Flake {
	return &Flake{cli: cli{runner: runner}}
}

// EvalJSON evaluates ref to JSON.
func (f *Flake) EvalJSON(ctx context.Context, ref domain.FlakeURL) ([]byte, bool, error) {
	var stderr bytes.Buffer
	out, err := f.cli.nix(ctx, &stderr, "eval", "--json", ref.String())
	if err != nil {
		if strings.Contains(stderr.String(), missingAttribute) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return out, true, nil
}

// Metadata locks ref and returns the store path of its source.
func (f *Flake) Metadata(ctx context.Context, ref domain.FlakeURL) (domain.FlakeMetadata, error) {
	out, err := f.cli.nix(ctx, nil, "flake", "metadata", "--json", ref.String())
	if err != nil {
		return domain.FlakeMetadata{}, err
	}

	var meta flakeMetadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return domain.FlakeMetadata{}, zerr.Wrap(err, domain.ErrNixOutputInvalid.Error())
	}
	if meta.Path == "" {
		return domain.FlakeMetadata{}, zerr.With(zerr.Wrap(domain.ErrNixOutputInvalid, "metadata without store path"), "flake", ref.String())
	}
	return domain.FlakeMetadata{URL: meta.URL, Path: domain.StorePath(meta.Path)}, nil
}

// Archive copies ref and its inputs to the store.
func (f *Flake) Archive(ctx context.Context, ref domain.FlakeURL) ([]domain.StorePath, error) {
	out, err := f.cli.nix(ctx, nil, "flake", "archive", "--json", ref.String())
	if err != nil {
		return nil, err
	}

	var root archiveNode
	if err := json.Unmarshal(out, &root); err != nil {
		return nil, zerr.Wrap(err, domain.ErrNixOutputInvalid.Error())
	}
	return domain.SortedPaths(storePaths(root.collect(nil))), nil
}

// LockCheck fails when the lock file would have to change.
func (f *Flake) LockCheck(ctx context.Context, flake domain.FlakeURL, log io.Writer) error {
	_, err := f.cli.nix(ctx, log, "flake", "lock", "--no-update-lock-file", flake.String())
	return err
}

// Check runs `nix flake check` with the given input overrides.
func (f *Flake) Check(ctx context.Context, flake domain.FlakeURL, overrides []domain.InputOverride, log io.Writer) error {
	args := append([]string{"flake", "check", "-L", flake.String()}, overrideArgs("", overrides)...)
	_, err := f.cli.nix(ctx, log, args...)
	return err
}

// RunApp runs a flake app with args.
func (f *Flake) RunApp(ctx context.Context, app domain.FlakeURL, args []string, out io.Writer) error {
	return f.cli.attach(ctx, out, append([]string{"run", app.String(), "--"}, args...)...)
}

// DevelopRun runs command inside a devshell.
func (f *Flake) DevelopRun(ctx context.Context, shell domain.FlakeURL, command []string, out io.Writer) error {
	return f.cli.attach(ctx, out, append([]string{"develop", shell.String(), "-c"}, command...)...)
}

var (
	_ ports.FlakeEvaluator = (*Flake)(nil)
	_ ports.FlakeCommands  = (*Flake)(nil)
)
