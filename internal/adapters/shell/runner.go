// Package shell runs external programs with their output relayed to a writer.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// drainTimeout bounds how long the relay keeps reading after the process exited.
	drainTimeout = 5 * time.Second

	// stderrTailLines is the number of stderr lines attached to a failure.
	stderrTailLines = 20
)

// Runner implements ports.Runner using os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Output runs the command, relaying standard error while it runs.
func (r *Runner) Output(ctx context.Context, c domain.Command, stderr io.Writer) ([]byte, error) {
	if stderr == nil {
		stderr = io.Discard
	}

	cmd := command(ctx, c)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCommandStartFailed.Error())
	}
	defer func() { _ = pr.Close() }()
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		_ = pw.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", c.Name)
	}
	// The child holds its own copy of the write end.
	_ = pw.Close()

	tail := newTailWriter(stderrTailLines)
	lines := newLineWriter(io.MultiWriter(stderr, tail))

	var relay errgroup.Group
	relay.Go(func() error {
		defer func() { _ = lines.Close() }()
		_, err := io.Copy(lines, pr)
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil
		}
		return err
	})

	waitErr := cmd.Wait()
	// Descendants may keep the pipe open; stop reading after a grace period.
	_ = pr.SetReadDeadline(time.Now().Add(drainTimeout))
	relayErr := relay.Wait()

	if waitErr != nil {
		return stdout.Bytes(), commandError(c, waitErr, tail.String())
	}
	if relayErr != nil {
		return stdout.Bytes(), zerr.Wrap(relayErr, "failed to relay stderr")
	}
	return stdout.Bytes(), nil
}

// Attach runs the command on a pseudo terminal so tools keep their
// interactive output, copying everything to out line by line.
func (r *Runner) Attach(ctx context.Context, c domain.Command, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	cmd := command(ctx, c)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCommandStartFailed.Error()), "command", c.Name)
	}

	tail := newTailWriter(stderrTailLines)
	lines := newLineWriter(io.MultiWriter(out, tail))

	var relay errgroup.Group
	relay.Go(func() error {
		defer func() { _ = ptmx.Close() }()
		defer func() { _ = lines.Close() }()
		_, err := io.Copy(lines, ptmx)
		// Reading the master side fails with EIO once the child side is closed.
		if errors.Is(err, syscall.EIO) || errors.Is(err, os.ErrClosed) {
			return nil
		}
		return err
	})

	waitErr := cmd.Wait()
	relayErr := relay.Wait()

	if waitErr != nil {
		return commandError(c, waitErr, tail.String())
	}
	if relayErr != nil {
		return zerr.Wrap(relayErr, "failed to relay output")
	}
	return nil
}

func command(ctx context.Context, c domain.Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // arguments are built by the adapters
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.Env...)
	cmd.WaitDelay = drainTimeout
	return cmd
}

func commandError(c domain.Command, err error, stderr string) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(c.Argv(), " "))
	wrapped = zerr.With(wrapped, "exit_code", exitCode)
	if stderr != "" {
		wrapped = zerr.With(wrapped, "stderr", stderr)
	}
	return wrapped
}

var _ ports.Runner = (*Runner)(nil)
