// Package ssh runs commands on remote hosts through the ssh client.
package ssh

import (
	"context"
	"io"

	"al.essio.dev/pkg/shellescape"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

const sshBin = "ssh"

// Transport implements ports.Transport.
type Transport struct {
	runner ports.Runner
}

// NewTransport creates a new Transport.
func NewTransport(runner ports.Runner) *Transport {
	return &Transport{runner: runner}
}

// Exec runs argv on host. The remote shell receives the arguments quoted,
// so they reach the remote program unchanged. Remote standard error is
// relayed to stderr verbatim.
func (t *Transport) Exec(ctx context.Context, host string, argv []string, stderr io.Writer) ([]byte, error) {
	out, err := t.runner.Output(ctx, Command(host, argv), stderr)
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, domain.ErrRemoteCommandFailed.Error()), "host", host), "command", argv[0])
	}
	return out, nil
}

// Command returns the local ssh invocation running argv on host.
func Command(host string, argv []string) domain.Command {
	return domain.NewCommand(sshBin, host, "--", shellescape.QuoteCommand(argv))
}

var _ ports.Transport = (*Transport)(nil)
