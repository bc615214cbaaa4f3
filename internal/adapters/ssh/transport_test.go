package ssh_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/juspay/omnix-sub000/internal/adapters/ssh"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommand_QuotesArguments(t *testing.T) {
	cmd := ssh.Command("builder", []string{"nix", "run", "/nix/store/a-om", "--", "ci", "run", "/nix/store/s-source#default.my unit"})

	assert.Equal(t, "ssh", cmd.Name)
	assert.Equal(t, []string{
		"builder", "--",
		"nix run /nix/store/a-om -- ci run '/nix/store/s-source#default.my unit'",
	}, cmd.Args)
}

func TestTransport_Exec(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)

	var relayed bytes.Buffer
	runner.EXPECT().Output(gomock.Any(), gomock.Any(), &relayed).DoAndReturn(
		func(_ context.Context, cmd domain.Command, stderr io.Writer) ([]byte, error) {
			assert.Equal(t, []string{"ssh", "builder", "--", "readlink /tmp/om-1/result"}, cmd.Argv())
			_, _ = io.WriteString(stderr, "warning: remote\n")
			return []byte("/nix/store/r-result.json\n"), nil
		},
	)

	out, err := ssh.NewTransport(runner).Exec(context.Background(), "builder", []string{"readlink", "/tmp/om-1/result"}, &relayed)
	require.NoError(t, err)
	assert.Equal(t, "/nix/store/r-result.json\n", string(out))
	assert.Equal(t, "warning: remote\n", relayed.String())
}

func TestTransport_Exec_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exit status 255"))

	_, err := ssh.NewTransport(runner).Exec(context.Background(), "builder", []string{"true"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote command failed")
	assert.Contains(t, err.Error(), "exit status 255")
}
