package nix

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSystemsResolver(t *testing.T, runner *mocks.MockRunner) *SystemsResolver {
	t.Helper()
	return &SystemsResolver{
		cli:      cli{runner: runner},
		cacheDir: t.TempDir(),
		current:  x86_64Linux,
	}
}

func TestSystemsResolver_WithoutEvaluation(t *testing.T) {
	tests := []struct {
		name        string
		ref         string
		wantURL     domain.FlakeURL
		wantSystems []domain.System
	}{
		{
			name:        "empty means current system",
			ref:         "",
			wantURL:     "github:nix-systems/x86_64-linux",
			wantSystems: []domain.System{x86_64Linux},
		},
		{
			name:        "known flake",
			ref:         "github:nix-systems/default-darwin",
			wantURL:     "github:nix-systems/default-darwin",
			wantSystems: []domain.System{aarch64Darwin, x86_64Darwin},
		},
		{
			name:        "literal list matching a known flake",
			ref:         "x86_64-linux,aarch64-linux",
			wantURL:     "github:nix-systems/default-linux",
			wantSystems: []domain.System{x86_64Linux, aarch64Linux},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			r := newTestSystemsResolver(t, mocks.NewMockRunner(ctrl))

			got, err := r.Resolve(context.Background(), tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, got.URL)
			assert.Equal(t, tt.wantSystems, got.Systems)
		})
	}
}

func TestSystemsResolver_MaterializesUnknownList(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestSystemsResolver(t, mocks.NewMockRunner(ctrl))

	got, err := r.Resolve(context.Background(), "x86_64-linux,aarch64-darwin")
	require.NoError(t, err)
	assert.Equal(t, []domain.System{x86_64Linux, aarch64Darwin}, got.Systems)
	require.True(t, strings.HasPrefix(got.URL.String(), "path:"+r.cacheDir))

	dir := strings.TrimPrefix(got.URL.String(), "path:")
	data, err := os.ReadFile(filepath.Join(dir, "default.nix"))
	require.NoError(t, err)
	assert.Equal(t, "[ \"x86_64-linux\" \"aarch64-darwin\" ]\n", string(data))
	assert.FileExists(t, filepath.Join(dir, "flake.nix"))

	again, err := r.Resolve(context.Background(), "x86_64-linux,aarch64-darwin")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestSystemsResolver_EvaluatesFlake(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command, _ io.Writer) ([]byte, error) {
			assert.Equal(t, `import (builtins.getFlake "github:me/systems").outPath`, cmd.Args[len(cmd.Args)-1])
			return []byte(`["riscv64-linux"]`), nil
		},
	)
	r := newTestSystemsResolver(t, runner)

	got, err := r.Resolve(context.Background(), "github:me/systems")
	require.NoError(t, err)
	assert.Equal(t, domain.FlakeURL("github:me/systems"), got.URL)
	assert.Equal(t, []domain.System{"riscv64-linux"}, got.Systems)
}

func TestSystemsResolver_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestSystemsResolver(t, mocks.NewMockRunner(ctrl))

	_, err := r.Resolve(context.Background(), "linux")
	require.ErrorIs(t, err, domain.ErrInvalidSystemsList)
}

func TestSystemsResolver_RelativeFlakeIsMadeAbsolute(t *testing.T) {
	t.Chdir(t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		ref  string
		want string
	}{
		{ref: "./systems", want: filepath.Join(wd, "systems")},
		{ref: "path:./systems", want: "path:" + filepath.Join(wd, "systems")},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockRunner(ctrl)
			runner.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, cmd domain.Command, _ io.Writer) ([]byte, error) {
					want := "import (builtins.getFlake \"" + tt.want + "\").outPath"
					assert.Equal(t, want, cmd.Args[len(cmd.Args)-1])
					return []byte(`["x86_64-linux"]`), nil
				},
			)
			r := newTestSystemsResolver(t, runner)

			got, err := r.Resolve(context.Background(), tt.ref)
			require.NoError(t, err)
			assert.Equal(t, domain.FlakeURL(tt.ref), got.URL)
		})
	}
}

func TestSystemsResolver_EmptyEvaluatedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(`[]`), nil)
	r := newTestSystemsResolver(t, runner)

	_, err := r.Resolve(context.Background(), "github:me/systems")
	require.ErrorIs(t, err, domain.ErrInvalidSystemsList)
}
