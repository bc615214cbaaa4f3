package nix_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/juspay/omnix-sub000/internal/adapters/nix"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeStore answers nix-store queries from a fixed dependency graph.
type fakeStore struct {
	derivers   map[string]string
	requisites map[string][]string
	calls      [][]string
}

func (f *fakeStore) Output(_ context.Context, cmd domain.Command, _ io.Writer) ([]byte, error) {
	f.calls = append(f.calls, cmd.Argv())
	var out []string
	switch {
	case strings.Join(cmd.Args[:2], " ") == "--query --deriver":
		for _, p := range cmd.Args[2:] {
			d, ok := f.derivers[p]
			if !ok {
				d = "unknown-deriver"
			}
			out = append(out, d)
		}
	case strings.Join(cmd.Args[:3], " ") == "--query --requisites --include-outputs":
		for _, p := range cmd.Args[3:] {
			out = append(out, f.requisites[p]...)
		}
	}
	return []byte(strings.Join(out, "\n") + "\n"), nil
}

func (f *fakeStore) Attach(context.Context, domain.Command, io.Writer) error {
	return nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		derivers: map[string]string{
			"/nix/store/a-foo": "/nix/store/a-foo.drv",
			"/nix/store/b-bar": "/nix/store/b-bar.drv",
			"/nix/store/c-lib": "/nix/store/c-lib.drv",
		},
		requisites: map[string][]string{
			"/nix/store/a-foo.drv": {"/nix/store/a-foo.drv", "/nix/store/a-foo", "/nix/store/c-lib.drv", "/nix/store/c-lib"},
			"/nix/store/b-bar.drv": {"/nix/store/b-bar.drv", "/nix/store/b-bar"},
			"/nix/store/c-lib.drv": {"/nix/store/c-lib.drv", "/nix/store/c-lib"},
		},
	}
}

func TestStore_Closure(t *testing.T) {
	store, err := nix.NewStore(newFakeStore())
	require.NoError(t, err)

	outputs := []domain.StorePath{"/nix/store/a-foo", "/nix/store/b-bar"}
	closure, err := store.Closure(context.Background(), outputs)
	require.NoError(t, err)

	assert.Subset(t, closure, outputs)
	assert.Equal(t, []domain.StorePath{
		"/nix/store/a-foo",
		"/nix/store/a-foo.drv",
		"/nix/store/b-bar",
		"/nix/store/b-bar.drv",
		"/nix/store/c-lib",
		"/nix/store/c-lib.drv",
	}, closure)

	again, err := store.Closure(context.Background(), closure)
	require.NoError(t, err)
	assert.Equal(t, closure, again)
}

func TestStore_Closure_Empty(t *testing.T) {
	fake := newFakeStore()
	store, err := nix.NewStore(fake)
	require.NoError(t, err)

	closure, err := store.Closure(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, closure)
	assert.Empty(t, fake.calls)
}

func TestStore_QueryDeriver_Unknown(t *testing.T) {
	store, err := nix.NewStore(newFakeStore())
	require.NoError(t, err)

	_, err = store.QueryDeriver(context.Background(), []domain.StorePath{"/nix/store/a-foo", "/nix/store/z-source"})
	require.ErrorIs(t, err, domain.ErrUnknownDeriver)
	assert.Contains(t, err.Error(), "unknown deriver")
}

func TestStore_QueryDeriver_Cached(t *testing.T) {
	fake := newFakeStore()
	store, err := nix.NewStore(fake)
	require.NoError(t, err)

	paths := []domain.StorePath{"/nix/store/a-foo", "/nix/store/a-foo", "/nix/store/b-bar.drv"}
	first, err := store.QueryDeriver(context.Background(), paths)
	require.NoError(t, err)
	second, err := store.QueryDeriver(context.Background(), paths)
	require.NoError(t, err)

	assert.Equal(t, []domain.StorePath{"/nix/store/a-foo.drv", "/nix/store/a-foo.drv", "/nix/store/b-bar.drv"}, first)
	assert.Equal(t, first, second)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"nix-store", "--query", "--deriver", "/nix/store/a-foo"}, fake.calls[0])
}

func TestStore_Copy(t *testing.T) {
	tests := []struct {
		name string
		opts domain.CopyOptions
		want []string
	}{
		{
			name: "to remote without signature check",
			opts: domain.CopyOptions{Direction: domain.CopyTo, StoreURI: "ssh-ng://builder", NoCheckSigs: true},
			want: []string{"copy", "--to", "ssh-ng://builder", "--no-check-sigs", "/nix/store/a-foo"},
		},
		{
			name: "from remote",
			opts: domain.CopyOptions{Direction: domain.CopyFrom, StoreURI: "ssh-ng://builder"},
			want: []string{"copy", "--from", "ssh-ng://builder", "/nix/store/a-foo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockRunner(ctrl)
			runner.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, cmd domain.Command, _ io.Writer) ([]byte, error) {
					assert.Equal(t, "nix", cmd.Name)
					assert.Equal(t, tt.want, cmd.Args[2:])
					return nil, nil
				},
			)

			store, err := nix.NewStore(runner)
			require.NoError(t, err)
			require.NoError(t, store.Copy(context.Background(), []domain.StorePath{"/nix/store/a-foo"}, tt.opts))
		})
	}
}

func TestStore_Copy_NothingToCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, err := nix.NewStore(mocks.NewMockRunner(ctrl))
	require.NoError(t, err)

	require.NoError(t, store.Copy(context.Background(), nil, domain.CopyOptions{StoreURI: "ssh-ng://builder"}))
}

func TestStore_AddFileAndRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)

	gomock.InOrder(
		runner.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd domain.Command, _ io.Writer) ([]byte, error) {
				assert.Equal(t, []string{"store", "add-file", "/tmp/om-result.json"}, cmd.Args[2:])
				return []byte("/nix/store/r-om-result.json\n"), nil
			},
		),
		runner.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd domain.Command, _ io.Writer) ([]byte, error) {
				assert.Equal(t, "nix-store", cmd.Name)
				assert.Equal(t, []string{"--add-root", "result", "--indirect", "--realise", "/nix/store/r-om-result.json"}, cmd.Args)
				return nil, nil
			},
		),
	)

	store, err := nix.NewStore(runner)
	require.NoError(t, err)

	path, err := store.AddFile(context.Background(), "/tmp/om-result.json")
	require.NoError(t, err)
	assert.Equal(t, domain.StorePath("/nix/store/r-om-result.json"), path)

	require.NoError(t, store.AddRoot(context.Background(), "result", []domain.StorePath{path}))
}

func TestStore_AddFile_UnexpectedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Output(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(""), nil)

	store, err := nix.NewStore(runner)
	require.NoError(t, err)

	_, err = store.AddFile(context.Background(), "/tmp/om-result.json")
	require.ErrorIs(t, err, domain.ErrNixOutputInvalid)
}
