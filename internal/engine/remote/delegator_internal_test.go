package remote

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/juspay/omnix-sub000/internal/adapters/telemetry"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	omSource   = domain.StorePath("/nix/store/om0-source")
	flakeStore = domain.StorePath("/nix/store/prj-source")
	host       = "builder.example.com"
)

type fixture struct {
	d         *Delegator
	flakes    *mocks.MockFlakeEvaluator
	store     *mocks.MockStoreClient
	transport *mocks.MockTransport
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		flakes:    mocks.NewMockFlakeEvaluator(ctrl),
		store:     mocks.NewMockStoreClient(ctrl),
		transport: mocks.NewMockTransport(ctrl),
	}
	f.d = NewDelegator(f.flakes, f.store, f.transport, telemetry.NewNoOpTracer())
	f.d.source = func() string { return omSource.String() }
	f.d.newID = func() string { return "1234" }
	f.d.readFile = func(string) ([]byte, error) {
		t.Fatal("readFile called unexpectedly")
		return nil, nil
	}
	return f
}

var (
	toRemote = domain.CopyOptions{
		Direction:   domain.CopyTo,
		StoreURI:    "ssh-ng://" + host,
		NoCheckSigs: true,
	}
	fromRemote = domain.CopyOptions{
		Direction:   domain.CopyFrom,
		StoreURI:    "ssh-ng://" + host,
		NoCheckSigs: true,
	}
)

func TestArgv(t *testing.T) {
	tests := []struct {
		name   string
		req    domain.RunRequest
		tmpDir string
		want   []string
	}{
		{
			name: "no link",
			req:  domain.RunRequest{},
			want: []string{
				"nix", "--extra-experimental-features", "nix-command flakes", "run", string(omSource), "--",
				"ci", "run", "--no-link", "/nix/store/prj-source#default",
			},
		},
		{
			name: "all options",
			req: domain.RunRequest{
				SystemsRef:     "x86_64-linux,aarch64-linux",
				IncludeAllDeps: true,
				Selection:      domain.SelectionAllowEmpty,
				BuildArgs:      []string{"--max-jobs", "4"},
			},
			tmpDir: "/tmp/om-1",
			want: []string{
				"nix", "--extra-experimental-features", "nix-command flakes", "run", string(omSource), "--",
				"ci", "run", "--systems", "x86_64-linux,aarch64-linux", "-o", "/tmp/om-1/result",
				"--include-all-dependencies", "--allow-empty-selection", "/nix/store/prj-source#default",
				"--", "--max-jobs", "4",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Argv(omSource, "/nix/store/prj-source#default", tt.req, tt.tmpDir)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDelegator_Run_NoOutLink(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.flakes.EXPECT().Metadata(gomock.Any(), domain.FlakeURL(".")).
			Return(domain.FlakeMetadata{URL: "path:.", Path: flakeStore}, nil),
		f.store.EXPECT().Copy(gomock.Any(), []domain.StorePath{omSource, flakeStore}, toRemote).Return(nil),
		f.transport.EXPECT().Exec(gomock.Any(), host, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, argv []string, _ io.Writer) ([]byte, error) {
				assert.Contains(t, argv, "--no-link")
				assert.Equal(t, "/nix/store/prj-source#dev", argv[len(argv)-1])
				return nil, nil
			},
		),
	)
	f.flakes.EXPECT().Archive(gomock.Any(), gomock.Any()).Times(0)
	// Remote results are never fetched without an out-link.
	f.store.EXPECT().Copy(gomock.Any(), gomock.Any(), fromRemote).Times(0)
	f.store.EXPECT().AddRoot(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := f.d.Run(context.Background(), domain.RunRequest{Flake: ".#dev"}, domain.RemoteOptions{Host: host})
	require.NoError(t, err)
}

func TestDelegator_Run_SubdirectoryFlake(t *testing.T) {
	tests := []struct {
		name string
		ref  domain.FlakeURL
		meta domain.FlakeMetadata
		want string
	}{
		{
			name: "remote dir query",
			ref:  "github:org/repo?dir=sub#ci",
			meta: domain.FlakeMetadata{URL: "github:org/repo/abc?dir=sub", Path: flakeStore},
			want: "path:/nix/store/prj-source?dir=sub#ci",
		},
		{
			name: "local subdirectory of a git repository",
			ref:  "./sub",
			meta: domain.FlakeMetadata{URL: "git+file:///src/repo?dir=sub", Path: flakeStore},
			want: "path:/nix/store/prj-source?dir=sub",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			base, _ := tt.ref.SplitAttr()

			f.flakes.EXPECT().Metadata(gomock.Any(), base).Return(tt.meta, nil)
			f.store.EXPECT().Copy(gomock.Any(), []domain.StorePath{omSource, flakeStore}, toRemote).Return(nil)
			f.transport.EXPECT().Exec(gomock.Any(), host, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, argv []string, _ io.Writer) ([]byte, error) {
					assert.Equal(t, tt.want, argv[len(argv)-1])
					return nil, nil
				},
			)

			err := f.d.Run(context.Background(), domain.RunRequest{Flake: tt.ref}, domain.RemoteOptions{Host: host})
			require.NoError(t, err)
		})
	}
}

func TestDelegator_Run_WithOutLink(t *testing.T) {
	f := newFixture(t)

	result := domain.StorePath("/nix/store/res-om-ci-results.json")
	f.d.readFile = func(p string) ([]byte, error) {
		assert.Equal(t, result.String(), p)
		return []byte(`{"systems":["x86_64-linux"],"flake":"/nix/store/prj-source","result":{` +
			`"a":{"outPaths":["/nix/store/out-b","/nix/store/out-a"],"byName":{}}}}`), nil
	}

	gomock.InOrder(
		f.flakes.EXPECT().Metadata(gomock.Any(), domain.FlakeURL("github:org/repo")).
			Return(domain.FlakeMetadata{Path: flakeStore}, nil),
		f.flakes.EXPECT().Archive(gomock.Any(), domain.FlakeURL("github:org/repo")).
			Return([]domain.StorePath{flakeStore, "/nix/store/in0-nixpkgs"}, nil),
		f.store.EXPECT().Copy(gomock.Any(), []domain.StorePath{"/nix/store/in0-nixpkgs", omSource, flakeStore}, toRemote).Return(nil),
		f.transport.EXPECT().Exec(gomock.Any(), host, []string{"mkdir", "-p", "/tmp/om-1234"}, gomock.Any()),
		f.transport.EXPECT().Exec(gomock.Any(), host, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, argv []string, _ io.Writer) ([]byte, error) {
				assert.Contains(t, argv, "/tmp/om-1234/result")
				return nil, nil
			},
		),
		f.transport.EXPECT().Exec(gomock.Any(), host, []string{"readlink", "/tmp/om-1234/result"}, gomock.Any()).
			Return([]byte(result.String()+"\n"), nil),
		f.store.EXPECT().Copy(gomock.Any(), []domain.StorePath{result}, fromRemote).Return(nil),
		f.store.EXPECT().Copy(gomock.Any(), []domain.StorePath{"/nix/store/out-a", "/nix/store/out-b"}, fromRemote).Return(nil),
		f.store.EXPECT().AddRoot(gomock.Any(), "result", []domain.StorePath{result}).Return(nil),
	)

	err := f.d.Run(context.Background(), domain.RunRequest{Flake: "github:org/repo", OutLink: "result"},
		domain.RemoteOptions{Host: host, CopyInputs: true, CopyOutputs: true})
	require.NoError(t, err)
}

func TestDelegator_Run_Failures(t *testing.T) {
	t.Run("unknown source", func(t *testing.T) {
		f := newFixture(t)
		f.d.source = func() string { return "" }

		err := f.d.Run(context.Background(), domain.RunRequest{Flake: "."}, domain.RemoteOptions{Host: host})
		require.ErrorIs(t, err, domain.ErrSelfSourceUnknown)
	})

	t.Run("copy failure aborts", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("connection refused")
		f.flakes.EXPECT().Metadata(gomock.Any(), gomock.Any()).Return(domain.FlakeMetadata{Path: flakeStore}, nil)
		f.store.EXPECT().Copy(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)
		f.transport.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := f.d.Run(context.Background(), domain.RunRequest{Flake: "."}, domain.RemoteOptions{Host: host})
		require.ErrorIs(t, err, boom)
	})

	t.Run("remote run failure skips fetch", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("remote exited with 1")
		f.flakes.EXPECT().Metadata(gomock.Any(), gomock.Any()).Return(domain.FlakeMetadata{Path: flakeStore}, nil)
		f.store.EXPECT().Copy(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
		gomock.InOrder(
			f.transport.EXPECT().Exec(gomock.Any(), host, []string{"mkdir", "-p", "/tmp/om-1234"}, gomock.Any()),
			f.transport.EXPECT().Exec(gomock.Any(), host, gomock.Any(), gomock.Any()).Return(nil, boom),
		)
		f.store.EXPECT().AddRoot(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := f.d.Run(context.Background(), domain.RunRequest{Flake: ".", OutLink: "result"}, domain.RemoteOptions{Host: host})
		require.ErrorIs(t, err, boom)
	})
}
