// Package remote delegates a CI run to another host over ssh.
package remote

import (
	"context"
	"encoding/json"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/juspay/omnix-sub000/internal/build"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	remoteTmpPrefix = "/tmp/om-"
	remoteLinkName  = "result"
)

// Delegator re-runs `om ci run` on a remote host. The flake and the om
// source are shipped to the remote store first; when an out-link is
// requested the remote result is copied back and rooted locally.
type Delegator struct {
	flakes    ports.FlakeEvaluator
	store     ports.StoreClient
	transport ports.Transport
	tracer    ports.Tracer

	source   func() string
	newID    func() string
	readFile func(string) ([]byte, error)
}

// NewDelegator creates a new Delegator.
func NewDelegator(flakes ports.FlakeEvaluator, store ports.StoreClient, transport ports.Transport, tracer ports.Tracer) *Delegator {
	return &Delegator{
		flakes:    flakes,
		store:     store,
		transport: transport,
		tracer:    tracer,
		source:    build.SourcePath,
		newID:     uuid.NewString,
		readFile:  os.ReadFile,
	}
}

// Run executes req on opts.Host. Any failure aborts the whole run; remote
// leftovers are left to the remote garbage collector.
func (d *Delegator) Run(ctx context.Context, req domain.RunRequest, opts domain.RemoteOptions) error {
	source := d.source()
	if source == "" {
		return domain.ErrSelfSourceUnknown
	}

	ctx, span := d.tracer.Start(ctx, opts.Host)
	defer span.End()

	err := d.run(ctx, req, opts, domain.StorePath(source))
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (d *Delegator) run(ctx context.Context, req domain.RunRequest, opts domain.RemoteOptions, source domain.StorePath) error {
	base, attrs := req.Flake.SplitAttr()
	remoteURI := domain.RemoteStoreURI(opts.Host)

	var flake domain.FlakeURL
	err := d.step(ctx, "copy inputs", func(ctx context.Context, _ ports.Span) error {
		meta, err := d.flakes.Metadata(ctx, base)
		if err != nil {
			return err
		}
		flake = domain.StoreFlake(meta.Path, domain.FlakeURL(meta.URL).Dir()).WithAttr(strings.Join(attrs, "."))

		paths := []domain.StorePath{source, meta.Path}
		if opts.CopyInputs {
			inputs, err := d.flakes.Archive(ctx, base)
			if err != nil {
				return err
			}
			paths = append(paths, inputs...)
		}
		return d.store.Copy(ctx, domain.SortedPaths(paths), domain.CopyOptions{
			Direction:   domain.CopyTo,
			StoreURI:    remoteURI,
			NoCheckSigs: true,
		})
	})
	if err != nil {
		return err
	}

	var tmpDir string
	if req.OutLink != "" {
		tmpDir = remoteTmpPrefix + d.newID()
	}

	err = d.step(ctx, "ci run", func(ctx context.Context, span ports.Span) error {
		if tmpDir != "" {
			if _, err := d.transport.Exec(ctx, opts.Host, []string{"mkdir", "-p", tmpDir}, span); err != nil {
				return err
			}
		}
		_, err := d.transport.Exec(ctx, opts.Host, Argv(source, flake, req, tmpDir), span)
		return err
	})
	if err != nil || req.OutLink == "" {
		return err
	}

	return d.step(ctx, "copy outputs", func(ctx context.Context, span ports.Span) error {
		return d.fetch(ctx, opts, path.Join(tmpDir, remoteLinkName), req.OutLink, span)
	})
}

// fetch copies the remote result back and roots it at outLink.
func (d *Delegator) fetch(ctx context.Context, opts domain.RemoteOptions, remoteLink, outLink string, span ports.Span) error {
	out, err := d.transport.Exec(ctx, opts.Host, []string{"readlink", remoteLink}, span)
	if err != nil {
		return err
	}
	result := domain.StorePath(strings.TrimSpace(string(out)))

	from := domain.CopyOptions{
		Direction:   domain.CopyFrom,
		StoreURI:    domain.RemoteStoreURI(opts.Host),
		NoCheckSigs: true,
	}
	if err := d.store.Copy(ctx, []domain.StorePath{result}, from); err != nil {
		return err
	}

	if opts.CopyOutputs {
		data, err := d.readFile(result.String())
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrResultReadFailed.Error()), "path", result.String())
		}
		var rr domain.RunResult
		if err := json.Unmarshal(data, &rr); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrResultReadFailed.Error()), "path", result.String())
		}
		if paths := rr.Paths(); len(paths) > 0 {
			if err := d.store.Copy(ctx, paths, from); err != nil {
				return err
			}
		}
	}

	return d.store.AddRoot(ctx, outLink, []domain.StorePath{result})
}

func (d *Delegator) step(ctx context.Context, name string, fn func(context.Context, ports.Span) error) error {
	ctx, span := d.tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Argv returns the remote re-invocation of `om ci run` for req. The flake is
// replaced by its shipped store path and the out-link points into tmpDir;
// an empty tmpDir disables the out-link.
func Argv(source domain.StorePath, flake domain.FlakeURL, req domain.RunRequest, tmpDir string) []string {
	argv := []string{
		"nix", "--extra-experimental-features", "nix-command flakes",
		"run", source.String(), "--", "ci", "run",
	}
	if req.SystemsRef != "" {
		argv = append(argv, "--systems", req.SystemsRef)
	}
	if tmpDir != "" {
		argv = append(argv, "-o", path.Join(tmpDir, remoteLinkName))
	} else {
		argv = append(argv, "--no-link")
	}
	if req.IncludeAllDeps {
		argv = append(argv, "--include-all-dependencies")
	}
	if req.Selection == domain.SelectionAllowEmpty {
		argv = append(argv, "--allow-empty-selection")
	}
	argv = append(argv, flake.String())
	if len(req.BuildArgs) > 0 {
		argv = append(argv, "--")
		argv = append(argv, req.BuildArgs...)
	}
	return argv
}
