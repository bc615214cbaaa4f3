package nix

import (
	"context"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	unknownDeriver   = "unknown-deriver"
	deriverCacheSize = 4096
)

// Store implements ports.StoreClient using nix-store and nix copy.
type Store struct {
	cli      cli
	derivers *lru.Cache[domain.StorePath, domain.StorePath]
}

// NewStore creates a new Store.
func NewStore(runner ports.Runner) (*Store, error) {
	cache, err := lru.New[domain.StorePath, domain.StorePath](deriverCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create deriver cache")
	}
	return &Store{cli: cli{runner: runner}, derivers: cache}, nil
}

// QueryDeriver returns the derivation that produced each path, in input order.
// Derivations are returned unchanged.
func (s *Store) QueryDeriver(ctx context.Context, paths []domain.StorePath) ([]domain.StorePath, error) {
	var missing []domain.StorePath
	for _, p := range paths {
		if p.IsDerivation() {
			continue
		}
		if _, ok := s.derivers.Get(p); !ok && !slices.Contains(missing, p) {
			missing = append(missing, p)
		}
	}

	if len(missing) > 0 {
		out, err := s.cli.nixStore(ctx, nil, append([]string{"--query", "--deriver"}, pathArgs(missing)...)...)
		if err != nil {
			return nil, err
		}
		answers := lines(out)
		if len(answers) != len(missing) {
			return nil, zerr.With(zerr.Wrap(domain.ErrNixOutputInvalid, "missing derivers"), "expected", len(missing))
		}
		for i, answer := range answers {
			if answer == unknownDeriver {
				return nil, zerr.With(zerr.Wrap(domain.ErrUnknownDeriver, "failed to query deriver"), "path", missing[i].String())
			}
			s.derivers.Add(missing[i], domain.StorePath(answer))
		}
	}

	result := make([]domain.StorePath, 0, len(paths))
	for _, p := range paths {
		if p.IsDerivation() {
			result = append(result, p)
			continue
		}
		drv, _ := s.derivers.Get(p)
		result = append(result, drv)
	}
	return result, nil
}

// QueryRequisites returns the transitive requisites of paths, including outputs.
func (s *Store) QueryRequisites(ctx context.Context, paths []domain.StorePath) ([]domain.StorePath, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	args := append([]string{"--query", "--requisites", "--include-outputs"}, pathArgs(paths)...)
	out, err := s.cli.nixStore(ctx, nil, args...)
	if err != nil {
		return nil, err
	}
	return storePaths(lines(out)), nil
}

// Closure returns the requisites of the derivations of outputs, plus outputs.
func (s *Store) Closure(ctx context.Context, outputs []domain.StorePath) ([]domain.StorePath, error) {
	if len(outputs) == 0 {
		return nil, nil
	}

	drvs, err := s.QueryDeriver(ctx, domain.SortedPaths(outputs))
	if err != nil {
		return nil, err
	}

	requisites, err := s.QueryRequisites(ctx, domain.SortedPaths(drvs))
	if err != nil {
		return nil, err
	}

	return domain.SortedPaths(slices.Concat(requisites, outputs)), nil
}

// Copy copies paths between the local store and opts.StoreURI.
func (s *Store) Copy(ctx context.Context, paths []domain.StorePath, opts domain.CopyOptions) error {
	if len(paths) == 0 {
		return nil
	}

	args := []string{"copy"}
	switch opts.Direction {
	case domain.CopyFrom:
		args = append(args, "--from", opts.StoreURI)
	default:
		args = append(args, "--to", opts.StoreURI)
	}
	if opts.NoCheckSigs {
		args = append(args, "--no-check-sigs")
	}
	args = append(args, pathArgs(paths)...)

	if _, err := s.cli.nix(ctx, nil, args...); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCopyFailed.Error()), "store", opts.StoreURI)
	}
	return nil
}

// AddFile adds a regular file to the store and returns its store path.
func (s *Store) AddFile(ctx context.Context, path string) (domain.StorePath, error) {
	out, err := s.cli.nix(ctx, nil, "store", "add-file", path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrResultWriteFailed.Error()), "path", path)
	}
	added := lines(out)
	if len(added) != 1 {
		return "", zerr.With(zerr.Wrap(domain.ErrNixOutputInvalid, "no store path in output"), "output", string(out))
	}
	return domain.StorePath(added[0]), nil
}

// AddRoot registers link as an indirect garbage collection root of paths.
func (s *Store) AddRoot(ctx context.Context, link string, paths []domain.StorePath) error {
	args := append([]string{"--add-root", link, "--indirect", "--realise"}, pathArgs(paths)...)
	if _, err := s.cli.nixStore(ctx, nil, args...); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrAddRootFailed.Error()), "link", link)
	}
	return nil
}

var _ ports.StoreClient = (*Store)(nil)
