package nix

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cespare/xxhash/v2"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	x86_64Linux   domain.System = "x86_64-linux"
	aarch64Linux  domain.System = "aarch64-linux"
	x86_64Darwin  domain.System = "x86_64-darwin"
	aarch64Darwin domain.System = "aarch64-darwin"
)

// knownSystemsFlakes are the github:nix-systems flakes, resolved without evaluation.
var knownSystemsFlakes = map[domain.FlakeURL][]domain.System{
	"github:nix-systems/default":        {aarch64Darwin, aarch64Linux, x86_64Darwin, x86_64Linux},
	"github:nix-systems/default-linux":  {aarch64Linux, x86_64Linux},
	"github:nix-systems/default-darwin": {aarch64Darwin, x86_64Darwin},
	"github:nix-systems/x86_64-linux":   {x86_64Linux},
	"github:nix-systems/aarch64-linux":  {aarch64Linux},
	"github:nix-systems/x86_64-darwin":  {x86_64Darwin},
	"github:nix-systems/aarch64-darwin": {aarch64Darwin},
}

const systemsFlakeNix = "{\n  outputs = _: { };\n}\n"

// SystemsResolver implements ports.SystemsResolver.
type SystemsResolver struct {
	cli      cli
	cacheDir string
	current  domain.System
}

// NewSystemsResolver creates a resolver that keeps generated flakes in the user cache directory.
func NewSystemsResolver(runner ports.Runner) *SystemsResolver {
	return &SystemsResolver{
		cli:      cli{runner: runner},
		cacheDir: domain.SystemsCachePath(xdg.CacheHome),
		current:  getCurrentSystem(),
	}
}

// Resolve turns ref into systems plus a flake exposing them.
func (r *SystemsResolver) Resolve(ctx context.Context, ref string) (domain.SystemsList, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return r.fromSystems([]domain.System{r.current})
	}

	if systems, ok := knownSystemsFlakes[domain.FlakeURL(ref)]; ok {
		return domain.SystemsList{URL: domain.FlakeURL(ref), Systems: slices.Clone(systems)}, nil
	}

	if !looksLikeFlake(ref) {
		systems, err := domain.ParseSystems(ref)
		if err != nil {
			return domain.SystemsList{}, zerr.With(zerr.Wrap(err, "failed to parse systems"), "systems", ref)
		}
		return r.fromSystems(systems)
	}

	url, err := domain.ParseFlakeURL(ref)
	if err != nil {
		return domain.SystemsList{}, zerr.With(err, "systems", ref)
	}
	systems, err := r.eval(ctx, url)
	if err != nil {
		return domain.SystemsList{}, err
	}
	return domain.SystemsList{URL: url, Systems: systems}, nil
}

func (r *SystemsResolver) fromSystems(systems []domain.System) (domain.SystemsList, error) {
	for _, url := range slices.Sorted(maps.Keys(knownSystemsFlakes)) {
		if sameSystems(knownSystemsFlakes[url], systems) {
			return domain.SystemsList{URL: url, Systems: systems}, nil
		}
	}

	dir, err := r.materialize(systems)
	if err != nil {
		return domain.SystemsList{}, err
	}
	return domain.SystemsList{URL: domain.FlakeURL("path:" + dir), Systems: systems}, nil
}

// materialize writes a flake whose default.nix evaluates to systems.
// The directory name is derived from the list, so repeated runs reuse it.
func (r *SystemsResolver) materialize(systems []domain.System) (string, error) {
	dir := filepath.Join(r.cacheDir, strconv.FormatUint(xxhash.Sum64String(domain.JoinSystems(systems)), 16))
	if _, err := os.Stat(filepath.Join(dir, "flake.nix")); err == nil {
		return dir, nil
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSystemsFlakeFailed.Error()), "dir", dir)
	}

	quoted := make([]string, len(systems))
	for i, s := range systems {
		quoted[i] = strconv.Quote(s.String())
	}
	files := map[string]string{
		"default.nix": "[ " + strings.Join(quoted, " ") + " ]\n",
		"flake.nix":   systemsFlakeNix,
	}
	// flake.nix is written last; its presence marks a complete directory.
	for _, name := range []string{"default.nix", "flake.nix"} {
		if err := writeFileAtomic(filepath.Join(dir, name), []byte(files[name])); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrSystemsFlakeFailed.Error()), "dir", dir)
		}
	}
	return dir, nil
}

func (r *SystemsResolver) eval(ctx context.Context, url domain.FlakeURL) ([]domain.System, error) {
	ref, err := absoluteRef(url)
	if err != nil {
		return nil, err
	}
	expr := fmt.Sprintf("import (builtins.getFlake %s).outPath", strconv.Quote(ref))
	out, err := r.cli.nix(ctx, nil, "eval", "--impure", "--json", "--expr", expr)
	if err != nil {
		return nil, err
	}

	var systems []domain.System
	if err := json.Unmarshal(out, &systems); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidSystemsList.Error()), "flake", url.String())
	}
	if len(systems) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSystemsList, "empty systems list"), "flake", url.String())
	}
	return systems, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// absoluteRef returns url with a local path made absolute; getFlake rejects
// relative paths.
func absoluteRef(url domain.FlakeURL) (string, error) {
	p, ok := url.LocalPath()
	if !ok {
		return url.String(), nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidSystemsList.Error()), "flake", url.String())
	}
	if strings.HasPrefix(url.String(), "path:") {
		return "path:" + abs, nil
	}
	return abs, nil
}

func looksLikeFlake(ref string) bool {
	return strings.Contains(ref, ":") || strings.HasPrefix(ref, ".") || strings.HasPrefix(ref, "/")
}

func sameSystems(a, b []domain.System) bool {
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(slices.Compact(x), slices.Compact(y))
}

// getCurrentSystem maps GOOS/GOARCH to the nix system of this host.
func getCurrentSystem() domain.System {
	goos := runtime.GOOS
	goarch := runtime.GOARCH

	switch {
	case goos == "darwin" && goarch == "amd64":
		return x86_64Darwin
	case goos == "darwin" && goarch == "arm64":
		return aarch64Darwin
	case goos == "linux" && goarch == "arm64":
		return aarch64Linux
	default:
		return x86_64Linux
	}
}

var _ ports.SystemsResolver = (*SystemsResolver)(nil)
