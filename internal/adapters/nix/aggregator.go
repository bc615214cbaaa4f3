package nix

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// Aggregator implements ports.BuildAggregator with devour-flake.
type Aggregator struct {
	cli      cli
	store    ports.StoreClient
	source   domain.FlakeURL
	readFile func(string) ([]byte, error)
}

// NewAggregator creates an Aggregator building through the aggregator flake at source.
func NewAggregator(runner ports.Runner, store ports.StoreClient, source domain.FlakeURL) *Aggregator {
	return &Aggregator{
		cli:      cli{runner: runner},
		store:    store,
		source:   source,
		readFile: os.ReadFile,
	}
}

// Build builds every output of req.Flake and reads back the aggregator result.
func (a *Aggregator) Build(ctx context.Context, req domain.BuildRequest, log io.Writer) (domain.BuildStepResult, error) {
	out, err := a.cli.nix(ctx, log, a.args(req)...)
	if err != nil {
		return domain.BuildStepResult{}, zerr.With(err, "flake", req.Flake.String())
	}

	printed := lines(out)
	if len(printed) != 1 {
		return domain.BuildStepResult{}, zerr.With(zerr.Wrap(domain.ErrAggregatorOutputInvalid, "no result path"), "output", string(out))
	}

	data, err := a.readFile(printed[0])
	if err != nil {
		return domain.BuildStepResult{}, zerr.With(zerr.Wrap(err, domain.ErrAggregatorOutputInvalid.Error()), "path", printed[0])
	}

	result, err := parseAggregatorOutput(data)
	if err != nil {
		return domain.BuildStepResult{}, zerr.With(err, "path", printed[0])
	}

	if req.IncludeAllDeps {
		deps, err := a.store.Closure(ctx, result.OutPaths)
		if err != nil {
			return domain.BuildStepResult{}, err
		}
		result.AllDeps = deps
	}

	return result, nil
}

// args assembles the aggregator invocation. Overrides of the user's inputs
// are nested under the aggregator's flake input.
func (a *Aggregator) args(req domain.BuildRequest) []string {
	args := []string{
		"build", a.source.String(),
		"-L", "--no-link", "--print-out-paths",
		"--override-input", domain.AggregatorFlakeInput, req.Flake.String(),
	}
	if req.Systems.URL != "" {
		args = append(args, "--override-input", domain.AggregatorSystemsInput, req.Systems.URL.String())
	}
	args = append(args, overrideArgs(domain.AggregatorFlakeInput+"/", req.OverrideInputs)...)
	return append(args, req.ExtraArgs...)
}

func parseAggregatorOutput(data []byte) (domain.BuildStepResult, error) {
	var raw aggregatorOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.BuildStepResult{}, zerr.Wrap(err, domain.ErrAggregatorOutputInvalid.Error())
	}

	byName := make(map[string]domain.StorePath, len(raw.ByName))
	for name, path := range raw.ByName {
		byName[name] = domain.StorePath(path)
	}

	return domain.BuildStepResult{
		// An output can be exposed under several names.
		OutPaths: domain.SortedPaths(storePaths(raw.OutPaths)),
		ByName:   byName,
	}, nil
}

func overrideArgs(prefix string, overrides []domain.InputOverride) []string {
	args := make([]string, 0, 3*len(overrides))
	for _, o := range overrides {
		args = append(args, "--override-input", prefix+o.Name, o.URL.String())
	}
	return args
}

var _ ports.BuildAggregator = (*Aggregator)(nil)
