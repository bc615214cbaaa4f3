// Package orchestrator runs every CI unit of a flake and collects the results.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"github.com/juspay/omnix-sub000/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// ResultFileName is the name of the serialized run result added to the store.
const ResultFileName = "om-ci-results.json"

const incompatibleReason = "cannot run on this system"

// Pipeline runs the steps of one unit.
type Pipeline interface {
	Run(ctx context.Context, req pipeline.Request, log io.Writer) (domain.BuildStepResult, error)
}

// Orchestrator drives a full CI run. Units run one after another in name
// order; a failing unit does not stop its siblings.
type Orchestrator struct {
	systems  ports.SystemsResolver
	config   ports.ConfigResolver
	pipeline Pipeline
	store    ports.StoreClient
	tracer   ports.Tracer
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	systems ports.SystemsResolver,
	config ports.ConfigResolver,
	p Pipeline,
	store ports.StoreClient,
	tracer ports.Tracer,
) *Orchestrator {
	return &Orchestrator{
		systems:  systems,
		config:   config,
		pipeline: p,
		store:    store,
		tracer:   tracer,
	}
}

// Run executes req. The returned outcomes list every configured unit in
// order. When any unit fails the error matches domain.ErrUnitFailed and the
// result still holds the units that succeeded.
func (o *Orchestrator) Run(ctx context.Context, req domain.RunRequest) (*domain.RunResult, []domain.UnitOutcome, error) {
	systems, err := o.systems.Resolve(ctx, req.SystemsRef)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := o.config.Resolve(ctx, req.Flake)
	if err != nil {
		return nil, nil, err
	}

	outcomes, runnable, err := classify(cfg, systems.Systems, req.Selection)
	if err != nil {
		return nil, nil, err
	}

	base, _ := req.Flake.SplitAttr()
	result := domain.NewRunResult(systems.Systems, base)

	names := make([]string, len(runnable))
	for i, idx := range runnable {
		names[i] = outcomes[idx].Name
	}
	o.tracer.EmitPlan(ctx, names)

	var errs []error
	for _, idx := range runnable {
		unit, _ := cfg.Lookup(outcomes[idx].Name)
		res, err := o.runUnit(ctx, unit, base, systems, req)
		if err != nil {
			outcomes[idx].Status = domain.UnitFailed
			outcomes[idx].Err = err
			errs = append(errs, zerr.With(err, "subflake", unit.Name))
			continue
		}
		result.Record(unit.Name, res)
		outcomes[idx].Status = domain.UnitBuilt
		outcomes[idx].Outputs = len(res.OutPaths)
	}

	if req.OutLink != "" {
		if err := o.writeResult(ctx, result, req.OutLink); err != nil {
			// Not tagged with ErrUnitFailed so the write error is reported.
			return result, outcomes, errors.Join(append(errs, err)...)
		}
	}

	if len(errs) > 0 {
		return result, outcomes, errors.Join(append([]error{domain.ErrUnitFailed}, errs...)...)
	}
	return result, outcomes, nil
}

func (o *Orchestrator) runUnit(
	ctx context.Context,
	unit domain.Subflake,
	base domain.FlakeURL,
	systems domain.SystemsList,
	req domain.RunRequest,
) (domain.BuildStepResult, error) {
	ctx, span := o.tracer.Start(ctx, unit.Name)
	defer span.End()

	res, err := o.pipeline.Run(ctx, pipeline.Request{
		Unit:           unit,
		Flake:          base.SubFlake(unit.Dir),
		Systems:        systems,
		BuildArgs:      req.BuildArgs,
		IncludeAllDeps: req.IncludeAllDeps,
	}, span)
	if err != nil {
		span.RecordError(err)
		return domain.BuildStepResult{}, err
	}
	return res, nil
}

// classify decides the fate of every unit before anything runs. It returns
// the outcomes and the indexes of the units to run.
func classify(cfg *domain.ResolvedConfig, systems []domain.System, policy domain.SelectionPolicy) ([]domain.UnitOutcome, []int, error) {
	selected, filtered := cfg.Selected()
	deselectAll := false
	if filtered {
		if _, ok := cfg.Lookup(selected); !ok {
			if policy != domain.SelectionAllowEmpty {
				return nil, nil, zerr.With(zerr.Wrap(domain.ErrUnitNotFound, "cannot select subflake"), "subflake", selected)
			}
			deselectAll = true
		}
	}

	outcomes := make([]domain.UnitOutcome, len(cfg.Units))
	var runnable []int
	for i, unit := range cfg.Units {
		outcomes[i] = domain.UnitOutcome{Name: unit.Name}
		switch {
		case deselectAll || (filtered && unit.Name != selected):
			outcomes[i].Status = domain.UnitDeselected
			outcomes[i].Reason = "not selected"
		case unit.Skip:
			outcomes[i].Status = domain.UnitSkipped
			outcomes[i].Reason = "skip is set"
		case !unit.CanRunOn(systems):
			outcomes[i].Status = domain.UnitIncompatible
			outcomes[i].Reason = incompatibleReason
		default:
			runnable = append(runnable, i)
		}
	}
	return outcomes, runnable, nil
}

// writeResult adds the serialized result to the store and roots it at link.
func (o *Orchestrator) writeResult(ctx context.Context, result *domain.RunResult, link string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrResultWriteFailed.Error())
	}

	dir, err := os.MkdirTemp("", "om-ci-")
	if err != nil {
		return zerr.Wrap(err, domain.ErrResultWriteFailed.Error())
	}
	defer func() {
		_ = os.RemoveAll(dir)
	}()

	path := filepath.Join(dir, ResultFileName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrResultWriteFailed.Error()), "path", path)
	}

	stored, err := o.store.AddFile(ctx, path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrResultWriteFailed.Error())
	}
	return o.store.AddRoot(ctx, link, []domain.StorePath{stored})
}
