// Package pipeline runs the ordered steps of one CI unit.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request is the input of one pipeline run.
type Request struct {
	Unit domain.Subflake
	// Flake is the reference of the unit's own flake.
	Flake          domain.FlakeURL
	Systems        domain.SystemsList
	BuildArgs      []string
	IncludeAllDeps bool
}

// Pipeline executes the steps of a unit. Steps run strictly in order and the
// first failure aborts the remaining ones.
type Pipeline struct {
	commands ports.FlakeCommands
	builder  ports.BuildAggregator
	tracer   ports.Tracer
}

// NewPipeline creates a new Pipeline.
func NewPipeline(commands ports.FlakeCommands, builder ports.BuildAggregator, tracer ports.Tracer) *Pipeline {
	return &Pipeline{commands: commands, builder: builder, tracer: tracer}
}

// Run executes the pipeline of req.Unit. Skipped steps are reported to log.
// The result is empty when the build step does not run.
func (p *Pipeline) Run(ctx context.Context, req Request, log io.Writer) (domain.BuildStepResult, error) {
	result := domain.EmptyBuildStepResult()

	for _, step := range Plan(req.Unit, req.Systems.Systems) {
		if step.Skip != "" {
			_, _ = fmt.Fprintf(log, "skipping %s: %s\n", step.Name, step.Skip)
			continue
		}

		stepCtx, span := p.tracer.Start(ctx, step.Name)
		res, err := p.exec(stepCtx, req, step, span)
		if err != nil {
			span.RecordError(err)
			span.End()
			return domain.BuildStepResult{}, zerr.With(zerr.Wrap(err, domain.ErrStepFailed.Error()), "step", step.Name)
		}
		if step.Kind == StepBuild {
			result = res
			span.SetAttribute("outputs", len(res.OutPaths))
		}
		span.End()
	}

	return result, nil
}

func (p *Pipeline) exec(ctx context.Context, req Request, step Step, out io.Writer) (domain.BuildStepResult, error) {
	switch step.Kind {
	case StepLockfile:
		return domain.BuildStepResult{}, p.commands.LockCheck(ctx, req.Flake, out)
	case StepFlakeCheck:
		return domain.BuildStepResult{}, p.commands.Check(ctx, req.Flake, req.Unit.OverrideInputs, out)
	case StepBuild:
		return p.builder.Build(ctx, domain.BuildRequest{
			Flake:          req.Flake,
			OverrideInputs: req.Unit.OverrideInputs,
			Systems:        req.Systems,
			ExtraArgs:      req.BuildArgs,
			IncludeAllDeps: req.IncludeAllDeps,
		}, out)
	case StepCustom:
		return domain.BuildStepResult{}, p.custom(ctx, req.Flake, step.Custom, out)
	default:
		return domain.BuildStepResult{}, zerr.With(zerr.New("unknown step kind"), "kind", int(step.Kind))
	}
}

func (p *Pipeline) custom(ctx context.Context, flake domain.FlakeURL, c domain.CustomStep, out io.Writer) error {
	switch c.Kind {
	case domain.CustomStepApp:
		return p.commands.RunApp(ctx, flake.WithAttr(c.Target), c.Args, out)
	case domain.CustomStepDevShell:
		return p.commands.DevelopRun(ctx, flake.WithAttr(c.Target), c.Command, out)
	default:
		return zerr.With(zerr.Wrap(domain.ErrCustomStepInvalid, "unknown custom step kind"), "step", c.Name)
	}
}
