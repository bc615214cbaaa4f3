// Package app implements the application layer for om.
package app

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/juspay/omnix-sub000/internal/adapters/report" //nolint:depguard // Wired in app layer
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"github.com/juspay/omnix-sub000/internal/engine/matrix"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Orchestrator runs a CI run on the local machine.
type Orchestrator interface {
	Run(ctx context.Context, req domain.RunRequest) (*domain.RunResult, []domain.UnitOutcome, error)
}

// Delegator runs a CI run on a remote host.
type Delegator interface {
	Run(ctx context.Context, req domain.RunRequest, opts domain.RemoteOptions) error
}

// App represents the main application logic.
type App struct {
	orchestrator Orchestrator
	delegator    Delegator
	systems      ports.SystemsResolver
	config       ports.ConfigResolver
	renderer     ports.Renderer
	logger       ports.Logger
	summary      io.Writer
}

// New creates a new App instance.
func New(
	orch Orchestrator,
	delegator Delegator,
	systems ports.SystemsResolver,
	config ports.ConfigResolver,
	renderer ports.Renderer,
	log ports.Logger,
) *App {
	return &App{
		orchestrator: orch,
		delegator:    delegator,
		systems:      systems,
		config:       config,
		renderer:     renderer,
		logger:       log,
		summary:      os.Stderr,
	}
}

// WithSummaryOutput sets where the run summary is printed.
func (a *App) WithSummaryOutput(w io.Writer) *App {
	a.summary = w
	return a
}

// RunOptions configuration for the RunCI method.
type RunOptions struct {
	// Flake is the flake reference, optionally with a config attribute path.
	Flake   string
	Systems string
	OutLink string
	NoLink  bool
	// BuildArgs are passed through to the build aggregator.
	BuildArgs           []string
	IncludeAllDeps      bool
	AllowEmptySelection bool

	// On delegates the run to the given ssh host.
	On          string
	CopyInputs  bool
	CopyOutputs bool
}

// RunCI builds every configured unit of a flake, locally or on opts.On.
func (a *App) RunCI(ctx context.Context, opts RunOptions) error {
	flake, err := domain.ParseFlakeURL(opts.Flake)
	if err != nil {
		return zerr.With(err, "flake", opts.Flake)
	}

	req := domain.RunRequest{
		Flake:          flake,
		SystemsRef:     opts.Systems,
		BuildArgs:      opts.BuildArgs,
		IncludeAllDeps: opts.IncludeAllDeps,
		Selection:      selection(opts.AllowEmptySelection),
	}
	if !opts.NoLink {
		req.OutLink = opts.OutLink
	}
	a.warnIgnored(opts, req)

	if opts.On != "" {
		err := a.withRenderer(ctx, func(ctx context.Context) error {
			return a.delegator.Run(ctx, req, domain.RemoteOptions{
				Host:        opts.On,
				CopyInputs:  opts.CopyInputs,
				CopyOutputs: opts.CopyOutputs,
			})
		})
		if err != nil {
			return err
		}
		a.reportLink(req.OutLink)
		return nil
	}

	var outcomes []domain.UnitOutcome
	err = a.withRenderer(ctx, func(ctx context.Context) error {
		var runErr error
		_, outcomes, runErr = a.orchestrator.Run(ctx, req)
		return runErr
	})
	if len(outcomes) > 0 {
		report.WriteSummary(a.summary, outcomes)
	}
	if err != nil {
		return err
	}
	a.reportLink(req.OutLink)
	return nil
}

func (a *App) warnIgnored(opts RunOptions, req domain.RunRequest) {
	if opts.On == "" {
		if opts.CopyInputs {
			a.logger.Warn("--copy-inputs has no effect without --on")
		}
		if opts.CopyOutputs {
			a.logger.Warn("--copy-outputs has no effect without --on")
		}
		return
	}
	if opts.CopyOutputs && req.OutLink == "" {
		a.logger.Warn("--copy-outputs has no effect without an out-link")
	}
}

func (a *App) reportLink(link string) {
	if link != "" {
		a.logger.Info("results linked at " + link)
	}
}

// withRenderer runs fn while the renderer is alive and stops the renderer
// once fn returns.
func (a *App) withRenderer(ctx context.Context, fn func(context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.renderer.Start(ctx); err != nil {
			return err
		}
		return a.renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = a.renderer.Stop()
		}()
		return fn(ctx)
	})

	return g.Wait()
}

// MatrixOptions configuration for the Matrix method.
type MatrixOptions struct {
	Flake               string
	Systems             string
	AllowEmptySelection bool
}

// Matrix writes the GitHub Actions job matrix of a flake to w.
func (a *App) Matrix(ctx context.Context, opts MatrixOptions, w io.Writer) error {
	flake, err := domain.ParseFlakeURL(opts.Flake)
	if err != nil {
		return zerr.With(err, "flake", opts.Flake)
	}

	systems, err := a.systems.Resolve(ctx, opts.Systems)
	if err != nil {
		return err
	}

	cfg, err := a.config.Resolve(ctx, flake)
	if err != nil {
		return err
	}

	m, err := matrix.Generate(systems.Systems, cfg, selection(opts.AllowEmptySelection))
	if err != nil {
		return err
	}

	return json.NewEncoder(w).Encode(m)
}

func selection(allowEmpty bool) domain.SelectionPolicy {
	if allowEmpty {
		return domain.SelectionAllowEmpty
	}
	return domain.SelectionStrict
}
