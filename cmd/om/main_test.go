package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/juspay/omnix-sub000/internal/app"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type stubOrchestrator struct {
	err error
}

func (s stubOrchestrator) Run(context.Context, domain.RunRequest) (*domain.RunResult, []domain.UnitOutcome, error) {
	return nil, nil, s.err
}

type stubDelegator struct{}

func (stubDelegator) Run(context.Context, domain.RunRequest, domain.RemoteOptions) error {
	return nil
}

type harness struct {
	systems  *mocks.MockSystemsResolver
	config   *mocks.MockConfigResolver
	renderer *mocks.MockRenderer
	logger   *mocks.MockLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &harness{
		systems:  mocks.NewMockSystemsResolver(ctrl),
		config:   mocks.NewMockConfigResolver(ctrl),
		renderer: mocks.NewMockRenderer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
}

func (h *harness) provider(orch app.Orchestrator) ComponentProvider {
	application := app.New(orch, stubDelegator{}, h.systems, h.config, h.renderer, h.logger).
		WithSummaryOutput(new(bytes.Buffer))
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: h.logger}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	h := newHarness(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, h.provider(stubOrchestrator{}))
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that command errors are logged.
func TestRun_ExecutionError(t *testing.T) {
	h := newHarness(t)
	h.systems.EXPECT().Resolve(gomock.Any(), "bogus").Return(domain.SystemsList{}, domain.ErrInvalidSystemsList)
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"ci", "gh-matrix", "--systems", "bogus"}, new(bytes.Buffer), h.provider(stubOrchestrator{}))
	assert.Equal(t, 1, exitCode)
}

// TestRun_UnitFailure verifies that failed units exit 1 without logging again.
func TestRun_UnitFailure(t *testing.T) {
	h := newHarness(t)
	h.renderer.EXPECT().Start(gomock.Any()).Return(nil)
	h.renderer.EXPECT().Wait().Return(nil)
	h.renderer.EXPECT().Stop().Return(nil)
	h.logger.EXPECT().Error(gomock.Any()).Times(0)

	orch := stubOrchestrator{err: errors.Join(domain.ErrUnitFailed, errors.New("step failed"))}
	exitCode := run(context.Background(), []string{"ci", "run", "--no-link"}, new(bytes.Buffer), h.provider(orch))
	assert.Equal(t, 1, exitCode)
}
