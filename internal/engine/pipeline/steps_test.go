package pipeline_test

import (
	"testing"

	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/engine/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestPlan(t *testing.T) {
	linux := []domain.System{"x86_64-linux"}

	withOverrides := domain.DefaultSubflake("a")
	withOverrides.OverrideInputs = []domain.InputOverride{{Name: "nixpkgs", URL: "github:nixos/nixpkgs"}}

	disabled := domain.DefaultSubflake("b")
	disabled.Steps.FlakeCheck.Enable = false
	disabled.Steps.Build.Enable = false

	custom := domain.DefaultSubflake("c")
	custom.Steps.Custom = []domain.CustomStep{
		{Name: "fmt", Kind: domain.CustomStepDevShell, Target: "default", Command: []string{"treefmt"}},
		{Name: "mac-only", Kind: domain.CustomStepApp, Target: "test", Systems: domain.OnlySystems("aarch64-darwin")},
	}

	tests := []struct {
		name      string
		unit      domain.Subflake
		wantNames []string
		wantSkip  []string
	}{
		{
			name:      "defaults",
			unit:      domain.DefaultSubflake("root"),
			wantNames: []string{"lockfile", "flake-check", "build"},
			wantSkip:  []string{"", "", ""},
		},
		{
			name:      "lockfile skipped with overrides",
			unit:      withOverrides,
			wantNames: []string{"lockfile", "flake-check", "build"},
			wantSkip:  []string{"inputs are overridden", "", ""},
		},
		{
			name:      "disabled steps",
			unit:      disabled,
			wantNames: []string{"lockfile", "flake-check", "build"},
			wantSkip:  []string{"", "disabled", "disabled"},
		},
		{
			name:      "custom steps after build in declaration order",
			unit:      custom,
			wantNames: []string{"lockfile", "flake-check", "build", "fmt", "mac-only"},
			wantSkip:  []string{"", "", "", "", "not enabled for x86_64-linux"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := pipeline.Plan(tt.unit, linux)

			names := make([]string, len(steps))
			skips := make([]string, len(steps))
			for i, s := range steps {
				names[i] = s.Name
				skips[i] = s.Skip
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, tt.wantSkip, skips)
		})
	}
}
