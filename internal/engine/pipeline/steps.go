package pipeline

import (
	"github.com/juspay/omnix-sub000/internal/core/domain"
)

// StepKind tags the variants of a pipeline step.
type StepKind int

const (
	// StepLockfile checks that the lock file is up to date.
	StepLockfile StepKind = iota
	// StepFlakeCheck runs the flake checks.
	StepFlakeCheck
	// StepBuild builds every output through the build aggregator.
	StepBuild
	// StepCustom runs a user-defined app or devshell command.
	StepCustom
)

// Step is one entry of a unit's pipeline.
type Step struct {
	Kind StepKind
	Name string
	// Custom is set for StepCustom.
	Custom domain.CustomStep
	// Skip holds the reason the step does not run; empty means it runs.
	Skip string
}

// Plan lists the steps of unit in execution order: lockfile, flake check,
// build, then custom steps in declaration order. Every step is listed;
// those that will not run carry a skip reason.
func Plan(unit domain.Subflake, systems []domain.System) []Step {
	steps := []Step{
		{Kind: StepLockfile, Name: "lockfile", Skip: lockfileSkip(unit)},
		{Kind: StepFlakeCheck, Name: "flake-check", Skip: toggleSkip(unit.Steps.FlakeCheck)},
		{Kind: StepBuild, Name: "build", Skip: toggleSkip(unit.Steps.Build)},
	}

	for _, c := range unit.Steps.Custom {
		step := Step{Kind: StepCustom, Name: c.Name, Custom: c}
		if !c.Systems.AllowsAny(systems) {
			step.Skip = "not enabled for " + domain.JoinSystems(systems)
		}
		steps = append(steps, step)
	}
	return steps
}

// lockfileSkip disables the lockfile check when inputs are overridden; the
// lock file cannot match overridden inputs.
func lockfileSkip(unit domain.Subflake) string {
	if len(unit.OverrideInputs) > 0 {
		return "inputs are overridden"
	}
	return toggleSkip(unit.Steps.Lockfile)
}

func toggleSkip(t domain.StepToggle) string {
	if !t.Enable {
		return "disabled"
	}
	return ""
}
