package domain

import (
	"maps"
	"slices"
)

// BuildStepResult is the outcome of building one unit.
type BuildStepResult struct {
	OutPaths []StorePath          `json:"outPaths"`
	ByName   map[string]StorePath `json:"byName"`
	AllDeps  []StorePath          `json:"allDeps,omitempty"`
}

// EmptyBuildStepResult returns the result recorded for a unit whose build step did not run.
func EmptyBuildStepResult() BuildStepResult {
	return BuildStepResult{
		OutPaths: []StorePath{},
		ByName:   map[string]StorePath{},
	}
}

// Paths returns every store path referenced by the result.
func (r BuildStepResult) Paths() []StorePath {
	paths := slices.Concat(r.OutPaths, r.AllDeps)
	return SortedPaths(paths)
}

// RunResult is the serializable outcome of a full run.
type RunResult struct {
	Systems []System                   `json:"systems"`
	Flake   FlakeURL                   `json:"flake"`
	Result  map[string]BuildStepResult `json:"result"`
}

// NewRunResult returns an empty result for the given run.
func NewRunResult(systems []System, flake FlakeURL) *RunResult {
	return &RunResult{
		Systems: slices.Clone(systems),
		Flake:   flake,
		Result:  make(map[string]BuildStepResult),
	}
}

// Record stores the result of unit. A unit is recorded at most once;
// later calls for the same unit report false and leave the first value.
func (r *RunResult) Record(unit string, res BuildStepResult) bool {
	if _, exists := r.Result[unit]; exists {
		return false
	}
	r.Result[unit] = res
	return true
}

// Units returns the recorded unit names in order.
func (r *RunResult) Units() []string {
	return slices.Sorted(maps.Keys(r.Result))
}

// Paths returns every store path referenced by the run.
func (r *RunResult) Paths() []StorePath {
	var paths []StorePath
	for _, res := range r.Result {
		paths = append(paths, res.Paths()...)
	}
	return SortedPaths(paths)
}
