package domain

// UnitStatus classifies what happened to a unit during a run.
type UnitStatus int

const (
	// UnitBuilt means every enabled step succeeded.
	UnitBuilt UnitStatus = iota
	// UnitSkipped means the unit is configured with skip.
	UnitSkipped
	// UnitIncompatible means no target system passes the unit's whitelist.
	UnitIncompatible
	// UnitDeselected means the reference selected another unit.
	UnitDeselected
	// UnitFailed means a step failed.
	UnitFailed
)

func (s UnitStatus) String() string {
	switch s {
	case UnitBuilt:
		return "built"
	case UnitSkipped:
		return "skipped"
	case UnitIncompatible:
		return "incompatible"
	case UnitDeselected:
		return "deselected"
	case UnitFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UnitOutcome is the per-unit summary of a run.
type UnitOutcome struct {
	Name   string
	Status UnitStatus
	Reason string
	Err    error
	// Outputs is the number of output paths of a built unit.
	Outputs int
}

// RunRequest describes a single CI run.
type RunRequest struct {
	// Flake is the project reference, including the optional attribute path.
	Flake FlakeURL
	// SystemsRef names the target systems: a comma separated list or a
	// flake URL. Empty means the current system.
	SystemsRef string
	// OutLink is where the result symlink is created; empty disables it.
	OutLink string
	// BuildArgs are passed through to the build aggregator.
	BuildArgs []string
	// IncludeAllDeps also records the full dependency closure of outputs.
	IncludeAllDeps bool
	// Selection decides how an unmatched unit filter is handled.
	Selection SelectionPolicy
}

// RemoteOptions configures delegation of a run to another host.
type RemoteOptions struct {
	Host        string
	CopyInputs  bool
	CopyOutputs bool
}

// MatrixRow is one entry of a CI job matrix.
type MatrixRow struct {
	System   System `json:"system"`
	Subflake string `json:"subflake"`
}

// Matrix is the job matrix in the shape consumed by GitHub Actions.
type Matrix struct {
	Include []MatrixRow `json:"include"`
}
