package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidFlakeURL is returned when a flake reference cannot be parsed.
	ErrInvalidFlakeURL = zerr.New("invalid flake reference")

	// ErrInvalidSystemsList is returned when a systems list reference is empty or malformed.
	ErrInvalidSystemsList = zerr.New("invalid systems list")

	// ErrConfigReadFailed is returned when the sidecar config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config tree cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse config")

	// ErrUnexpectedAttribute is returned when a reference names a config variant that does not exist.
	ErrUnexpectedAttribute = zerr.New("unexpected config attribute")

	// ErrMissingConfigAttribute is returned when no variant can be selected implicitly.
	ErrMissingConfigAttribute = zerr.New("missing config attribute")

	// ErrUnitNotFound is returned when a unit filter matches no configured unit.
	ErrUnitNotFound = zerr.New("no subflake matches the requested name")

	// ErrCustomStepInvalid is returned when a custom step definition is malformed.
	ErrCustomStepInvalid = zerr.New("invalid custom step")

	// ErrNixCommandFailed is returned when a nix subprocess exits non-zero.
	ErrNixCommandFailed = zerr.New("nix command failed")

	// ErrNixOutputInvalid is returned when nix prints output that cannot be decoded.
	ErrNixOutputInvalid = zerr.New("failed to decode nix output")

	// ErrAggregatorOutputInvalid is returned when the build aggregator result cannot be read.
	ErrAggregatorOutputInvalid = zerr.New("invalid build aggregator output")

	// ErrUnknownDeriver is returned when the store cannot tell which derivation produced a path.
	ErrUnknownDeriver = zerr.New("unknown deriver")

	// ErrStoreCopyFailed is returned when copying paths between stores fails.
	ErrStoreCopyFailed = zerr.New("failed to copy store paths")

	// ErrAddRootFailed is returned when a garbage collection root cannot be registered.
	ErrAddRootFailed = zerr.New("failed to add gc root")

	// ErrResultWriteFailed is returned when the run result cannot be serialized or stored.
	ErrResultWriteFailed = zerr.New("failed to write run result")

	// ErrResultReadFailed is returned when a run result fetched from a remote host cannot be read.
	ErrResultReadFailed = zerr.New("failed to read run result")

	// ErrSystemsFlakeFailed is returned when a generated systems flake cannot be written.
	ErrSystemsFlakeFailed = zerr.New("failed to materialize systems flake")

	// ErrRemoteCommandFailed is returned when a command on the remote host fails.
	ErrRemoteCommandFailed = zerr.New("remote command failed")

	// ErrSelfSourceUnknown is returned when the orchestrator source path is not known for remote runs.
	ErrSelfSourceUnknown = zerr.New("om source path is unknown, set OM_SOURCE")

	// ErrStepFailed is returned when a pipeline step fails.
	ErrStepFailed = zerr.New("step failed")

	// ErrUnitFailed is returned when at least one unit pipeline failed.
	ErrUnitFailed = zerr.New("subflake failed")

	// ErrCommandStartFailed is returned when a subprocess cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")
)
