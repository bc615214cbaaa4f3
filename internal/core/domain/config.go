package domain

import (
	"slices"
	"strings"
)

// ConfigSource identifies where a config tree was loaded from.
type ConfigSource int

const (
	// SourceDefault means neither source carried a CI namespace.
	SourceDefault ConfigSource = iota
	// SourceSidecar means the tree came from the om.yaml sidecar file.
	SourceSidecar
	// SourceFlake means the tree came from evaluating the flake's om attribute.
	SourceFlake
)

func (s ConfigSource) String() string {
	switch s {
	case SourceSidecar:
		return SidecarFileName
	case SourceFlake:
		return "flake#" + ConfigAttribute
	default:
		return "default"
	}
}

// InputOverride replaces one flake input with another flake.
type InputOverride struct {
	Name string
	URL  FlakeURL
}

// StepToggle enables or disables a built-in step.
type StepToggle struct {
	Enable bool
}

// CustomStepKind distinguishes the custom step variants.
type CustomStepKind int

const (
	// CustomStepApp runs a flake app.
	CustomStepApp CustomStepKind = iota + 1
	// CustomStepDevShell runs a command inside a flake devshell.
	CustomStepDevShell
)

func (k CustomStepKind) String() string {
	switch k {
	case CustomStepApp:
		return "app"
	case CustomStepDevShell:
		return "devshell"
	default:
		return "unknown"
	}
}

// CustomStep is a user-defined step run after the build.
type CustomStep struct {
	Name    string
	Kind    CustomStepKind
	Target  string
	Args    []string
	Command []string
	Systems SystemFilter
}

// Validate checks the variant-specific fields.
func (s CustomStep) Validate() error {
	switch s.Kind {
	case CustomStepApp:
		return nil
	case CustomStepDevShell:
		if len(s.Command) == 0 {
			return ErrCustomStepInvalid
		}
		return nil
	default:
		return ErrCustomStepInvalid
	}
}

// StepSet holds the per-unit step configuration.
type StepSet struct {
	Lockfile   StepToggle
	FlakeCheck StepToggle
	Build      StepToggle
	Custom     []CustomStep
}

// DefaultStepSet returns a step set with every built-in step enabled.
func DefaultStepSet() StepSet {
	return StepSet{
		Lockfile:   StepToggle{Enable: true},
		FlakeCheck: StepToggle{Enable: true},
		Build:      StepToggle{Enable: true},
	}
}

// Subflake is the configuration of one logical unit.
type Subflake struct {
	Name           string
	Skip           bool
	Dir            string
	OverrideInputs []InputOverride
	Systems        SystemFilter
	Steps          StepSet
}

// DefaultSubflake returns a unit rooted at the flake itself.
func DefaultSubflake(name string) Subflake {
	return Subflake{
		Name:  name,
		Dir:   ".",
		Steps: DefaultStepSet(),
	}
}

// CanRunOn reports whether the unit may build for at least one of systems.
func (s Subflake) CanRunOn(systems []System) bool {
	return s.Systems.AllowsAny(systems)
}

// ResolvedConfig is the CI configuration selected for a run.
type ResolvedConfig struct {
	Source  ConfigSource
	Variant string
	Units   []Subflake
	Rest    []string
}

// NewResolvedConfig returns a config with units ordered by name.
func NewResolvedConfig(source ConfigSource, variant string, units []Subflake, rest []string) *ResolvedConfig {
	sorted := slices.Clone(units)
	slices.SortFunc(sorted, func(a, b Subflake) int {
		return strings.Compare(a.Name, b.Name)
	})
	return &ResolvedConfig{
		Source:  source,
		Variant: variant,
		Units:   sorted,
		Rest:    slices.Clone(rest),
	}
}

// Selected returns the unit name picked by the reference, if any.
func (c *ResolvedConfig) Selected() (string, bool) {
	if len(c.Rest) == 0 {
		return "", false
	}
	return c.Rest[0], true
}

// Lookup returns the unit with the given name.
func (c *ResolvedConfig) Lookup(name string) (Subflake, bool) {
	i := slices.IndexFunc(c.Units, func(s Subflake) bool { return s.Name == name })
	if i < 0 {
		return Subflake{}, false
	}
	return c.Units[i], true
}

// SelectionPolicy decides what happens when a unit filter matches nothing.
type SelectionPolicy int

const (
	// SelectionStrict fails with ErrUnitNotFound.
	SelectionStrict SelectionPolicy = iota
	// SelectionAllowEmpty produces an empty run.
	SelectionAllowEmpty
)
