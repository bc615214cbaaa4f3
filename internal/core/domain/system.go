package domain

import (
	"slices"
	"strings"
)

// System is a nix platform identifier such as "x86_64-linux".
type System string

func (s System) String() string {
	return string(s)
}

// ParseSystems splits a comma separated list of systems.
func ParseSystems(s string) ([]System, error) {
	var out []System
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.Contains(part, "-") || strings.ContainsAny(part, ":/ ") {
			return nil, ErrInvalidSystemsList
		}
		out = append(out, System(part))
	}
	if len(out) == 0 {
		return nil, ErrInvalidSystemsList
	}
	return out, nil
}

// JoinSystems renders systems as a comma separated list.
func JoinSystems(systems []System) string {
	parts := make([]string, len(systems))
	for i, s := range systems {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

// SystemsList is the set of systems a run targets together with the flake
// that exposes the same list to the build aggregator.
type SystemsList struct {
	URL     FlakeURL
	Systems []System
}

// SystemFilter is a whitelist of systems. The zero value allows every system.
type SystemFilter struct {
	systems    []System
	restricted bool
}

// AnySystem returns a filter that allows every system.
func AnySystem() SystemFilter {
	return SystemFilter{}
}

// OnlySystems returns a filter that allows only the given systems.
func OnlySystems(systems ...System) SystemFilter {
	return SystemFilter{systems: slices.Clone(systems), restricted: true}
}

// Restricted reports whether the filter is a whitelist.
func (f SystemFilter) Restricted() bool {
	return f.restricted
}

// Systems returns the whitelisted systems, or nil when unrestricted.
func (f SystemFilter) Systems() []System {
	return slices.Clone(f.systems)
}

// Allows reports whether s passes the filter.
func (f SystemFilter) Allows(s System) bool {
	return !f.restricted || slices.Contains(f.systems, s)
}

// AllowsAny reports whether at least one of targets passes the filter.
func (f SystemFilter) AllowsAny(targets []System) bool {
	if !f.restricted {
		return true
	}
	return slices.ContainsFunc(targets, f.Allows)
}
