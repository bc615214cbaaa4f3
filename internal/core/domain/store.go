package domain

import (
	"slices"
	"strings"
)

const derivationSuffix = ".drv"

// StorePath is a path in the nix store, either a derivation or an output.
type StorePath string

func (p StorePath) String() string {
	return string(p)
}

// IsDerivation reports whether p is a build recipe rather than an output.
func (p StorePath) IsDerivation() bool {
	return strings.HasSuffix(string(p), derivationSuffix)
}

// SortedPaths returns paths sorted with duplicates removed.
func SortedPaths(paths []StorePath) []StorePath {
	out := slices.Clone(paths)
	slices.Sort(out)
	return slices.Compact(out)
}

// CopyDirection is the direction of a store copy relative to the local store.
type CopyDirection int

const (
	// CopyTo ships local paths to a remote store.
	CopyTo CopyDirection = iota
	// CopyFrom fetches paths from a remote store.
	CopyFrom
)

// CopyOptions configures a store copy.
type CopyOptions struct {
	Direction   CopyDirection
	StoreURI    string
	NoCheckSigs bool
}
