// Package build holds build-time information.
package build

import "os"

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build date.
var Date = "unknown"

// Source is the store path of the om flake source, used to run the same
// build of om on remote hosts. Set by linker flags in the nix package.
var Source = ""

// DevourFlake is the flake used to build all outputs of a flake at once.
var DevourFlake = "github:srid/devour-flake"

// SourcePath returns the om source path, preferring OM_SOURCE over the linked value.
func SourcePath() string {
	if v := os.Getenv("OM_SOURCE"); v != "" {
		return v
	}
	return Source
}
