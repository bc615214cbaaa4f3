package domain

import "path/filepath"

const (
	// AppDirName is the name of the per-user cache directory.
	AppDirName = "om"

	// SystemsDirName is the cache sub-directory holding generated systems flakes.
	SystemsDirName = "systems"

	// SidecarFileName is the config file looked up at the root of a local flake.
	SidecarFileName = "om.yaml"

	// ConfigAttribute is the flake output attribute holding the embedded config tree.
	ConfigAttribute = "om"

	// CINamespace is the root key of the CI configuration within the config tree.
	CINamespace = "ci"

	// DefaultVariant is the variant selected when a reference has no attribute path.
	DefaultVariant = "default"

	// DefaultUnitName is the unit used when a flake carries no CI configuration.
	DefaultUnitName = "ROOT"

	// DefaultOutLink is the default out-link path of a run.
	DefaultOutLink = "result"

	// AggregatorFlakeInput is the aggregator input that receives the user's flake.
	AggregatorFlakeInput = "flake"

	// AggregatorSystemsInput is the aggregator input that receives the systems flake.
	AggregatorSystemsInput = "systems"

	// RemoteStoreScheme is the store URI scheme used to reach remote hosts.
	RemoteStoreScheme = "ssh-ng://"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// SystemsCachePath returns the directory for generated systems flakes below cacheHome.
func SystemsCachePath(cacheHome string) string {
	return filepath.Join(cacheHome, AppDirName, SystemsDirName)
}

// RemoteStoreURI returns the store URI of the given ssh host.
func RemoteStoreURI(host string) string {
	return RemoteStoreScheme + host
}
