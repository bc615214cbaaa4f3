package domain

// BuildRequest is the input of the build aggregator for one unit.
type BuildRequest struct {
	Flake          FlakeURL
	OverrideInputs []InputOverride
	Systems        SystemsList
	ExtraArgs      []string
	IncludeAllDeps bool
}

// FlakeMetadata is the locked, store-resident form of a flake.
type FlakeMetadata struct {
	URL  string
	Path StorePath
}
