package nix

// aggregatorOutput is the JSON document written by the build aggregator.
type aggregatorOutput struct {
	OutPaths []string          `json:"out-paths"`
	ByName   map[string]string `json:"by-name"`
}

// flakeMetadata is the subset of `nix flake metadata --json` in use.
type flakeMetadata struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// archiveNode is one flake of `nix flake archive --json`.
type archiveNode struct {
	Path   string                 `json:"path"`
	Inputs map[string]archiveNode `json:"inputs"`
}

// collect appends the path of n and of every transitive input.
func (n archiveNode) collect(acc []string) []string {
	if n.Path != "" {
		acc = append(acc, n.Path)
	}
	for _, input := range n.Inputs {
		acc = input.collect(acc)
	}
	return acc
}
