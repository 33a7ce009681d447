package metadata

import "github.com/matzehuels/dove/pkg/manifest"

// Partition splits deps into git records and local paths in a single pass.
// Each result keeps the relative order of its entries in deps. A nil or empty
// deps yields two empty, non-nil slices.
func Partition(deps []manifest.Dependence) (git []manifest.Git, local []string) {
	git = []manifest.Git{}
	local = []string{}
	for _, dep := range deps {
		switch d := dep.(type) {
		case manifest.Git:
			git = append(git, d)
		case manifest.Path:
			local = append(local, d.Path)
		}
	}
	return git, local
}
