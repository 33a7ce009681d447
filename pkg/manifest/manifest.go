package manifest

// FileName is the manifest file at the root of every dove project.
const FileName = "Dove.toml"

// Manifest is a loaded project manifest.
type Manifest struct {
	Package Package
	Layout  Layout
}

// Package is the [package] table of a manifest.
type Package struct {
	Name           *string      // Project name (optional)
	AccountAddress *string      // Account the modules are published under (optional)
	Authors        []string     // Author strings, in declaration order
	BlockchainAPI  *string      // Node API base URL (optional)
	Dependencies   []Dependence // Mixed dependency list; nil when not declared
}

// Dependence is one dependency entry. The only implementations are [Git]
// and [Path].
type Dependence interface {
	isDependence()
}

// Git is a remote dependency hosted in a git repository.
// Optional fields are nil when not declared; a declared empty value is kept.
type Git struct {
	Git    string  `json:"git"`              // Repository URL
	Branch *string `json:"branch,omitempty"` // Branch to check out
	Rev    *string `json:"rev,omitempty"`    // Commit to check out
	Tag    *string `json:"tag,omitempty"`    // Tag to check out
	Path   *string `json:"path,omitempty"`   // Subdirectory holding the package
}

// Path is a local dependency on a directory of the filesystem.
type Path struct {
	Path string `json:"path"`
}

func (Git) isDependence()  {}
func (Path) isDependence() {}

// String returns s as an optional manifest value.
func String(s string) *string {
	return &s
}
