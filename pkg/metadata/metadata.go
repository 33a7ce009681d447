package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/dove/pkg/manifest"
)

// Document is the metadata projection of a manifest.
type Document struct {
	Package PackageMetadata `json:"package"`
	Layout  manifest.Layout `json:"layout"`
}

// PackageMetadata is the normalized package table. Field order is the JSON
// key order.
type PackageMetadata struct {
	Name              string         `json:"name"`
	AccountAddress    *string        `json:"account_address"`
	Authors           []string       `json:"authors"`
	BlockchainAPI     *string        `json:"blockchain_api"`
	GitDependencies   []manifest.Git `json:"git_dependencies"`
	LocalDependencies []string       `json:"local_dependencies"`
}

// DefaultAccountAddress is the account address used when a package declares
// none. There is no default address yet, so it returns nil.
func DefaultAccountAddress() *string {
	return nil
}

// FromManifest builds the metadata document for m. The package name is taken
// as-is; callers that want a derived project name must set it on m first.
func FromManifest(m *manifest.Manifest) Document {
	return Document{
		Package: FromPackage(m.Package),
		Layout:  m.Layout,
	}
}

// FromPackage applies the metadata defaults to pkg and partitions its
// dependencies.
func FromPackage(pkg manifest.Package) PackageMetadata {
	var name string
	if pkg.Name != nil {
		name = *pkg.Name
	}

	address := pkg.AccountAddress
	if address == nil {
		address = DefaultAccountAddress()
	}

	authors := pkg.Authors
	if authors == nil {
		authors = []string{}
	}

	git, local := Partition(pkg.Dependencies)

	return PackageMetadata{
		Name:              name,
		AccountAddress:    address,
		Authors:           authors,
		BlockchainAPI:     pkg.BlockchainAPI,
		GitDependencies:   git,
		LocalDependencies: local,
	}
}

// Encode renders doc as two-space indented JSON without a trailing newline.
// HTML characters are not escaped.
func Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
