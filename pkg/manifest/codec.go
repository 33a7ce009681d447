package manifest

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// document mirrors the TOML shape of a manifest.
type document struct {
	Package packageTable `toml:"package"`
	Layout  Layout       `toml:"layout"`
}

type packageTable struct {
	Name           *string           `toml:"name,omitempty"`
	AccountAddress *string           `toml:"account_address,omitempty"`
	Authors        []string          `toml:"authors"`
	BlockchainAPI  *string           `toml:"blockchain_api,omitempty"`
	Dependencies   []dependenceTable `toml:"dependencies,omitempty"`
}

// dependenceTable is the union of the keys of both dependency variants.
// A table that declares git is a git dependency, even when the URL is empty.
type dependenceTable struct {
	Git    *string `toml:"git,omitempty"`
	Branch *string `toml:"branch,omitempty"`
	Rev    *string `toml:"rev,omitempty"`
	Tag    *string `toml:"tag,omitempty"`
	Path   *string `toml:"path,omitempty"`
}

// Decode parses a manifest from TOML. Layout keys missing from data take
// their [DefaultLayout] values.
//
// Keys the model does not carry are ignored and returned in unknown so the
// caller can report them. Syntax errors are returned as [toml.ParseError].
func Decode(data []byte) (m *Manifest, unknown []string, err error) {
	doc := document{Layout: DefaultLayout()}
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, nil, err
	}
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return doc.manifest(), unknown, nil
}

// Encode renders m as pretty-printed TOML without a trailing newline.
// The dependency list is written as-is, in declaration order, and authors
// are always written, as an empty array when none are declared.
func Encode(m *Manifest) ([]byte, error) {
	doc, err := newDocument(m)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("encode toml: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func newDocument(m *Manifest) (document, error) {
	pkg := packageTable{
		Name:           m.Package.Name,
		AccountAddress: m.Package.AccountAddress,
		Authors:        m.Package.Authors,
		BlockchainAPI:  m.Package.BlockchainAPI,
	}
	if pkg.Authors == nil {
		pkg.Authors = []string{}
	}
	if m.Package.Dependencies != nil {
		pkg.Dependencies = make([]dependenceTable, 0, len(m.Package.Dependencies))
		for i, dep := range m.Package.Dependencies {
			switch d := dep.(type) {
			case Git:
				pkg.Dependencies = append(pkg.Dependencies, dependenceTable{
					Git:    String(d.Git),
					Branch: d.Branch,
					Rev:    d.Rev,
					Tag:    d.Tag,
					Path:   d.Path,
				})
			case Path:
				pkg.Dependencies = append(pkg.Dependencies, dependenceTable{Path: String(d.Path)})
			default:
				return document{}, fmt.Errorf("encode toml: dependency %d: unsupported type %T", i, dep)
			}
		}
	}
	return document{Package: pkg, Layout: m.Layout}, nil
}

func (d document) manifest() *Manifest {
	pkg := Package{
		Name:           d.Package.Name,
		AccountAddress: d.Package.AccountAddress,
		Authors:        d.Package.Authors,
		BlockchainAPI:  d.Package.BlockchainAPI,
	}
	if d.Package.Dependencies != nil {
		pkg.Dependencies = make([]Dependence, 0, len(d.Package.Dependencies))
		for _, t := range d.Package.Dependencies {
			pkg.Dependencies = append(pkg.Dependencies, t.dependence())
		}
	}
	return &Manifest{Package: pkg, Layout: d.Layout}
}

func (t dependenceTable) dependence() Dependence {
	if t.Git != nil {
		return Git{Git: *t.Git, Branch: t.Branch, Rev: t.Rev, Tag: t.Tag, Path: t.Path}
	}
	var path string
	if t.Path != nil {
		path = *t.Path
	}
	return Path{Path: path}
}
