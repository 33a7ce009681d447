// Package pkg provides the libraries behind the dove CLI.
//
// # Overview
//
// The packages are layered leaf first:
//
//  1. [errors] - coded errors shared by every layer
//  2. [manifest] - the Dove.toml model and its TOML codec
//  3. [project] - locating and loading a project from disk
//  4. [metadata] - the JSON metadata projection of a manifest
//  5. [buildinfo] - version information injected at build time
//
// # Architecture
//
//	Dove.toml
//	    ↓
//	[project] (find + decode)
//	    ↓
//	[manifest].Manifest ──────────────→ TOML (manifest.Encode)
//	    ↓
//	[metadata] (defaults + partition)
//	    ↓
//	JSON (metadata.Encode)
//
// # Quick Start
//
//	proj, err := project.Load(".", nil)
//	if err != nil {
//	    return err
//	}
//	out, err := metadata.Encode(metadata.FromManifest(proj.Manifest))
//
// [errors]: github.com/matzehuels/dove/pkg/errors
// [manifest]: github.com/matzehuels/dove/pkg/manifest
// [project]: github.com/matzehuels/dove/pkg/project
// [metadata]: github.com/matzehuels/dove/pkg/metadata
// [buildinfo]: github.com/matzehuels/dove/pkg/buildinfo
package pkg
