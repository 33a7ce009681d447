// Package manifest models a dove project manifest (Dove.toml).
//
// # Overview
//
// A [Manifest] holds the [Package] table and the project [Layout]. The
// package carries an optional dependency list whose entries are a closed
// sum type, [Dependence], with exactly two variants:
//
//   - [Git]: a remote dependency fetched from a git repository
//   - [Path]: a local dependency referenced by filesystem path
//
// Consumers distinguish them with an exhaustive type switch:
//
//	for _, dep := range pkg.Dependencies {
//	    switch d := dep.(type) {
//	    case manifest.Git:
//	        fmt.Println("git", d.Git)
//	    case manifest.Path:
//	        fmt.Println("path", d.Path)
//	    }
//	}
//
// # Native Format
//
// [Decode] and [Encode] convert between the model and TOML. Dependency
// entries are tables; a table with a "git" key is a [Git] record and any
// other table is a [Path]:
//
//	[package]
//	name = "demo"
//	authors = ["dev <dev@example.com>"]
//	dependencies = [
//	    { git = "https://github.com/example/stdlib", branch = "main" },
//	    { path = "../lib" },
//	]
//
// The model is not validated; whatever a well-formed file contains is carried
// through unchanged.
package manifest
