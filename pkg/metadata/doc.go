// Package metadata projects a dove manifest into the JSON metadata document
// consumed by external tooling (build systems, IDEs, dependency graphers).
//
// # Document Shape
//
//	{
//	  "package": {
//	    "name": "demo",
//	    "account_address": null,
//	    "authors": [],
//	    "blockchain_api": null,
//	    "git_dependencies": [{"git": "https://github.com/example/stdlib"}],
//	    "local_dependencies": ["../lib"]
//	  },
//	  "layout": { ... }
//	}
//
// Keys appear in exactly this order. Absent optional scalars are null and
// absent lists are []. The layout is copied from the manifest unchanged.
//
// # Dependencies
//
// The manifest's mixed dependency list is split by [Partition] into git
// records and local paths. Every entry lands in exactly one of the two
// lists and each list keeps the relative order of the manifest.
//
// # Schema
//
// [Schema] returns a JSON Schema describing the document, and [Validate]
// checks rendered output against it.
package metadata
