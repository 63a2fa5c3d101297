// Package config implements the fw project catalog: the data model
// persisted in ~/.fw.json, the resolution engine that merges project
// overrides, tags and global defaults into effective values, the sanity
// checker, and the catalog mutators used by the CLI.
//
// # Catalog file
//
// The catalog is a single pretty-printed JSON file holding a map of
// projects and one settings block:
//
//	{
//	  "projects": {
//	    "fw": { "name": "fw", "git": "git@github.com:mriehl/fw.git", "tags": ["rust"] }
//	  },
//	  "settings": {
//	    "workspace": "~/workspace",
//	    "tags": { "rust": { "after_clone": "cargo build", "priority": 10 } }
//	  }
//	}
//
// Project map keys equal the embedded name field. Tag references are weak:
// a project may name a tag that settings does not define, which resolution
// tolerates with a warning.
//
// # Resolution
//
// A project's effective workspace path, post-clone command and post-workon
// command are never stored directly. They are derived by layering the
// project's own fields over tag contributions (sorted by ascending
// priority, ties broken by tag name) over global defaults. See resolve.go.
//
// # Environment
//
// Process-wide environment state (home directory, config file location) is
// captured once in an Env value and passed in explicitly, keeping the
// resolution engine and sanity checker pure.
package config
