// Package io exports pod dependency graphs as JSON.
//
// # JSON Format
//
// The format has two top-level arrays in declaration order:
//
//	{
//	  "nodes": [
//	    {"id": "A", "version": "1.0"},
//	    {"id": "B", "version": "2.0"}
//	  ],
//	  "edges": [
//	    {"from": "A", "to": "B", "version": "2.0"}
//	  ]
//	}
//
// Edge versions are the resolved versions of the dependency, so they always
// match the target node's version once the lock has been resolved.
// Metadata other than "version" is written under a node's "meta" object.
package io
