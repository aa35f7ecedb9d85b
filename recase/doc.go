// Package recase rewrites the mapping keys of YAML and JSON documents
// into a target case convention.
//
// Import path: github.com/erraggy/casetools/recase
//
// Keys parses a document into a node tree, converts every mapping key
// through the caser pipeline, and marshals the tree back out. Values are
// never touched, document structure and key order are preserved, and
// JSON input stays JSON:
//
//	out, err := recase.Keys(data, caser.ConventionSnake,
//		recase.WithSkipKeys("apiVersion"),
//	)
//
// Keys that convert to an empty string (for example the YAML merge key
// "<<") are left unchanged rather than erased.
package recase
