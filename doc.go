// Package casetools provides tools for converting identifier strings between
// case conventions.
//
// casetools offers four main packages for converting, detecting, re-casing,
// and generating cased identifiers:
//
//   - caser: Convert strings between case conventions and detect the
//     convention of a string
//   - recase: Re-case the mapping keys of YAML and JSON documents
//   - generator: Generate Go constant declarations from identifier lists
//   - caseerrors: Structured error types shared across the module
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/casetools
//
// # Quick Start
//
// Convert a string to a target convention:
//
//	import "github.com/erraggy/casetools/caser"
//
//	out, err := caser.ToCamelCase("first name")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // firstName
//
// Re-case the keys of a YAML document:
//
//	import "github.com/erraggy/casetools/recase"
//
//	out, err := recase.Keys(data, caser.ConventionSnake)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The casetools CLI exposes the same capabilities as commands
// (convert, detect, keys, gen) plus an MCP server over stdio (mcp).
package casetools
