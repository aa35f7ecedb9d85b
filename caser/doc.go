// Package caser converts strings between case conventions.
//
// Import path: github.com/erraggy/casetools/caser
//
// Every conversion runs the same four-stage pipeline: validate the input,
// clean disallowed characters, segment into words, and emit the words in
// the target convention. The stages are shared; only the emission rules
// (separator and per-word casing) differ per convention, so all
// conventions agree on what a word is.
//
// # Word Segmentation
//
// Words are split at runs of explicit separators (whitespace, hyphens,
// underscores, dots) and at implicit camelCase boundaries, i.e. every
// lowercase-letter-to-uppercase-letter transition. No boundary is inserted
// between two consecutive uppercase letters, so acronym runs stay one word:
// "XMLHttpRequest" segments into "XMLHttp" and "Request".
//
// # Conventions
//
//	caser.ToCamelCase("first name")      // "firstName", nil
//	caser.ToSnakeCase("myVariableName")  // "my_variable_name", nil
//	caser.ToKebabCase("user_id")         // "user-id", nil
//	caser.ToDotCase("camelCaseText")     // "camel.case.text", nil
//
// Conversions accept any value; non-string input fails with a
// [caseerrors.InputError] and produces no partial output. Strings that
// contain no alphanumeric characters (including empty and whitespace-only
// input) convert to the empty string, which is a defined result and never
// an error.
//
// All functions are pure: identical input always yields identical output,
// and every conversion is safe for concurrent use without coordination.
package caser
