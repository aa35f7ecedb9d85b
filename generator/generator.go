package generator

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/tools/imports"

	"github.com/erraggy/casetools/caser"
)

// Option configures a Generate call.
type Option func(*config)

type config struct {
	packageName string
	convention  caser.Convention
	constPrefix string
}

// WithPackageName sets the package clause of the generated file (default "names").
func WithPackageName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.packageName = name
		}
	}
}

// WithConvention sets the convention constant values are emitted in
// (default snake_case).
func WithConvention(conv caser.Convention) Option {
	return func(c *config) {
		c.convention = conv
	}
}

// WithConstPrefix prefixes every generated identifier, e.g. "Field".
func WithConstPrefix(prefix string) Option {
	return func(c *config) {
		c.constPrefix = prefix
	}
}

// Generate builds a Go source file declaring one string constant per
// input name, in input order. Names that yield no identifier or collide
// after conversion fail the whole generation; no partial output is
// produced. The result is formatted and import-fixed the same way a
// goimports run would leave it.
func Generate(names []string, opts ...Option) ([]byte, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("generator: no names provided")
	}

	cfg := &config{
		packageName: "names",
		convention:  caser.ConventionSnake,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	target, err := caser.New(cfg.convention)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("// Code generated by casetools. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", cfg.packageName)
	b.WriteString("const (\n")

	seen := make(map[string]string, len(names))
	for _, name := range names {
		ident := cfg.constPrefix + caser.ConventionPascal.ConvertString(name)
		if ident == "" {
			return nil, fmt.Errorf("generator: name %q produces no identifier", name)
		}
		// Go identifiers must not start with a digit.
		if r := []rune(ident)[0]; unicode.IsDigit(r) {
			ident = "_" + ident
		}
		if prev, dup := seen[ident]; dup {
			return nil, fmt.Errorf("generator: names %q and %q both produce identifier %s", prev, name, ident)
		}
		seen[ident] = name

		fmt.Fprintf(&b, "\t%s = %q\n", ident, target.ConvertString(name))
	}
	b.WriteString(")\n")

	return formatAndFixImports(cfg.packageName+".go", []byte(b.String()))
}

// formatAndFixImports formats Go source code and automatically fixes imports.
// It adds missing imports and removes unused ones using goimports-equivalent
// processing, so generated code compiles without a manual goimports pass.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("generator: format generated source: %w", err)
	}
	return out, nil
}
