package recase

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/caser"
)

// DefaultMaxDepth bounds how deeply nested a document may be before
// Keys fails with a [caseerrors.LimitError].
const DefaultMaxDepth = 200

// Option configures a Keys call.
type Option func(*options)

type options struct {
	maxDepth int
	skip     map[string]bool
}

// WithMaxDepth overrides the nesting depth limit (default DefaultMaxDepth).
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithSkipKeys leaves the named keys untouched wherever they appear.
func WithSkipKeys(keys ...string) Option {
	return func(o *options) {
		for _, k := range keys {
			o.skip[k] = true
		}
	}
}

// Keys re-cases every mapping key of a YAML or JSON document to the
// target convention. JSON input (detected by a leading '{' or '[')
// produces indented JSON output; everything else round-trips as YAML.
// Key order, values, and document structure are preserved.
func Keys(data []byte, to caser.Convention, opts ...Option) ([]byte, error) {
	target, err := caser.New(to)
	if err != nil {
		return nil, err
	}

	o := &options{maxDepth: DefaultMaxDepth, skip: make(map[string]bool)}
	for _, opt := range opts {
		opt(o)
	}

	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("recase: empty document")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("recase: parse document: %w", err)
	}

	if err := recaseNode(&root, target, o, 0); err != nil {
		return nil, err
	}

	// JSON objects/arrays start with { or [; anything else is YAML.
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return marshalNodeJSON(&root)
	}
	return yaml.Marshal(&root)
}

// recaseNode rewrites mapping keys in place, walking the node tree.
func recaseNode(node *yaml.Node, target caser.Caser, o *options, depth int) error {
	if depth > o.maxDepth {
		return &caseerrors.LimitError{
			Resource: "nesting_depth",
			Limit:    int64(o.maxDepth),
		}
	}

	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			if err := recaseNode(child, target, o, depth+1); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind == yaml.ScalarNode && !o.skip[key.Value] {
				// Keys with no alphanumeric content (e.g. the merge key "<<")
				// convert to "" and must keep their original spelling.
				if converted := target.ConvertString(key.Value); converted != "" {
					key.Value = converted
				}
			}
			if err := recaseNode(value, target, o, depth+1); err != nil {
				return err
			}
		}
	}
	// Scalar and alias nodes carry no keys.
	return nil
}

// marshalNodeJSON writes the node tree as indented JSON, preserving the
// key order of the source document.
func marshalNodeJSON(root *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONNode(&buf, root); err != nil {
		return nil, err
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	indented.WriteByte('\n')
	return indented.Bytes(), nil
}

func writeJSONNode(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSONNode(buf, node.Content[0])

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			keyJSON, err := json.Marshal(node.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(keyJSON)
			buf.WriteByte(':')
			if err := writeJSONNode(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONNode(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	default:
		// Scalars and aliases: decode to a typed value so numbers,
		// booleans, and nulls marshal as themselves rather than strings.
		var value any
		if err := node.Decode(&value); err != nil {
			return err
		}
		valueJSON, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(valueJSON)
		return nil
	}
}
