package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/caser"
	"github.com/erraggy/casetools/recase"
)

type recaseInput struct {
	Content  string   `json:"content,omitempty"   jsonschema:"The document to re-case\\, provided inline"`
	File     string   `json:"file,omitempty"      jsonschema:"Path of the document to re-case. Exactly one of content or file must be provided."`
	To       string   `json:"to,omitempty"        jsonschema:"Target case convention for mapping keys. Defaults to CASETOOLS_DEFAULT_CASE."`
	SkipKeys []string `json:"skip_keys,omitempty" jsonschema:"Keys left untouched wherever they appear"`
	Output   string   `json:"output,omitempty"    jsonschema:"File path to write the re-cased document. If omitted the document is returned inline."`
}

type recaseOutput struct {
	Convention string `json:"convention"`
	WrittenTo  string `json:"written_to,omitempty"`
	Document   string `json:"document,omitempty"`
}

func handleRecaseKeys(_ context.Context, _ *mcp.CallToolRequest, input recaseInput) (*mcp.CallToolResult, recaseOutput, error) {
	data, err := readRecaseInput(input)
	if err != nil {
		return errResult(err), recaseOutput{}, nil
	}

	conv := cfg.DefaultConvention
	if input.To != "" {
		parsed, err := caser.ParseConvention(input.To)
		if err != nil {
			return errResult(err), recaseOutput{}, nil
		}
		conv = parsed
	}

	result, err := recase.Keys(data, conv, recase.WithSkipKeys(input.SkipKeys...))
	if err != nil {
		return errResult(err), recaseOutput{}, nil
	}

	output := recaseOutput{Convention: conv.String()}
	if input.Output != "" {
		if err := os.WriteFile(input.Output, result, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), recaseOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(result)
	}

	return nil, output, nil
}

// readRecaseInput resolves the two input modes (inline content, file path)
// and enforces the configured size limit on both.
func readRecaseInput(input recaseInput) ([]byte, error) {
	switch {
	case input.Content != "" && input.File != "":
		return nil, fmt.Errorf("exactly one of content or file must be provided")
	case input.Content != "":
		if len(input.Content) > cfg.MaxInputBytes {
			return nil, &caseerrors.LimitError{
				Resource: "input_bytes",
				Limit:    int64(cfg.MaxInputBytes),
				Actual:   int64(len(input.Content)),
			}
		}
		return []byte(input.Content), nil
	case input.File != "":
		info, err := os.Stat(input.File)
		if err != nil {
			return nil, err
		}
		if info.Size() > int64(cfg.MaxInputBytes) {
			return nil, &caseerrors.LimitError{
				Resource: "input_bytes",
				Limit:    int64(cfg.MaxInputBytes),
				Actual:   info.Size(),
			}
		}
		return os.ReadFile(input.File)
	default:
		return nil, fmt.Errorf("exactly one of content or file must be provided")
	}
}
