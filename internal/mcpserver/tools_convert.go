package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools/caser"
)

type convertInput struct {
	Text string `json:"text"           jsonschema:"The text to convert"`
	To   string `json:"to,omitempty"   jsonschema:"Target case convention (camel\\, pascal\\, snake\\, kebab\\, dot\\, constant\\, train\\, title). Defaults to CASETOOLS_DEFAULT_CASE."`
	All  bool   `json:"all,omitempty"  jsonschema:"Return the text converted to every convention instead of a single target"`
}

type convertOutput struct {
	Input      string            `json:"input"`
	Convention string            `json:"convention,omitempty"`
	Result     string            `json:"result,omitempty"`
	Results    map[string]string `json:"results,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if input.All {
		results := make(map[string]string, len(caser.Conventions()))
		for _, c := range caser.Conventions() {
			results[c.String()] = c.ConvertString(input.Text)
		}
		return nil, convertOutput{Input: input.Text, Results: results}, nil
	}

	conv := cfg.DefaultConvention
	if input.To != "" {
		parsed, err := caser.ParseConvention(input.To)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		conv = parsed
	}

	return nil, convertOutput{
		Input:      input.Text,
		Convention: conv.String(),
		Result:     conv.ConvertString(input.Text),
	}, nil
}
