package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools/caser"
)

type detectInput struct {
	Text string `json:"text" jsonschema:"The text whose case convention should be detected"`
}

type detectOutput struct {
	Input      string   `json:"input"`
	Convention string   `json:"convention"`
	Words      []string `json:"words,omitempty"`
}

func handleDetect(_ context.Context, _ *mcp.CallToolRequest, input detectInput) (*mcp.CallToolResult, detectOutput, error) {
	conv := caser.Detect(input.Text)
	name := conv.String()
	if name == "" {
		name = "unknown"
	}

	return nil, detectOutput{
		Input:      input.Text,
		Convention: name,
		Words:      caser.Split(input.Text),
	}, nil
}
