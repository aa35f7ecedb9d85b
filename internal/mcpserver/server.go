// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casetools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/casetools"
)

const serverInstructions = `casetools MCP server — converts identifier strings between case conventions, detects conventions, and re-cases YAML/JSON document keys.

Configuration: All defaults are configurable via CASETOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CASETOOLS_DEFAULT_CASE (default: camel) — target convention when a tool call omits one
- CASETOOLS_MAX_INPUT_BYTES (default: 1048576) — size limit for recase_keys documents

Supported conventions: camel, pascal, snake, kebab, dot, constant, train, title.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casetools", Version: casetools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a text value to a target case convention (camel, pascal, snake, kebab, dot, constant, train, title). Omitting the target uses CASETOOLS_DEFAULT_CASE. Use all=true to get the text in every convention at once. Text with no alphanumeric characters converts to an empty string.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect the case convention a text value most resembles. Returns the convention name (or \"unknown\") plus the segmented words the conversions would operate on.",
	}, handleDetect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recase_keys",
		Description: "Re-case every mapping key of a YAML or JSON document. Provide exactly one of content (inline) or file (path). JSON input produces JSON output; key order, values, and structure are preserved. Use skip_keys to leave specific keys untouched and output to write to a file instead of returning the document inline.",
	}, handleRecaseKeys)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
