package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `firstName: Robbie
homeAddress:
  streetName: Main St
`

func TestRecaseKeysTool_Inline(t *testing.T) {
	input := recaseInput{Content: sampleDoc, To: "snake"}

	result, output, err := handleRecaseKeys(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "snake", output.Convention)
	assert.Empty(t, output.WrittenTo)
	assert.Contains(t, output.Document, "first_name:")
	assert.Contains(t, output.Document, "street_name:")
}

func TestRecaseKeysTool_File(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "doc.yaml")
	outPath := filepath.Join(dir, "recased.yaml")
	require.NoError(t, os.WriteFile(inPath, []byte(sampleDoc), 0o644))

	input := recaseInput{File: inPath, To: "kebab", Output: outPath}

	result, output, err := handleRecaseKeys(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document, "document should not be inline when written to file")

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "first-name:")
}

func TestRecaseKeysTool_SkipKeys(t *testing.T) {
	input := recaseInput{Content: sampleDoc, To: "snake", SkipKeys: []string{"firstName"}}

	result, output, err := handleRecaseKeys(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Contains(t, output.Document, "firstName:")
	assert.Contains(t, output.Document, "home_address:")
}

func TestRecaseKeysTool_InputErrors(t *testing.T) {
	tests := []struct {
		name  string
		input recaseInput
	}{
		{name: "neither content nor file", input: recaseInput{To: "snake"}},
		{name: "both content and file", input: recaseInput{Content: "a: 1", File: "doc.yaml", To: "snake"}},
		{name: "unknown convention", input: recaseInput{Content: "a: 1", To: "scream"}},
		{name: "missing file", input: recaseInput{File: filepath.Join(t.TempDir(), "nope.yaml"), To: "snake"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleRecaseKeys(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestRecaseKeysTool_SizeLimit(t *testing.T) {
	oldLimit := cfg.MaxInputBytes
	cfg.MaxInputBytes = 8
	defer func() { cfg.MaxInputBytes = oldLimit }()

	input := recaseInput{Content: sampleDoc, To: "snake"}

	result, _, err := handleRecaseKeys(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestSanitizeError(t *testing.T) {
	err := os.ErrNotExist
	assert.Equal(t, "file does not exist", sanitizeError(err))
	assert.Empty(t, sanitizeError(nil))
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("CASETOOLS_DEFAULT_CASE", "snake")
	t.Setenv("CASETOOLS_MAX_INPUT_BYTES", "2048")

	c := loadConfig()
	assert.Equal(t, "snake", c.DefaultConvention.String())
	assert.Equal(t, 2048, c.MaxInputBytes)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CASETOOLS_DEFAULT_CASE", "not-a-convention")
	t.Setenv("CASETOOLS_MAX_INPUT_BYTES", "-5")

	c := loadConfig()
	assert.Equal(t, "camel", c.DefaultConvention.String())
	assert.Equal(t, 1<<20, c.MaxInputBytes)
}
