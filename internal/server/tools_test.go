package server

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stencilhq/cli/internal/frameworks"
	"github.com/stencilhq/cli/internal/scaffold"
	"github.com/stencilhq/cli/internal/testutil"
)

func testRegistry(t *testing.T) *scaffold.Registry {
	t.Helper()
	r := scaffold.NewRegistry(scaffold.OSWriter{})
	require.NoError(t, frameworks.RegisterAll(r))
	return r
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestScaffoldToolCreatesProject(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	tool := NewScaffoldTool(testRegistry(t))
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"name":        "web",
		"framework":   "react",
		"options":     map[string]any{"typescript": false},
		"target_root": dir,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, "unexpected tool error: %s", resultText(t, res))

	text := resultText(t, res)
	assert.Contains(t, text, `Created react project "web"`)
	assert.Contains(t, text, "src/main.jsx")

	assert.FileExists(t, filepath.Join(dir, "web", "package.json"))
	assert.FileExists(t, filepath.Join(dir, "web", "src", "main.jsx"))
}

func TestScaffoldToolMissingArguments(t *testing.T) {
	tool := NewScaffoldTool(testRegistry(t))

	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"framework": "react",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = tool.Handle(context.Background(), callRequest(map[string]any{
		"name": "web",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestScaffoldToolUnknownFramework(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	tool := NewScaffoldTool(testRegistry(t))
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"name":        "web",
		"framework":   "ember",
		"target_root": dir,
	}))
	require.NoError(t, err)
	require.True(t, res.IsError)

	// The error names valid identifiers so the client can retry.
	text := resultText(t, res)
	assert.Contains(t, text, "ember")
	assert.Contains(t, text, "react")

	assert.NoDirExists(t, filepath.Join(dir, "web"))
}

func TestScaffoldToolInvalidName(t *testing.T) {
	tool := NewScaffoldTool(testRegistry(t))
	res, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"name":      "../escape",
		"framework": "react",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestListToolEnumeratesFamilies(t *testing.T) {
	tool := NewListTool(testRegistry(t))
	res, err := tool.Handle(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var entries []frameworkEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entries))
	require.Len(t, entries, 12)

	byFamily := make(map[string]frameworkEntry, len(entries))
	for _, e := range entries {
		byFamily[e.Family] = e
	}

	react, ok := byFamily["react"]
	require.True(t, ok)
	assert.Equal(t, []string{"react", "react-vite"}, react.Identifiers)
	require.NotEmpty(t, react.Options)
	assert.Equal(t, "typescript", react.Options[0].Key)
	assert.Equal(t, "bool", react.Options[0].Type)
}

func TestToolDefinitions(t *testing.T) {
	reg := testRegistry(t)

	scaffoldDef := NewScaffoldTool(reg).Definition()
	assert.Equal(t, "scaffold_project", scaffoldDef.Name)
	assert.Contains(t, scaffoldDef.InputSchema.Required, "name")
	assert.Contains(t, scaffoldDef.InputSchema.Required, "framework")

	listDef := NewListTool(reg).Definition()
	assert.Equal(t, "list_frameworks", listDef.Name)
}

func TestNewServerWiresTools(t *testing.T) {
	s := New(testRegistry(t))
	assert.NotNil(t, s)
}
