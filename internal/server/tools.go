package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	serrors "github.com/stencilhq/cli/internal/errors"
	"github.com/stencilhq/cli/internal/scaffold"
)

// ScaffoldTool exposes project creation as an MCP tool.
type ScaffoldTool struct {
	reg *scaffold.Registry
}

// NewScaffoldTool creates the scaffold_project tool.
func NewScaffoldTool(reg *scaffold.Registry) *ScaffoldTool {
	return &ScaffoldTool{reg: reg}
}

// Definition returns the tool schema.
func (t *ScaffoldTool) Definition() mcp.Tool {
	return mcp.NewTool("scaffold_project",
		mcp.WithDescription("Create a starter project tree for a framework. Returns the list of generated files."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Project name, used as the directory name under the target root."),
		),
		mcp.WithString("framework",
			mcp.Required(),
			mcp.Description("Framework identifier (case-insensitive); see list_frameworks."),
		),
		mcp.WithObject("options",
			mcp.Description("Framework options as a key/value object. Unrecognized keys are ignored."),
		),
		mcp.WithString("target_root",
			mcp.Description("Absolute directory to create the project under. Defaults to the server working directory."),
		),
	)
}

// Handle runs one scaffold invocation. Structural violations (missing
// name, unknown framework) are rejected before any filesystem activity;
// everything past that point is reported through the build outcome.
func (t *ScaffoldTool) Handle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	familyID, err := request.RequireString("framework")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var declared map[string]any
	if raw, ok := request.GetArguments()["options"]; ok {
		declared, _ = raw.(map[string]any)
	}

	req := scaffold.ProjectRequest{
		Name:            name,
		FamilyID:        familyID,
		DeclaredOptions: declared,
		TargetRoot:      request.GetString("target_root", ""),
	}

	if err := scaffold.ValidateRequest(req); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	builder, err := t.reg.Lookup(req.FamilyID)
	if err != nil {
		// The hint names every valid identifier so the client can retry.
		var detail *serrors.DetailError
		msg := err.Error()
		if errors.As(err, &detail) {
			msg = detail.Message + ". " + detail.Hint
		}
		return mcp.NewToolResultError(msg), nil
	}

	outcome := builder.Build(req)
	if !outcome.Success {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", outcome.Message, outcome.Failure)), nil
	}

	var sb strings.Builder
	sb.WriteString(outcome.Message)
	sb.WriteString("\n\nGenerated files:\n")
	for _, p := range outcome.ProducedPaths {
		sb.WriteString("  ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// ListTool exposes framework discovery as an MCP tool.
type ListTool struct {
	reg *scaffold.Registry
}

// NewListTool creates the list_frameworks tool.
func NewListTool(reg *scaffold.Registry) *ListTool {
	return &ListTool{reg: reg}
}

// Definition returns the tool schema.
func (t *ListTool) Definition() mcp.Tool {
	return mcp.NewTool("list_frameworks",
		mcp.WithDescription("List registered framework identifiers grouped by family, with the options each family accepts. Never touches the filesystem."),
	)
}

// frameworkEntry is the discovery payload for one family.
type frameworkEntry struct {
	Family      string        `json:"family"`
	Description string        `json:"description"`
	Runtime     string        `json:"runtime"`
	Identifiers []string      `json:"identifiers"`
	Options     []optionEntry `json:"options"`
}

type optionEntry struct {
	Key     string   `json:"key"`
	Type    string   `json:"type"`
	Default any      `json:"default"`
	Allowed []string `json:"allowed,omitempty"`
	Doc     string   `json:"doc,omitempty"`
}

// Handle returns the discovery listing as JSON text.
func (t *ListTool) Handle(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	builders := t.reg.Builders()
	entries := make([]frameworkEntry, 0, len(builders))

	for _, b := range builders {
		bp := b.Blueprint()

		options := make([]optionEntry, 0, len(bp.Schema))
		for _, spec := range bp.Schema {
			options = append(options, optionEntry{
				Key:     spec.Key,
				Type:    spec.Kind.String(),
				Default: spec.Default,
				Allowed: spec.Enum,
				Doc:     spec.Doc,
			})
		}

		entries = append(entries, frameworkEntry{
			Family:      bp.Family,
			Description: bp.Description,
			Runtime:     bp.Runtime,
			Identifiers: bp.Aliases,
			Options:     options,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding listing: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
