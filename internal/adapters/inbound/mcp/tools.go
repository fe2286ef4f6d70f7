package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/nexus-infinity/nixvet/internal/adapters/outbound/config"
	"github.com/nexus-infinity/nixvet/internal/adapters/outbound/gitindex"
	"github.com/nexus-infinity/nixvet/internal/adapters/outbound/scanner"
	"github.com/nexus-infinity/nixvet/internal/adapters/outbound/tui"
	"github.com/nexus-infinity/nixvet/internal/application"
)

// registerTools registers the nixvet MCP tools on the given server.
func registerTools(s *server.MCPServer, root string) {
	s.AddTool(
		mcplib.NewTool("nixvet_validate",
			mcplib.WithDescription("Run the deployment-readiness battery against the configuration checkout and return the full report as JSON"),
		),
		handleValidate(root),
	)

	s.AddTool(
		mcplib.NewTool("nixvet_checklist",
			mcplib.WithDescription("Return the static pre-deployment checklist"),
		),
		handleChecklist(),
	)
}

func handleValidate(root string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewValidateService(scanner.New(), gitindex.NewOpener(), configAdapter.New())
		report, err := svc.Validate(root)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleChecklist() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return textResult(tui.Checklist()), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
