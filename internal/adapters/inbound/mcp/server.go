package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewNixvetMCPServer creates a new MCP server with the nixvet tools
// registered. The root is the configuration checkout to validate.
func NewNixvetMCPServer(root string) *server.MCPServer {
	s := server.NewMCPServer(
		"nixvet",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, root)

	return s
}
