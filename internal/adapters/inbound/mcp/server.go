package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCommentStyleMCPServer creates a new MCP server with all commentstyle
// tools and resources registered. Relative paths given to the tools are
// resolved against projectPath.
func NewCommentStyleMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"commentstyle",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s)

	return s
}
