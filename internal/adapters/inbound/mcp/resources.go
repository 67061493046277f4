package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/commentstyle/commentstyle/internal/domain"
)

const codesURI = "commentstyle://codes"

// registerResources registers all commentstyle MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			codesURI,
			"Violation Codes",
			mcplib.WithResourceDescription("Every violation code with its message"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCodesResource,
	)
}

func handleCodesResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(domain.CodeTable(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling codes: %w", err)
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      codesURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
