package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/commentstyle/commentstyle/internal/adapters/outbound/config"
	"github.com/commentstyle/commentstyle/internal/adapters/outbound/gitinfo"
	"github.com/commentstyle/commentstyle/internal/adapters/outbound/scanner"
	"github.com/commentstyle/commentstyle/internal/application"
	"github.com/commentstyle/commentstyle/internal/domain"
)

// registerTools registers all commentstyle MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. commentstyle_check
	s.AddTool(
		mcplib.NewTool("commentstyle_check",
			mcplib.WithDescription("Check the project against its comment style config and return every reported violation as JSON"),
			mcplib.WithString("config", mcplib.Description("Config file relative to the project (default: "+domain.DefaultConfigFile+")")),
			mcplib.WithBoolean("tracked", mcplib.Description("Only check files tracked by git")),
		),
		handleCheck(projectPath),
	)

	// 2. commentstyle_check_file
	s.AddTool(
		mcplib.NewTool("commentstyle_check_file",
			mcplib.WithDescription("Check the comments of a single file with the given comment markers"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file, relative to the project"),
			),
			mcplib.WithString("line_marker",
				mcplib.Required(),
				mcplib.Description("Line comment marker, e.g. // or #"),
			),
			mcplib.WithString("block_marker", mcplib.Description("Block comment marker to forbid, e.g. /*")),
			mcplib.WithString("allow", mcplib.Description("Comma-separated violation codes to tolerate")),
		),
		handleCheckFile(projectPath),
	)

	// 3. commentstyle_check_text
	s.AddTool(
		mcplib.NewTool("commentstyle_check_text",
			mcplib.WithDescription("Check the comments in a snippet of source text"),
			mcplib.WithString("text", mcplib.Required(), mcplib.Description("Source text to check")),
			mcplib.WithString("line_marker", mcplib.Required(), mcplib.Description("Line comment marker, e.g. // or #")),
			mcplib.WithString("block_marker", mcplib.Description("Block comment marker to forbid, e.g. /*")),
			mcplib.WithString("allow", mcplib.Description("Comma-separated violation codes to tolerate")),
		),
		handleCheckText(),
	)

	// 4. commentstyle_list_codes
	s.AddTool(
		mcplib.NewTool("commentstyle_list_codes",
			mcplib.WithDescription("List every violation code with its message"),
		),
		handleListCodes(),
	)
}

func handleCheck(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		configPath, _ := args["config"].(string)
		if configPath == "" {
			configPath = domain.DefaultConfigFile
		}
		tracked, _ := args["tracked"].(bool)

		svc := application.NewCheckService(config.New(), scanner.New(), gitinfo.New())
		res, err := svc.CheckConfigFile(ctx, filepath.Join(projectPath, configPath), application.CheckOptions{
			Root:    projectPath,
			Tracked: tracked,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleCheckFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		syntax, allow, err := syntaxArgs(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		path := file
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectPath, file)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return errorResult(fmt.Sprintf("reading file failed: %v", err)), nil
		}

		return jsonResult(application.CheckText(file, string(data), syntax, allow))
	}
}

func handleCheckText() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		syntax, allow, err := syntaxArgs(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(application.CheckText("<text>", text, syntax, allow))
	}
}

func handleListCodes() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(domain.CodeTable())
	}
}

// syntaxArgs reads the marker and allow-list arguments shared by the
// single-file tools.
func syntaxArgs(request mcplib.CallToolRequest) (domain.CommentSyntax, []string, error) {
	line, err := request.RequireString("line_marker")
	if err != nil {
		return domain.CommentSyntax{}, nil, err
	}
	if line == "" {
		return domain.CommentSyntax{}, nil, fmt.Errorf("line_marker must not be empty")
	}

	args := request.GetArguments()
	block, _ := args["block_marker"].(string)
	allowStr, _ := args["allow"].(string)

	var allow, invalid []string
	for _, a := range strings.Split(allowStr, ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if !domain.IsValidCode(a) {
			invalid = append(invalid, a)
			continue
		}
		allow = append(allow, a)
	}
	if len(invalid) > 0 {
		return domain.CommentSyntax{}, nil, fmt.Errorf("invalid error codes: '%s'", strings.Join(invalid, "', '"))
	}

	return domain.CommentSyntax{Line: line, Block: block}, allow, nil
}

// jsonResult marshals v as indented JSON into a tool result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
