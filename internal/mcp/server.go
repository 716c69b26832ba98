package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kelleyblackmore/jarvis-mcp/internal/log"
	"github.com/kelleyblackmore/jarvis-mcp/internal/tools"
)

// Server wraps the MCP SDK server around the jarvis tool registry.
type Server struct {
	mcpServer *mcp.Server
	registry  *tools.Registry
	logger    log.Logger
	name      string
	version   string
}

// Config holds MCP server configuration
type Config struct {
	Name     string
	Version  string
	Registry *tools.Registry
	Logger   log.Logger
}

// NewServer creates a new MCP server with every registry tool and the
// built-in prompts registered.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("server version is required")
	}
	if cfg.Registry == nil {
		return nil, fmt.Errorf("tool registry is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	s := &Server{
		mcpServer: mcpServer,
		registry:  cfg.Registry,
		logger:    cfg.Logger,
		name:      cfg.Name,
		version:   cfg.Version,
	}

	s.registerTools()
	s.registerPrompts()

	return s, nil
}

// Run starts the MCP server on the given transport.
// This is a blocking call that handles all MCP protocol communication.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("MCP server starting",
		"name", s.name,
		"version", s.version,
		"tools", s.registry.Len(),
	)
	return s.mcpServer.Run(ctx, transport)
}

// registerTools exposes every registry tool over the protocol. The SDK
// hands the handler raw arguments; the registry validates, decodes and
// invokes, so no per-tool plumbing lives here.
func (s *Server) registerTools() {
	for _, def := range s.registry.Definitions() {
		name := def.Name
		s.mcpServer.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result := s.registry.Invoke(ctx, name, rawArguments(req))
			return renderResult(result, s.logger), nil
		})
	}
	s.logger.Debug("registered MCP tools", "count", s.registry.Len())
}
