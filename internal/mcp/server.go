package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/docnav/docnav/internal/nav"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the documentation navigation.
type Server struct {
	nav *nav.Router
	mcp *server.MCPServer
}

// NewServer creates a new MCP server over the given navigation sets.
func NewServer(router *nav.Router) *Server {
	s := &Server{nav: router}

	s.mcp = server.NewMCPServer(
		"docnav",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPagesTool, s.handleListPages)
	s.mcp.AddTool(pageNeighborsTool, s.handlePageNeighbors)
	s.mcp.AddTool(sidebarStateTool, s.handleSidebarState)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
