package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docnav/docnav/internal/nav"
)

// handleListPages lists the reading sequence of one set, or of all sets.
func (s *Server) handleListPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sets := s.nav.Sets()
	if name := request.GetString("set", ""); name != "" {
		set, err := s.nav.Set(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sets = []nav.Set{set}
	}

	var sb strings.Builder
	for i, set := range sets {
		if i > 0 {
			sb.WriteString("\n")
		}
		pages := set.Pages()
		fmt.Fprintf(&sb, "Set %q (%d page(s))\n", set.Name, len(pages))
		for j, p := range pages {
			fmt.Fprintf(&sb, "%d. %s  %s\n", j+1, p.Name, p.Link)
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handlePageNeighbors reports the previous and next pages for a path.
func (s *Server) handlePageNeighbors(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	state, ok := s.nav.Resolve(path)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No navigation set serves %q.", path)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Path: %s\nSet: %s\n", state.Path, state.Set)
	if len(state.Trail) > 0 {
		fmt.Fprintf(&sb, "Trail: %s\n", strings.Join(state.Trail, " > "))
	}
	fmt.Fprintf(&sb, "Previous: %s\n", describePage(state.Prev))
	fmt.Fprintf(&sb, "Next: %s\n", describePage(state.Next))
	return mcp.NewToolResultText(sb.String()), nil
}

// handleSidebarState renders the sidebar for a path as an indented outline.
func (s *Server) handleSidebarState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	state, ok := s.nav.Resolve(path)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("No navigation set serves %q.", path)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Sidebar for %s (set %s)\n", state.Path, state.Set)
	for _, g := range state.Sidebar {
		fmt.Fprintf(&sb, "\n%s\n", g.Name)
		writeItems(&sb, g.Items, 1)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func writeItems(sb *strings.Builder, items []nav.SidebarItem, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, it := range items {
		if it.Leaf {
			marker := ""
			if it.Active {
				marker = "  (current)"
			}
			fmt.Fprintf(sb, "%s- %s  %s%s\n", indent, it.Name, it.Link, marker)
			continue
		}
		state := "expanded"
		if it.Collapsed {
			state = "collapsed"
		}
		fmt.Fprintf(sb, "%s+ %s [%s]\n", indent, it.Name, state)
		writeItems(sb, it.Children, depth+1)
	}
}

func describePage(p *nav.Page) string {
	if p == nil {
		return "(none)"
	}
	return fmt.Sprintf("%s  %s", p.Name, p.Link)
}
