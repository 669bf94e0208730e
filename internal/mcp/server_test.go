package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docnav/docnav/internal/nav"
)

func testRouter(t *testing.T) *nav.Router {
	t.Helper()
	learn := nav.NewTree(
		nav.Entry{Key: "start", Node: nav.Section("Start",
			nav.Leaf("Intro", "/intro"),
			nav.Section("Guides",
				nav.Leaf("Setup", "/guides/setup"),
				nav.Leaf("Deploy", "/guides/deploy"),
			),
		)},
		nav.Entry{Key: "advanced", Node: nav.Section("Advanced",
			nav.Section("Internals",
				nav.Leaf("Scheduler", "/advanced/scheduler"),
			),
		)},
	)
	reference := nav.NewTree(nav.Entry{Key: "api", Node: nav.Section("API",
		nav.Leaf("Signals", "/reference/signals"),
	)})
	r, err := nav.NewRouter(
		nav.Set{Name: "reference", Pattern: "/reference/**", Tree: reference},
		nav.Set{Name: "learn", Tree: learn},
	)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return r
}

// extractText gets the text content from a CallToolResult.
func extractText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_pages", listPagesTool, "list_pages"},
		{"page_neighbors", pageNeighborsTool, "page_neighbors"},
		{"sidebar_state", sidebarStateTool, "sidebar_state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	router := testRouter(t)
	srv := NewServer(router)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.nav != router {
		t.Error("router not set correctly")
	}
}

func TestHandleListPages(t *testing.T) {
	srv := NewServer(testRouter(t))
	ctx := context.Background()

	t.Run("all sets", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleListPages(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := extractText(result)
		if !strings.Contains(text, `Set "reference" (1 page(s))`) || !strings.Contains(text, `Set "learn" (4 page(s))`) {
			t.Errorf("expected both sets listed, got:\n%s", text)
		}
	})

	t.Run("one set in reading order", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"set": "learn"}

		result, err := srv.handleListPages(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := extractText(result)
		want := []string{
			"1. Intro  /intro",
			"2. Setup  /guides/setup",
			"3. Deploy  /guides/deploy",
			"4. Scheduler  /advanced/scheduler",
		}
		for _, line := range want {
			if !strings.Contains(text, line) {
				t.Errorf("missing %q in:\n%s", line, text)
			}
		}
		if strings.Contains(text, "Signals") {
			t.Error("reference pages should not be listed")
		}
	})

	t.Run("unknown set", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"set": "nope"}

		result, err := srv.handleListPages(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown set")
		}
	})
}

func TestHandlePageNeighbors(t *testing.T) {
	srv := NewServer(testRouter(t))
	ctx := context.Background()

	t.Run("crosses section boundary", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"path": "/guides/deploy"}

		result, err := srv.handlePageNeighbors(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := extractText(result)
		for _, want := range []string{
			"Set: learn",
			"Trail: Start > Guides",
			"Previous: Setup  /guides/setup",
			"Next: Scheduler  /advanced/scheduler",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("missing %q in:\n%s", want, text)
			}
		}
	})

	t.Run("first page has no previous", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"path": "/intro"}

		result, err := srv.handlePageNeighbors(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(extractText(result), "Previous: (none)") {
			t.Errorf("unexpected output:\n%s", extractText(result))
		}
	})

	t.Run("missing path", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handlePageNeighbors(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing path")
		}
	})
}

func TestHandleSidebarState(t *testing.T) {
	srv := NewServer(testRouter(t))
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"path": "/advanced/scheduler"}

	result, err := srv.handleSidebarState(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	text := extractText(result)
	for _, want := range []string{
		"+ Guides [collapsed]",
		"+ Internals [expanded]",
		"- Scheduler  /advanced/scheduler  (current)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
}
