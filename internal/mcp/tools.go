package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPagesTool defines the list_pages MCP tool.
var listPagesTool = mcp.NewTool("list_pages",
	mcp.WithDescription("List documentation pages in reading order. Without a set, every navigation set is listed."),
	mcp.WithString("set",
		mcp.Description("Navigation set name, for example \"learn\" or \"reference\""),
	),
)

// pageNeighborsTool defines the page_neighbors MCP tool.
var pageNeighborsTool = mcp.NewTool("page_neighbors",
	mcp.WithDescription("Get the previous and next pages for a documentation path."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Site path of the page, for example /guides/setup"),
	),
)

// sidebarStateTool defines the sidebar_state MCP tool.
var sidebarStateTool = mcp.NewTool("sidebar_state",
	mcp.WithDescription("Get the sidebar for a documentation path: which sections start collapsed and which page is active."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Site path of the page, for example /guides/setup"),
	),
)
