package mcp

import "github.com/mark3labs/mcp-go/mcp"

var createToolDef = mcp.NewTool("note_create",
	mcp.WithDescription("Create a page in the configured Notion database with a title and free-text body. The body is converted to Notion blocks: blank lines separate paragraphs, '- '/'* ' lines become bulleted items, leading '#' marks a heading."),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Page title"),
	),
	mcp.WithString("body",
		mcp.Description("Free-text note body"),
	),
	mcp.WithString("tags",
		mcp.Description("Comma-separated tags; omit to use the configured defaults"),
	),
	mcp.WithBoolean("markdown",
		mcp.Description("Parse the body as markdown instead of plain text"),
	),
)

var quickToolDef = mcp.NewTool("note_quick",
	mcp.WithDescription("Publish a quick note. The title derives from the body's first line; a 'quick' tag is always attached alongside the configured defaults."),
	mcp.WithString("body",
		mcp.Required(),
		mcp.Description("Free-text note body"),
	),
)

var appendToolDef = mcp.NewTool("note_append",
	mcp.WithDescription("Append text blocks to an existing page."),
	mcp.WithString("page_id",
		mcp.Required(),
		mcp.Description("Target page id"),
	),
	mcp.WithString("body",
		mcp.Required(),
		mcp.Description("Free-text body to append"),
	),
	mcp.WithBoolean("markdown",
		mcp.Description("Parse the body as markdown instead of plain text"),
	),
)

var listToolDef = mcp.NewTool("note_list",
	mcp.WithDescription("List the most recently edited pages in the configured database, newest first."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum pages to return (default 5, max 100)"),
	),
)

var searchToolDef = mcp.NewTool("note_search",
	mcp.WithDescription("Search pages across the workspace by title text."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum results to return (default 5, max 100)"),
	),
)
