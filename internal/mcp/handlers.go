package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jotcli/jot/internal/config"
	"github.com/jotcli/jot/internal/errors"
	"github.com/jotcli/jot/internal/notion"
	"github.com/jotcli/jot/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	client *notion.Client
	cfg    *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(client *notion.Client, cfg *config.Config) *Handlers {
	return &Handlers{client: client, cfg: cfg}
}

// Request types for each tool

// CreateRequest represents the arguments for note_create.
type CreateRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"`
	Tags     string `json:"tags,omitempty"` // comma-separated
	Markdown bool   `json:"markdown,omitempty"`
}

// QuickRequest represents the arguments for note_quick.
type QuickRequest struct {
	Body string `json:"body"`
}

// AppendRequest represents the arguments for note_append.
type AppendRequest struct {
	PageID   string `json:"page_id"`
	Body     string `json:"body"`
	Markdown bool   `json:"markdown,omitempty"`
}

// ListRequest represents the arguments for note_list.
type ListRequest struct {
	Limit int `json:"limit,omitempty"`
}

// SearchRequest represents the arguments for note_search.
type SearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// Handler implementations

// HandleCreate handles the note_create tool call.
func (h *Handlers) HandleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CreateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	opsInput := ops.CreateInput{
		Title:    input.Title,
		Body:     input.Body,
		Markdown: input.Markdown,
	}
	if input.Tags != "" {
		opsInput.Tags = splitTags(input.Tags)
	}

	result, err := ops.Create(ctx, h.client, h.cfg, opsInput)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleQuick handles the note_quick tool call.
func (h *Handlers) HandleQuick(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[QuickRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Quick(ctx, h.client, h.cfg, ops.QuickInput{Body: input.Body})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleAppend handles the note_append tool call.
func (h *Handlers) HandleAppend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AppendRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Append(ctx, h.client, ops.AppendInput{
		PageID:   input.PageID,
		Body:     input.Body,
		Markdown: input.Markdown,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the note_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(ctx, h.client, h.cfg, ops.ListInput{Limit: input.Limit})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSearch handles the note_search tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Search(ctx, h.client, ops.SearchInput{
		Query: input.Query,
		Limit: input.Limit,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// splitTags splits a comma-separated tag string, dropping empties.
func splitTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if jotErr, ok := err.(*errors.JotError); ok {
		errorObj := map[string]any{
			"code":    jotErr.Code,
			"message": jotErr.Message,
			"status":  jotErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like request paths
		if jotErr.Code != errors.ErrInternal && jotErr.Details != nil {
			errorObj["details"] = jotErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
