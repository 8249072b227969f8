package ops

import (
	"context"
	"strings"

	"github.com/jotcli/jot/internal/errors"
	"github.com/jotcli/jot/internal/notion"
)

// SearchInput contains parameters for the Search operation.
type SearchInput struct {
	Query string
	Limit int // default: 5, max: 100
}

// SearchResultItem is one search hit.
type SearchResultItem struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Title  string `json:"title"`
	URL    string `json:"url,omitempty"`
}

// SearchOutput contains the result of the Search operation.
type SearchOutput struct {
	Items   []SearchResultItem `json:"items"`
	HasMore bool               `json:"has_more"`
}

// Search finds pages matching the query across the workspace.
func Search(ctx context.Context, client *notion.Client, input SearchInput) (*SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.NewInvalidRequest("query is required")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	result, err := client.Search(ctx, &notion.SearchRequest{
		Query:    query,
		Filter:   &notion.SearchFilter{Property: "object", Value: "page"},
		PageSize: limit,
	})
	if err != nil {
		return nil, err
	}

	return &SearchOutput{
		Items:   summarizeSearch(result),
		HasMore: result.HasMore,
	}, nil
}

// Databases lists the databases visible to the integration.
func Databases(ctx context.Context, client *notion.Client) (*SearchOutput, error) {
	result, err := client.ListDatabases(ctx)
	if err != nil {
		return nil, err
	}
	return &SearchOutput{
		Items:   summarizeSearch(result),
		HasMore: result.HasMore,
	}, nil
}

func summarizeSearch(result *notion.SearchResult) []SearchResultItem {
	items := make([]SearchResultItem, 0, len(result.Results))
	for _, r := range result.Results {
		title := r.DisplayTitle()
		if title == "" {
			title = "Untitled"
		}
		items = append(items, SearchResultItem{
			ID:     r.ID,
			Object: r.Object,
			Title:  title,
			URL:    r.URL,
		})
	}
	return items
}
