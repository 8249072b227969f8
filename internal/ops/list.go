package ops

import (
	"context"
	"time"

	"github.com/jotcli/jot/internal/config"
	"github.com/jotcli/jot/internal/notion"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Limit int // default: 5, max: 100
}

// ListItem is one page summary in a listing.
type ListItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	LastEditedTime time.Time `json:"last_edited_time"`
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items    []ListItem `json:"items"`
	Database string     `json:"database,omitempty"`
	Sort     string     `json:"sort"`
}

// List returns the most recently edited pages of the configured
// database, newest first.
func List(ctx context.Context, client *notion.Client, cfg *config.Config, input ListInput) (*ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	result, err := client.QueryDatabase(ctx, cfg.DefaultDatabaseID, &notion.DatabaseQuery{
		Sorts:    []notion.SortSpec{{Timestamp: "last_edited_time", Direction: "descending"}},
		PageSize: limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(result.Results))
	for _, page := range result.Results {
		title := page.Title()
		if title == "" {
			title = "Untitled"
		}
		items = append(items, ListItem{
			ID:             page.ID,
			Title:          title,
			URL:            page.URL,
			LastEditedTime: page.LastEditedTime,
		})
	}

	return &ListOutput{
		Items:    items,
		Database: cfg.DefaultDatabaseName,
		Sort:     "last_edited_time_desc",
	}, nil
}
