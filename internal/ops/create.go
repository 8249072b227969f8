package ops

import (
	"context"
	"fmt"
	"strings"

	"github.com/jotcli/jot/internal/config"
	"github.com/jotcli/jot/internal/errors"
	"github.com/jotcli/jot/internal/format"
	"github.com/jotcli/jot/internal/notion"
)

// CreateInput contains parameters for the Create operation.
type CreateInput struct {
	Title    string
	Body     string
	Tags     []string // nil means use configured defaults
	Markdown bool     // parse the body as markdown instead of plain text
}

// CreateOutput contains the result of the Create operation.
type CreateOutput struct {
	PageID         string `json:"page_id"`
	URL            string `json:"url"`
	Title          string `json:"title"`
	BlocksAppended int    `json:"blocks_appended"`
	Message        string `json:"message"`
}

// Create publishes a note as a new page in the configured database.
// The database schema is inspected to resolve the title field's actual
// name; tags are attached only when a multi-select field exists. Blocks
// are appended in fixed-size batches, stopping on the first failure.
func Create(ctx context.Context, client *notion.Client, cfg *config.Config, input CreateInput) (*CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.NewInvalidRequest("title is required")
	}

	db, err := client.GetDatabase(ctx, cfg.DefaultDatabaseID)
	if err != nil {
		return nil, err
	}
	titleProp, ok := db.TitleProperty()
	if !ok {
		return nil, errors.NewInternal(fmt.Errorf("database %s has no title property", cfg.DefaultDatabaseID))
	}

	tags := input.Tags
	if tags == nil {
		tags = cfg.DefaultTags
	}
	tags = normalizeTags(tags)

	properties := map[string]notion.PropertyValue{
		titleProp: {Title: notion.Text(title)},
	}
	if tagProp, ok := db.MultiSelectProperty(); ok && len(tags) > 0 {
		options := make([]notion.SelectOption, len(tags))
		for i, tag := range tags {
			options[i] = notion.SelectOption{Name: tag}
		}
		properties[tagProp] = notion.PropertyValue{MultiSelect: options}
	}

	page, err := client.CreatePage(ctx, &notion.CreatePageRequest{
		Parent:     notion.Parent{DatabaseID: cfg.DefaultDatabaseID},
		Properties: properties,
	})
	if err != nil {
		return nil, err
	}

	opts := format.Options{Author: cfg.IntegrationName}
	var blocks []notion.Block
	if input.Markdown {
		blocks = append([]notion.Block{format.Stamp(opts)}, format.Markdown(input.Body)...)
	} else {
		blocks = format.Collect(format.Note(input.Body, opts))
	}

	appended, err := appendBatches(ctx, client, page.ID, blocks)
	if err != nil {
		// The page exists at this point; surface it so the caller can
		// find the partial result.
		if jErr, ok := err.(*errors.JotError); ok {
			if jErr.Details == nil {
				jErr.Details = map[string]any{}
			}
			jErr.Details["page_id"] = page.ID
			jErr.Details["blocks_appended"] = appended
		}
		return nil, err
	}

	return &CreateOutput{
		PageID:         page.ID,
		URL:            page.URL,
		Title:          title,
		BlocksAppended: appended,
		Message:        fmt.Sprintf("Created page %q with %d blocks", title, appended),
	}, nil
}
