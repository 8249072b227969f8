package ops

import (
	"context"
	"fmt"
	"strings"

	"github.com/jotcli/jot/internal/errors"
	"github.com/jotcli/jot/internal/format"
	"github.com/jotcli/jot/internal/notion"
)

// AppendInput contains parameters for the Append operation.
type AppendInput struct {
	PageID   string
	Body     string
	Markdown bool
}

// AppendOutput contains the result of the Append operation.
type AppendOutput struct {
	PageID         string `json:"page_id"`
	BlocksAppended int    `json:"blocks_appended"`
	Message        string `json:"message"`
}

// Append formats a body and attaches its blocks to an existing page.
// No timestamp heading is injected; the page already has one.
func Append(ctx context.Context, client *notion.Client, input AppendInput) (*AppendOutput, error) {
	pageID := strings.TrimSpace(input.PageID)
	if pageID == "" {
		return nil, errors.NewInvalidRequest("page id is required")
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, errors.NewInvalidRequest("body is required")
	}

	var blocks []notion.Block
	if input.Markdown {
		blocks = format.Markdown(input.Body)
	} else {
		blocks = format.Collect(format.Fragments(input.Body))
	}

	appended, err := appendBatches(ctx, client, pageID, blocks)
	if err != nil {
		return nil, err
	}

	return &AppendOutput{
		PageID:         pageID,
		BlocksAppended: appended,
		Message:        fmt.Sprintf("Appended %d blocks", appended),
	}, nil
}
