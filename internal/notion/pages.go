package notion

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jotcli/jot/internal/errors"
)

// CreatePage creates a new page in a database.
func (c *Client) CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error) {
	var page Page
	if err := c.doRequest(ctx, http.MethodPost, "/pages", req, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPage retrieves a page object by id.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	if err := c.doRequest(ctx, http.MethodGet, "/pages/"+pageID, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type appendBlocksRequest struct {
	Children []Block `json:"children"`
}

// AppendBlocks appends child blocks to a page or block in one request.
// Callers batch; this enforces Notion's per-request ceiling.
func (c *Client) AppendBlocks(ctx context.Context, blockID string, children []Block) error {
	if len(children) == 0 {
		return nil
	}
	if len(children) > MaxBlocksPerAppend {
		return errors.NewInvalidRequest(
			fmt.Sprintf("cannot append %d blocks in one request (max %d)", len(children), MaxBlocksPerAppend))
	}

	req := appendBlocksRequest{Children: children}
	return c.doRequest(ctx, http.MethodPatch, "/blocks/"+blockID+"/children", req, nil)
}
