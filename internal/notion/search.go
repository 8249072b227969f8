package notion

import (
	"context"
	"net/http"
)

// Search runs a workspace search across pages and databases.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResult, error) {
	if req == nil {
		req = &SearchRequest{}
	}
	var result SearchResult
	if err := c.doRequest(ctx, http.MethodPost, "/search", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchPages searches for pages matching the query.
func (c *Client) SearchPages(ctx context.Context, query string) (*SearchResult, error) {
	req := &SearchRequest{
		Query:  query,
		Filter: &SearchFilter{Property: "object", Value: "page"},
	}
	return c.Search(ctx, req)
}
