package notion

import (
	"context"
	"net/http"
)

// GetDatabase fetches a database object, including its property schema.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	if err := c.doRequest(ctx, http.MethodGet, "/databases/"+databaseID, nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// QueryDatabase queries a database with optional filter, sort, and paging.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, query *DatabaseQuery) (*QueryResult, error) {
	if query == nil {
		query = &DatabaseQuery{}
	}
	var result QueryResult
	if err := c.doRequest(ctx, http.MethodPost, "/databases/"+databaseID+"/query", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListDatabases returns all databases the integration can see.
func (c *Client) ListDatabases(ctx context.Context) (*SearchResult, error) {
	req := &SearchRequest{
		Filter: &SearchFilter{Property: "object", Value: "database"},
	}
	return c.Search(ctx, req)
}
