package ops

import (
	"context"
	"testing"

	"github.com/jotcli/jot/internal/errors"
)

const searchResponse = `{
	"object": "list",
	"results": [
		{
			"object": "page",
			"id": "page-a",
			"url": "https://notion.so/page-a",
			"properties": {
				"Page": {"id": "t", "type": "title", "title": [{"type": "text", "plain_text": "Meeting notes"}]}
			}
		},
		{
			"object": "page",
			"id": "page-b",
			"url": "https://notion.so/page-b",
			"properties": {}
		}
	],
	"has_more": true,
	"next_cursor": "cur-1"
}`

func TestSearch(t *testing.T) {
	f := newFakeNotion(t)
	f.searchResponse = searchResponse

	out, err := Search(context.Background(), f.client(), SearchInput{Query: "meeting"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	req := f.searchReqs[0]
	if req.Query != "meeting" {
		t.Errorf("query = %q", req.Query)
	}
	if req.Filter == nil || req.Filter.Value != "page" {
		t.Errorf("filter = %+v, want object=page", req.Filter)
	}
	if req.PageSize != DefaultListLimit {
		t.Errorf("page_size = %d, want %d", req.PageSize, DefaultListLimit)
	}

	if len(out.Items) != 2 {
		t.Fatalf("items = %d", len(out.Items))
	}
	if out.Items[0].Title != "Meeting notes" {
		t.Errorf("title = %q", out.Items[0].Title)
	}
	if out.Items[1].Title != "Untitled" {
		t.Errorf("fallback title = %q", out.Items[1].Title)
	}
	if !out.HasMore {
		t.Error("HasMore = false")
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	f := newFakeNotion(t)

	_, err := Search(context.Background(), f.client(), SearchInput{Query: "   "})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("error = %v, want INVALID_REQUEST", err)
	}
	if f.requestCount() != 0 {
		t.Errorf("made %d requests before validation", f.requestCount())
	}
}

func TestDatabases(t *testing.T) {
	f := newFakeNotion(t)
	f.searchResponse = `{
		"object": "list",
		"results": [
			{"object": "database", "id": "db-1", "title": [{"type": "text", "plain_text": "Notes"}]}
		],
		"has_more": false,
		"next_cursor": null
	}`

	out, err := Databases(context.Background(), f.client())
	if err != nil {
		t.Fatalf("Databases() error = %v", err)
	}

	req := f.searchReqs[0]
	if req.Filter == nil || req.Filter.Value != "database" {
		t.Errorf("filter = %+v, want object=database", req.Filter)
	}
	if len(out.Items) != 1 || out.Items[0].Title != "Notes" || out.Items[0].Object != "database" {
		t.Errorf("items = %+v", out.Items)
	}
}
