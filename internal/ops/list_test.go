package ops

import (
	"context"
	"testing"

	"github.com/jotcli/jot/internal/errors"
)

const listResponse = `{
	"object": "list",
	"results": [
		{
			"object": "page",
			"id": "page-a",
			"url": "https://notion.so/page-a",
			"last_edited_time": "2024-05-02T09:00:00.000Z",
			"properties": {
				"Page": {"id": "t", "type": "title", "title": [{"type": "text", "plain_text": "Newest note"}]}
			}
		},
		{
			"object": "page",
			"id": "page-b",
			"url": "https://notion.so/page-b",
			"last_edited_time": "2024-05-01T09:00:00.000Z",
			"properties": {
				"Page": {"id": "t", "type": "title", "title": []}
			}
		}
	],
	"has_more": false,
	"next_cursor": null
}`

func TestListDefaults(t *testing.T) {
	f := newFakeNotion(t)
	f.queryResponse = listResponse

	out, err := List(context.Background(), f.client(), testConfig(), ListInput{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(f.queryReqs) != 1 {
		t.Fatalf("query requests = %d", len(f.queryReqs))
	}
	q := f.queryReqs[0]
	if q.PageSize != DefaultListLimit {
		t.Errorf("page_size = %d, want %d", q.PageSize, DefaultListLimit)
	}
	if len(q.Sorts) != 1 || q.Sorts[0].Timestamp != "last_edited_time" || q.Sorts[0].Direction != "descending" {
		t.Errorf("sorts = %+v", q.Sorts)
	}

	if len(out.Items) != 2 {
		t.Fatalf("items = %d", len(out.Items))
	}
	if out.Items[0].Title != "Newest note" {
		t.Errorf("first title = %q", out.Items[0].Title)
	}
	if out.Items[1].Title != "Untitled" {
		t.Errorf("empty title = %q, want Untitled", out.Items[1].Title)
	}
	if out.Database != "Notes" {
		t.Errorf("database = %q", out.Database)
	}
	if out.Sort != "last_edited_time_desc" {
		t.Errorf("sort = %q", out.Sort)
	}
}

func TestListLimitCap(t *testing.T) {
	f := newFakeNotion(t)

	if _, err := List(context.Background(), f.client(), testConfig(), ListInput{Limit: 500}); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got := f.queryReqs[0].PageSize; got != MaxListLimit {
		t.Errorf("page_size = %d, want %d", got, MaxListLimit)
	}
}

func TestListTransportError(t *testing.T) {
	f := newFakeNotion(t)
	f.server.Close()

	_, err := List(context.Background(), f.client(), testConfig(), ListInput{})
	if !errors.Is(err, errors.ErrInternal) {
		t.Fatalf("error = %v, want INTERNAL", err)
	}
}
