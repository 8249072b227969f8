// Package ops implements the publisher operations behind the CLI, MCP,
// and web surfaces. Every operation takes the Notion client and the
// loaded configuration explicitly; there is no package-level state.
package ops

import (
	"context"
	"strings"

	"github.com/jotcli/jot/internal/notion"
)

const (
	// AppendBatchSize is the number of blocks sent per append request.
	AppendBatchSize = 10

	// DefaultListLimit is the page count returned by List when unset.
	DefaultListLimit = 5

	// MaxListLimit caps a single List query.
	MaxListLimit = 100
)

// appendBatches pushes blocks to a page in AppendBatchSize batches,
// stopping on the first failure. Returns how many blocks made it.
func appendBatches(ctx context.Context, client *notion.Client, pageID string, blocks []notion.Block) (int, error) {
	appended := 0
	for start := 0; start < len(blocks); start += AppendBatchSize {
		end := min(start+AppendBatchSize, len(blocks))
		if err := client.AppendBlocks(ctx, pageID, blocks[start:end]); err != nil {
			return appended, err
		}
		appended = end
	}
	return appended, nil
}

// normalizeTags trims whitespace and drops empties and duplicates,
// preserving first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, tag)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// ensureTag appends tag unless an equivalent (case-insensitive) entry
// is already present.
func ensureTag(tags []string, tag string) []string {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return tags
		}
	}
	return append(tags, tag)
}
