package ops

import (
	"context"
	"strings"
	"time"

	"github.com/jotcli/jot/internal/config"
	"github.com/jotcli/jot/internal/errors"
	"github.com/jotcli/jot/internal/notion"
)

// QuickTag is always attached to quick notes, on top of configured
// default tags.
const QuickTag = "quick"

// quickTitleMax is the derived-title length cap.
const quickTitleMax = 50

// QuickInput contains parameters for the Quick operation.
type QuickInput struct {
	Body string
}

// Quick publishes a note without an explicit title. The title derives
// from the body's first line, falling back to a timestamped one when
// the first line is absent or too long to make a sensible title.
func Quick(ctx context.Context, client *notion.Client, cfg *config.Config, input QuickInput) (*CreateOutput, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, errors.NewInvalidRequest("body is required")
	}

	tags := ensureTag(normalizeTags(cfg.DefaultTags), QuickTag)

	return Create(ctx, client, cfg, CreateInput{
		Title: deriveTitle(body, time.Now()),
		Body:  input.Body,
		Tags:  tags,
	})
}

// deriveTitle picks a title from the first line of the body. Lines of
// 100+ chars are not usable as titles; lines over the cap are cut with
// an ellipsis.
func deriveTitle(body string, now time.Time) string {
	line, _, _ := strings.Cut(body, "\n")
	line = strings.TrimSpace(line)
	runes := []rune(line)

	if line == "" || len(runes) >= 100 {
		return "Quick Note - " + now.Format("2006-01-02 15:04")
	}
	if len(runes) > quickTitleMax {
		return string(runes[:quickTitleMax]) + "..."
	}
	return line
}
