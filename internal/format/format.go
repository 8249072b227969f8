// Package format converts free-text note bodies into ordered Notion
// block sequences. Plain mode follows simple conventions (blank-line
// paragraphs, "-"/"*" list markers, leading-# headings); markdown mode
// runs a real parser over the body.
package format

import (
	"iter"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jotcli/jot/internal/notion"
)

// ellipsis marks truncated heading and list text. Paragraph text is
// never truncated; it spills into continuation blocks instead.
const ellipsis = "…"

// paragraphChunkSize keeps paragraph chunks a margin below the API cap.
const paragraphChunkSize = 1900

// Options controls the injected timestamp heading.
type Options struct {
	// Author appears in the timestamp heading ("Created by <Author> - ...").
	Author string

	// Now overrides the clock; the zero value means time.Now().
	Now time.Time
}

// Stamp returns the timestamp heading that opens every published note.
func Stamp(opts Options) notion.Block {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	author := opts.Author
	if author == "" {
		author = "Jot"
	}
	return notion.NewHeading(3, "Created by "+author+" - "+now.Format("2006-01-02 15:04"))
}

// Note returns the block sequence for a note body: a timestamp heading
// followed by the body's fragments. The sequence is lazy, finite, and
// restartable; ranging it twice produces the same blocks.
func Note(body string, opts Options) iter.Seq[notion.Block] {
	stamp := Stamp(opts)

	return func(yield func(notion.Block) bool) {
		if !yield(stamp) {
			return
		}
		for b := range Fragments(body) {
			if !yield(b) {
				return
			}
		}
	}
}

// Fragments returns the body's blocks without the timestamp heading,
// preserving reading order. Used directly when appending to an
// existing page.
func Fragments(body string) iter.Seq[notion.Block] {
	return func(yield func(notion.Block) bool) {
		for _, para := range strings.Split(strings.TrimSpace(body), "\n\n") {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}

			switch {
			case isListParagraph(para):
				for _, line := range strings.Split(para, "\n") {
					line = strings.TrimSpace(line)
					if !yield(notion.NewBulleted(truncate(line[2:]))) {
						return
					}
				}
			case strings.HasPrefix(para, "#"):
				level := 0
				for level < len(para) && para[level] == '#' {
					level++
				}
				text := strings.TrimSpace(strings.TrimLeft(para, "#"))
				if !yield(notion.NewHeading(min(level, 3), truncate(text))) {
					return
				}
			default:
				for _, chunk := range chunkText(para) {
					if !yield(notion.NewParagraph(chunk)) {
						return
					}
				}
			}
		}
	}
}

// Collect materializes a block sequence into a slice.
func Collect(seq iter.Seq[notion.Block]) []notion.Block {
	var blocks []notion.Block
	for b := range seq {
		blocks = append(blocks, b)
	}
	return blocks
}

// isListParagraph reports whether every line of the paragraph carries a
// list marker. A single non-marker line demotes the whole paragraph to
// plain text.
func isListParagraph(para string) bool {
	for line := range strings.SplitSeq(para, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- ") && !strings.HasPrefix(line, "* ") {
			return false
		}
	}
	return true
}

// truncate caps text at the block ceiling, replacing the final rune
// with an ellipsis when something was cut.
func truncate(text string) string {
	if utf8.RuneCountInString(text) <= notion.MaxTextLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:notion.MaxTextLength-1]) + ellipsis
}

// chunkText splits text into rune-safe chunks of at most
// paragraphChunkSize. Nothing is dropped; concatenating the chunks
// restores the input.
func chunkText(text string) []string {
	if utf8.RuneCountInString(text) <= paragraphChunkSize {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	for len(runes) > 0 {
		n := min(len(runes), paragraphChunkSize)
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return chunks
}
