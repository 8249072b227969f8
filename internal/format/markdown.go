package format

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/jotcli/jot/internal/notion"
)

// Markdown parses the body as CommonMark and maps its top-level
// structure onto Notion blocks: headings, bulleted/numbered lists,
// fenced code, block quotes, and paragraphs. Inline styling is
// flattened to plain text; nested lists flatten into their parent
// item's text.
func Markdown(body string) []notion.Block {
	source := []byte(body)
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(source))

	var blocks []notion.Block
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		blocks = append(blocks, convertNode(node, source)...)
	}
	return blocks
}

func convertNode(node ast.Node, source []byte) []notion.Block {
	switch n := node.(type) {
	case *ast.Heading:
		return []notion.Block{notion.NewHeading(n.Level, truncate(nodeText(n, source)))}

	case *ast.List:
		var out []notion.Block
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			text := truncate(nodeText(item, source))
			if n.IsOrdered() {
				out = append(out, notion.NewNumbered(text))
			} else {
				out = append(out, notion.NewBulleted(text))
			}
		}
		return out

	case *ast.FencedCodeBlock:
		var sb strings.Builder
		for i := 0; i < n.Lines().Len(); i++ {
			seg := n.Lines().At(i)
			sb.Write(seg.Value(source))
		}
		lang := string(n.Language(source))
		code := strings.TrimRight(sb.String(), "\n")
		return []notion.Block{notion.NewCode(truncate(code), lang)}

	case *ast.Blockquote:
		return []notion.Block{notion.NewQuote(truncate(nodeText(n, source)))}

	case *ast.ThematicBreak:
		return nil

	case *ast.Paragraph:
		return paragraphBlocks(nodeText(n, source))
	}

	return paragraphBlocks(nodeText(node, source))
}

func paragraphBlocks(text string) []notion.Block {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var out []notion.Block
	for _, chunk := range chunkText(text) {
		out = append(out, notion.NewParagraph(chunk))
	}
	return out
}

// nodeText flattens a node's inline content to plain text, preserving
// line breaks between inline segments.
func nodeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.AutoLink:
			sb.Write(t.URL(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
