package format

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/jotcli/jot/internal/notion"
)

var testNow = time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)

func testOpts() Options {
	return Options{Author: "Notes Bot", Now: testNow}
}

func TestNote_Example(t *testing.T) {
	// The canonical example: a heading paragraph and a list paragraph.
	blocks := Collect(Note("# Title\n\n- a\n- b", testOpts()))

	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4", len(blocks))
	}

	if blocks[0].Type != notion.TypeHeading3 {
		t.Errorf("block 0 type = %q, want heading_3", blocks[0].Type)
	}
	if want := "Created by Notes Bot - 2024-05-01 14:30"; blocks[0].Text() != want {
		t.Errorf("stamp = %q, want %q", blocks[0].Text(), want)
	}

	if blocks[1].Type != notion.TypeHeading1 || blocks[1].Text() != "Title" {
		t.Errorf("block 1 = %s %q, want heading_1 'Title'", blocks[1].Type, blocks[1].Text())
	}
	if blocks[2].Type != notion.TypeBulleted || blocks[2].Text() != "a" {
		t.Errorf("block 2 = %s %q, want bulleted 'a'", blocks[2].Type, blocks[2].Text())
	}
	if blocks[3].Type != notion.TypeBulleted || blocks[3].Text() != "b" {
		t.Errorf("block 3 = %s %q, want bulleted 'b'", blocks[3].Type, blocks[3].Text())
	}
}

func TestNote_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "   ", "\n\n\n"} {
		blocks := Collect(Note(body, testOpts()))
		if len(blocks) != 1 {
			t.Errorf("body %q: got %d blocks, want only the timestamp heading", body, len(blocks))
		}
	}
}

func TestNote_Restartable(t *testing.T) {
	seq := Note("first\n\nsecond", testOpts())

	one := Collect(seq)
	two := Collect(seq)

	if len(one) != len(two) {
		t.Fatalf("lengths differ between passes: %d vs %d", len(one), len(two))
	}
	for i := range one {
		if one[i].Text() != two[i].Text() {
			t.Errorf("block %d differs between passes: %q vs %q", i, one[i].Text(), two[i].Text())
		}
	}
}

func TestFragments_BulletsRoundTrip(t *testing.T) {
	items := []string{"alpha", "beta", "gamma", "delta"}
	body := "- " + strings.Join(items, "\n- ")

	blocks := Collect(Fragments(body))
	if len(blocks) != len(items) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(items))
	}
	for i, b := range blocks {
		if b.Type != notion.TypeBulleted {
			t.Errorf("block %d type = %q, want bulleted", i, b.Type)
		}
		if b.Text() != items[i] {
			t.Errorf("block %d text = %q, want %q", i, b.Text(), items[i])
		}
	}
}

func TestFragments_StarMarkers(t *testing.T) {
	blocks := Collect(Fragments("* one\n* two"))
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Text() != "one" || blocks[1].Text() != "two" {
		t.Errorf("texts = %q, %q", blocks[0].Text(), blocks[1].Text())
	}
}

func TestFragments_MixedLinesAreNotAList(t *testing.T) {
	// One non-marker line demotes the paragraph to plain text.
	blocks := Collect(Fragments("- one\nnot a bullet"))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Type != notion.TypeParagraph {
		t.Errorf("type = %q, want paragraph", blocks[0].Type)
	}
}

func TestFragments_HeadingLevels(t *testing.T) {
	tests := map[string]struct {
		body     string
		wantType string
		wantText string
	}{
		"h1":            {"# One", notion.TypeHeading1, "One"},
		"h2":            {"## Two", notion.TypeHeading2, "Two"},
		"h3":            {"### Three", notion.TypeHeading3, "Three"},
		"h4 clamps":     {"#### Four", notion.TypeHeading3, "Four"},
		"deep clamps":   {"####### Deep", notion.TypeHeading3, "Deep"},
		"marker only":   {"#", notion.TypeHeading1, ""},
		"no space":      {"#Tight", notion.TypeHeading1, "Tight"},
		"trimmed space": {"##   padded  ", notion.TypeHeading2, "padded"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			blocks := Collect(Fragments(tc.body))
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			if blocks[0].Type != tc.wantType {
				t.Errorf("type = %q, want %q", blocks[0].Type, tc.wantType)
			}
			if blocks[0].Text() != tc.wantText {
				t.Errorf("text = %q, want %q", blocks[0].Text(), tc.wantText)
			}
		})
	}
}

func TestFragments_LongParagraphChunksLosslessly(t *testing.T) {
	body := strings.Repeat("a", 1901)

	blocks := Collect(Fragments(body))
	if len(blocks) < 2 {
		t.Fatalf("got %d blocks, want >= 2", len(blocks))
	}

	var rebuilt strings.Builder
	for _, b := range blocks {
		if b.Type != notion.TypeParagraph {
			t.Errorf("type = %q, want paragraph", b.Type)
		}
		rebuilt.WriteString(b.Text())
	}
	if rebuilt.String() != body {
		t.Errorf("concatenated chunks do not restore the body (len %d vs %d)", rebuilt.Len(), len(body))
	}
}

func TestFragments_BlockCeilingHolds(t *testing.T) {
	bodies := []string{
		"",
		"short",
		strings.Repeat("x", 10000),
		"# " + strings.Repeat("h", 5000),
		"- " + strings.Repeat("b", 5000),
		strings.Repeat("日本語テキスト", 1000),
		"# a\n\n- x\n- y\n\n" + strings.Repeat("p", 4000),
	}

	for _, body := range bodies {
		count := 0
		for b := range Note(body, testOpts()) {
			count++
			if n := utf8.RuneCountInString(b.Text()); n > notion.MaxTextLength {
				t.Errorf("block text length %d exceeds ceiling", n)
			}
		}
		if count < 1 {
			t.Error("sequence produced no blocks")
		}
	}
}

func TestFragments_TruncationEllipsis(t *testing.T) {
	// Headings and bullets over the cap are cut with a visible marker,
	// the same policy for both.
	longText := strings.Repeat("h", 2500)

	for _, body := range []string{"# " + longText, "- " + longText} {
		blocks := Collect(Fragments(body))
		if len(blocks) != 1 {
			t.Fatalf("got %d blocks, want 1", len(blocks))
		}
		text := blocks[0].Text()
		if utf8.RuneCountInString(text) != notion.MaxTextLength {
			t.Errorf("truncated length = %d, want %d", utf8.RuneCountInString(text), notion.MaxTextLength)
		}
		if !strings.HasSuffix(text, ellipsis) {
			t.Errorf("truncated text does not end with ellipsis")
		}
	}
}

func TestFragments_OrderPreserved(t *testing.T) {
	body := "intro paragraph\n\n## Section\n\n- first\n- second\n\nclosing words"

	blocks := Collect(Fragments(body))
	wantTypes := []string{
		notion.TypeParagraph,
		notion.TypeHeading2,
		notion.TypeBulleted,
		notion.TypeBulleted,
		notion.TypeParagraph,
	}
	if len(blocks) != len(wantTypes) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(wantTypes))
	}
	for i, want := range wantTypes {
		if blocks[i].Type != want {
			t.Errorf("block %d type = %q, want %q", i, blocks[i].Type, want)
		}
	}
}

func TestNote_DefaultAuthor(t *testing.T) {
	blocks := Collect(Note("x", Options{Now: testNow}))
	if !strings.HasPrefix(blocks[0].Text(), "Created by Jot - ") {
		t.Errorf("stamp = %q, want default author", blocks[0].Text())
	}
}
