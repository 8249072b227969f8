package notion

import (
	"sort"
	"strings"
	"time"
)

// Block type tags used in the Notion content model.
const (
	TypeHeading1  = "heading_1"
	TypeHeading2  = "heading_2"
	TypeHeading3  = "heading_3"
	TypeBulleted  = "bulleted_list_item"
	TypeNumbered  = "numbered_list_item"
	TypeParagraph = "paragraph"
	TypeQuote     = "quote"
	TypeCode      = "code"
)

// Property type tags relevant to publishing.
const (
	PropertyTitle       = "title"
	PropertyMultiSelect = "multi_select"
)

// MaxTextLength is Notion's cap on a single rich-text content string.
const MaxTextLength = 2000

// MaxBlocksPerAppend is Notion's cap on children per append request.
const MaxBlocksPerAppend = 100

// TextContent is the inner text payload of a rich-text element.
type TextContent struct {
	Content string `json:"content"`
}

// RichText is one element of a Notion rich-text array.
type RichText struct {
	Type      string       `json:"type,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

// Text builds a single-element rich-text array from plain content.
func Text(content string) []RichText {
	return []RichText{{Type: "text", Text: &TextContent{Content: content}}}
}

// PlainText concatenates the readable content of a rich-text array.
// Responses carry plain_text; requests only carry text.content.
func PlainText(rts []RichText) string {
	var b strings.Builder
	for _, rt := range rts {
		if rt.PlainText != "" {
			b.WriteString(rt.PlainText)
		} else if rt.Text != nil {
			b.WriteString(rt.Text.Content)
		}
	}
	return b.String()
}

// RichTextBody is the shared payload shape of text-bearing blocks.
type RichTextBody struct {
	RichText []RichText `json:"rich_text"`
}

// CodeBody is the payload of a code block.
type CodeBody struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language"`
}

// Block is a unit of page content. Exactly one payload field is set,
// matching the Type tag (a discriminated union in Notion's schema).
type Block struct {
	Object    string        `json:"object"`
	Type      string        `json:"type"`
	Heading1  *RichTextBody `json:"heading_1,omitempty"`
	Heading2  *RichTextBody `json:"heading_2,omitempty"`
	Heading3  *RichTextBody `json:"heading_3,omitempty"`
	Bulleted  *RichTextBody `json:"bulleted_list_item,omitempty"`
	Numbered  *RichTextBody `json:"numbered_list_item,omitempty"`
	Paragraph *RichTextBody `json:"paragraph,omitempty"`
	Quote     *RichTextBody `json:"quote,omitempty"`
	Code      *CodeBody     `json:"code,omitempty"`
}

// NewHeading creates a heading block. Levels outside 1-3 are clamped.
func NewHeading(level int, text string) Block {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	b := Block{Object: "block"}
	body := &RichTextBody{RichText: Text(text)}
	switch level {
	case 1:
		b.Type, b.Heading1 = TypeHeading1, body
	case 2:
		b.Type, b.Heading2 = TypeHeading2, body
	case 3:
		b.Type, b.Heading3 = TypeHeading3, body
	}
	return b
}

// NewBulleted creates a bulleted list item block.
func NewBulleted(text string) Block {
	return Block{Object: "block", Type: TypeBulleted, Bulleted: &RichTextBody{RichText: Text(text)}}
}

// NewNumbered creates a numbered list item block.
func NewNumbered(text string) Block {
	return Block{Object: "block", Type: TypeNumbered, Numbered: &RichTextBody{RichText: Text(text)}}
}

// NewParagraph creates a paragraph block.
func NewParagraph(text string) Block {
	return Block{Object: "block", Type: TypeParagraph, Paragraph: &RichTextBody{RichText: Text(text)}}
}

// NewQuote creates a quote block.
func NewQuote(text string) Block {
	return Block{Object: "block", Type: TypeQuote, Quote: &RichTextBody{RichText: Text(text)}}
}

// NewCode creates a code block with the given language tag.
func NewCode(text, language string) Block {
	if language == "" {
		language = "plain text"
	}
	return Block{Object: "block", Type: TypeCode, Code: &CodeBody{RichText: Text(text), Language: language}}
}

// Text returns the plain content of whichever payload is set.
func (b Block) Text() string {
	switch {
	case b.Heading1 != nil:
		return PlainText(b.Heading1.RichText)
	case b.Heading2 != nil:
		return PlainText(b.Heading2.RichText)
	case b.Heading3 != nil:
		return PlainText(b.Heading3.RichText)
	case b.Bulleted != nil:
		return PlainText(b.Bulleted.RichText)
	case b.Numbered != nil:
		return PlainText(b.Numbered.RichText)
	case b.Paragraph != nil:
		return PlainText(b.Paragraph.RichText)
	case b.Quote != nil:
		return PlainText(b.Quote.RichText)
	case b.Code != nil:
		return PlainText(b.Code.RichText)
	}
	return ""
}

// Property is one typed field definition in a database schema.
type Property struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Database is a database object with its schema.
type Database struct {
	Object     string              `json:"object"`
	ID         string              `json:"id"`
	URL        string              `json:"url,omitempty"`
	Title      []RichText          `json:"title,omitempty"`
	Properties map[string]Property `json:"properties"`
}

// TitleProperty returns the name of the database's title-kind field.
// Notion guarantees exactly one per database, but iteration is sorted
// anyway so behavior is deterministic on malformed input.
func (d *Database) TitleProperty() (string, bool) {
	for _, name := range d.sortedPropertyNames() {
		if d.Properties[name].Type == PropertyTitle {
			return name, true
		}
	}
	return "", false
}

// MultiSelectProperty returns the name of a multi-select field suitable
// for tags, preferring one literally named "Tags".
func (d *Database) MultiSelectProperty() (string, bool) {
	fallback := ""
	for _, name := range d.sortedPropertyNames() {
		if d.Properties[name].Type != PropertyMultiSelect {
			continue
		}
		if strings.EqualFold(name, "tags") {
			return name, true
		}
		if fallback == "" {
			fallback = name
		}
	}
	return fallback, fallback != ""
}

func (d *Database) sortedPropertyNames() []string {
	names := make([]string, 0, len(d.Properties))
	for name := range d.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PageProperty is a property value on a page object. Only the title
// payload is decoded; other kinds are identified by Type alone.
type PageProperty struct {
	ID    string     `json:"id"`
	Type  string     `json:"type"`
	Title []RichText `json:"title,omitempty"`
}

// Page is a page object as returned by the API.
type Page struct {
	Object         string                  `json:"object"`
	ID             string                  `json:"id"`
	URL            string                  `json:"url,omitempty"`
	CreatedTime    time.Time               `json:"created_time"`
	LastEditedTime time.Time               `json:"last_edited_time"`
	Properties     map[string]PageProperty `json:"properties,omitempty"`
}

// Title scans the page's properties for the first title-kind field and
// returns its plain text, or "" if the page has no populated title.
func (p *Page) Title() string {
	names := make([]string, 0, len(p.Properties))
	for name := range p.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prop := p.Properties[name]
		if prop.Type == PropertyTitle && len(prop.Title) > 0 {
			return PlainText(prop.Title)
		}
	}
	return ""
}

// Parent identifies the database a new page belongs to.
type Parent struct {
	DatabaseID string `json:"database_id"`
}

// SelectOption is one value of a multi-select property.
type SelectOption struct {
	Name string `json:"name"`
}

// PropertyValue is a property payload on a create-page request.
type PropertyValue struct {
	Title       []RichText     `json:"title,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
}

// CreatePageRequest is the body of POST /pages.
type CreatePageRequest struct {
	Parent     Parent                   `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
}

// SortSpec orders database query results.
type SortSpec struct {
	Timestamp string `json:"timestamp,omitempty"`
	Property  string `json:"property,omitempty"`
	Direction string `json:"direction"`
}

// DatabaseQuery is the body of POST /databases/{id}/query.
type DatabaseQuery struct {
	Filter      map[string]any `json:"filter,omitempty"`
	Sorts       []SortSpec     `json:"sorts,omitempty"`
	PageSize    int            `json:"page_size,omitempty"`
	StartCursor string         `json:"start_cursor,omitempty"`
}

// QueryResult is the response of a database query.
type QueryResult struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// SearchFilter restricts search results to one object kind.
type SearchFilter struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query    string        `json:"query,omitempty"`
	Filter   *SearchFilter `json:"filter,omitempty"`
	PageSize int           `json:"page_size,omitempty"`
}

// SearchItem is one search result; pages and databases carry their
// titles in different places, so both shapes are decoded.
type SearchItem struct {
	Object         string                  `json:"object"`
	ID             string                  `json:"id"`
	URL            string                  `json:"url,omitempty"`
	Title          []RichText              `json:"title,omitempty"`
	Properties     map[string]PageProperty `json:"properties,omitempty"`
	LastEditedTime time.Time               `json:"last_edited_time"`
}

// DisplayTitle resolves a readable title for either object kind.
func (s *SearchItem) DisplayTitle() string {
	if len(s.Title) > 0 {
		return PlainText(s.Title)
	}
	page := Page{Properties: s.Properties}
	return page.Title()
}

// SearchResult is the response of POST /search.
type SearchResult struct {
	Object     string       `json:"object"`
	Results    []SearchItem `json:"results"`
	HasMore    bool         `json:"has_more"`
	NextCursor *string      `json:"next_cursor"`
}
