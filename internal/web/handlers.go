package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jotcli/jot/internal/config"
	"github.com/jotcli/jot/internal/errors"
	"github.com/jotcli/jot/internal/notion"
	"github.com/jotcli/jot/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	client   *notion.Client
	cfg      *config.Config
	renderer *Renderer
}

// HandleList handles GET /pages — the recent-pages view.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", ops.DefaultListLimit)

	result, err := ops.List(r.Context(), h.client, h.cfg, ops.ListInput{Limit: limit})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, "list", ListPageData{
		PageData: PageData{
			Title:   "Recent pages",
			Version: h.renderer.version,
			Nav:     "pages",
		},
		Items:    result.Items,
		Database: result.Database,
		Limit:    limit,
	})
}

// HandleComposeForm handles GET /compose — the empty compose form.
func (h *Handlers) HandleComposeForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.renderPage(w, "compose", ComposePageData{
		PageData: PageData{
			Title:   "Compose",
			Version: h.renderer.version,
			Nav:     "compose",
		},
		Tags: strings.Join(h.cfg.DefaultTags, ", "),
	})
}

// HandleCompose handles POST /compose. The form submits with one of two
// actions: "preview" re-renders the form with the body rendered to HTML,
// "publish" creates the page and redirects to the listing.
func (h *Handlers) HandleCompose(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	data := ComposePageData{
		PageData: PageData{
			Title:   "Compose",
			Version: h.renderer.version,
			Nav:     "compose",
		},
		FormTitle: strings.TrimSpace(r.FormValue("title")),
		Body:      r.FormValue("body"),
		Tags:      r.FormValue("tags"),
		Markdown:  r.FormValue("markdown") == "on",
	}

	if r.FormValue("action") == "preview" {
		data.Preview = renderMarkdown(data.Body)
		h.renderer.renderPage(w, "compose", data)
		return
	}

	input := ops.CreateInput{
		Title:    data.FormTitle,
		Body:     data.Body,
		Markdown: data.Markdown,
	}
	if tags := parseTags(data.Tags); tags != nil {
		input.Tags = tags
	}

	if _, err := ops.Create(r.Context(), h.client, h.cfg, input); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/pages", http.StatusFound)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// parseTags splits a comma-separated string into a slice of tags.
func parseTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
