package handlers

import (
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"besinrehberi/internal/markdown"
)

// Page is a rendered informational page.
type Page struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	HTML  string `json:"html,omitempty"`
}

// Pages serves the static informational pages. They are rendered once at
// startup and held in memory.
type Pages struct {
	bySlug map[string]Page
	index  []Page
}

// LoadPages renders every pages/*.md file in fsys. The file name without
// its extension becomes the page slug.
func LoadPages(fsys fs.FS) (*Pages, error) {
	files, err := fs.Glob(fsys, "pages/*.md")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}

	p := &Pages{bySlug: make(map[string]Page, len(files))}
	for _, name := range files {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", name, err)
		}
		html, err := markdown.ToHTML(string(src))
		if err != nil {
			return nil, fmt.Errorf("render page %s: %w", name, err)
		}

		slug := strings.TrimSuffix(path.Base(name), ".md")
		title := markdown.Title(string(src))
		if title == "" {
			title = slug
		}
		page := Page{Slug: slug, Title: title, HTML: html}
		p.bySlug[slug] = page
		p.index = append(p.index, Page{Slug: slug, Title: title})
	}
	sort.Slice(p.index, func(i, j int) bool { return p.index[i].Slug < p.index[j].Slug })
	return p, nil
}

// List serves the slug and title of every page.
func (p *Pages) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.index)
}

// Get serves one rendered page.
func (p *Pages) Get(w http.ResponseWriter, r *http.Request) {
	page, ok := p.bySlug[chi.URLParam(r, "slug")]
	if !ok {
		writeError(w, http.StatusNotFound, "sayfa bulunamadı")
		return
	}
	writeJSON(w, http.StatusOK, page)
}
