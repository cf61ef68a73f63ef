package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ldlewis/simpleblog/internal/render"
	"github.com/ldlewis/simpleblog/pkg/core"
)

const contentTypeHTML = "text/html; charset=utf-8"

// handleHome serves index.html with the most recent article's preview
// substituted for {latest_article}. An empty store is not an error; the
// token is simply left in place.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	page, err := render.Page(s.cfg.FilePath, "index.html")
	if err != nil {
		s.notFound(w, err)
		return
	}

	articles, err := s.store.LoadAll(r.Context())
	if err != nil {
		s.notFound(w, err)
		return
	}

	tokens := map[string]string{}
	if ordered := core.Order(articles); len(ordered) > 0 {
		tokens["latest_article"] = ordered[0].PreviewHTML()
	}

	writeHTML(w, http.StatusOK, render.Render(page, tokens))
}

// handleIndex serves the paginated article list. The zero-based page comes
// from the index query parameter, defaulting to 0.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	index := pageIndex(r.URL.Query().Get("index"))

	articles, err := s.store.LoadAll(r.Context())
	if err != nil {
		s.notFound(w, err)
		return
	}
	ordered := core.Order(articles)

	var previews strings.Builder
	for _, a := range core.Paginate(ordered, index, core.PageSize) {
		previews.WriteString(a.PreviewHTML())
	}

	page, err := render.Page(s.cfg.FilePath, "articles.html")
	if err != nil {
		s.notFound(w, err)
		return
	}

	out := render.Render(page, map[string]string{
		"articles": previews.String(),
		"links":    navLinks(index, core.PageCount(len(ordered), core.PageSize)),
	})
	writeHTML(w, http.StatusOK, out)
}

// handleArticle serves a single article page: the body markdown named by the
// article_id path parameter, converted to HTML and substituted into the base
// article template.
func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "article_id")
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		s.notFound(w, fmt.Errorf("article id %q: %w", id, core.ErrNotFound))
		return
	}

	page, err := render.Page(s.cfg.FilePath, "article_template.html")
	if err != nil {
		s.notFound(w, err)
		return
	}

	body, err := render.MarkdownFile(filepath.Join(s.cfg.FilePath, "articles", id+".md"))
	if err != nil {
		s.notFound(w, err)
		return
	}

	writeHTML(w, http.StatusOK, render.Render(page, map[string]string{
		"article_content": body,
	}))
}

// handleSubmit appends a JSON-submitted article to the store. Credentials
// were already checked by the BasicAuth middleware.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var a core.Article
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		s.logger.Debug("rejected article submission", "err", err)
		http.Error(w, "malformed article", http.StatusBadRequest)
		return
	}

	if err := s.store.Append(r.Context(), a); err != nil {
		if errors.Is(err, core.ErrSerialize) {
			http.Error(w, "article cannot be stored", http.StatusBadRequest)
			return
		}
		s.logger.Error("failed to store article", "id", a.ArticleID, "err", err)
		http.Error(w, "failed to store article", http.StatusInternalServerError)
		return
	}

	s.logger.Info("article submitted", "id", a.ArticleID)
	w.WriteHeader(http.StatusOK)
}

// handleFeed serves the latest ten articles as an RSS 2.0 document built
// from the site configuration.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	articles, err := s.store.LoadAll(r.Context())
	if err != nil {
		s.notFound(w, err)
		return
	}

	var items strings.Builder
	for _, a := range core.Paginate(core.Order(articles), 0, core.PageSize) {
		items.WriteString(a.RSSItem(s.cfg.SiteLink))
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	fmt.Fprintf(w, `<rss version="2.0">
<channel>
<title>%s</title>
<link>%s</link>
<description>%s</description>
%s</channel>
</rss>
`, s.cfg.SiteTitle, s.cfg.SiteLink, s.cfg.SiteDescription, items.String())
}

// pageIndex parses the index query parameter. Missing, non-numeric, and
// negative values all fall back to page 0.
func pageIndex(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// navLinks builds the pager bar. First/Previous appear only past page 0;
// Next/Last appear only while index is below the floor-divided page count,
// so a trailing partial page is reachable but never linked from itself.
func navLinks(index, pageCount int) string {
	var b strings.Builder
	b.WriteString("<ul class='article_bar'>")
	if index > 0 {
		b.WriteString("<li><a href=articles?index=0>First</a></li>")
		fmt.Fprintf(&b, "<li><a href=articles?index=%d>Previous</a></li>", index-1)
	}
	if index < pageCount {
		fmt.Fprintf(&b, "<li><a href=articles?index=%d>Next</a></li>", index+1)
		fmt.Fprintf(&b, "<li><a href=articles?index=%d>Last</a></li>", pageCount)
	}
	b.WriteString("</ul>")
	return b.String()
}

// notFound renders the site's fnfpage.html, or a built-in fallback when the
// content root has none. Every content failure collapses here with a 404;
// the cause is logged, never surfaced to the client.
func (s *Server) notFound(w http.ResponseWriter, cause error) {
	s.logger.Debug("rendering not-found page", "cause", cause)

	page, err := render.Page(s.cfg.FilePath, "fnfpage.html")
	if err != nil {
		page = "<h1>404 Page not found</h1><p>Nothing lives at this address.</p>"
	}
	writeHTML(w, http.StatusNotFound, page)
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	io.WriteString(w, body)
}
