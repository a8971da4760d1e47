package folio

import (
	"time"

	"github.com/eringen/folio/content"
)

// PostSummary is the list representation of a post.
type PostSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Cover       string   `json:"cover,omitempty"`
	Author      string   `json:"author,omitempty"`
	Draft       bool     `json:"draft,omitempty"`
	ReadingTime int      `json:"readingTime"`
	URL         string   `json:"url"`
}

// PostDetail is a single post with its body and neighbours. Previous is the
// older post and Next the newer one.
type PostDetail struct {
	PostSummary
	Body     string        `json:"body"`
	TOC      []TOCEntry    `json:"toc"`
	Previous *PostSummary  `json:"previous"` // published before this post; nil for the oldest
	Next     *PostSummary  `json:"next"`     // published after this post; nil for the newest
	Related  []PostSummary `json:"related"`
}

// TOCEntry is one heading of a post's table of contents.
type TOCEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
}

// PostList is the body of GET /api/posts.
type PostList struct {
	Posts []PostSummary `json:"posts"`
	Total int           `json:"total"`
}

// Health is the body of GET /healthz.
type Health struct {
	Status    string       `json:"status"`
	Mode      content.Mode `json:"mode"`
	Documents int          `json:"documents"`
	Warnings  int          `json:"warnings"`
	LoadedAt  *time.Time   `json:"loadedAt,omitempty"`
}

func (a *App) summary(d content.Document) PostSummary {
	author := d.Meta.Author
	if author == "" {
		author = a.Config.Author
	}
	tags := d.Meta.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostSummary{
		Slug:        d.Slug,
		Title:       d.Meta.Title,
		Date:        d.Meta.Date.Format(content.DateLayout),
		Description: d.Meta.Description,
		Tags:        tags,
		Cover:       d.Meta.Cover,
		Author:      author,
		Draft:       d.Meta.Draft,
		ReadingTime: d.ReadingTime,
		URL:         BuildURL(a.Config.URL, "blog", d.Slug),
	}
}

func (a *App) summaries(docs []content.Document) []PostSummary {
	out := make([]PostSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, a.summary(d))
	}
	return out
}

func (a *App) detail(c *content.Catalog, d content.Document) PostDetail {
	toc := content.TableOfContents(d.Body)
	entries := make([]TOCEntry, 0, len(toc))
	for _, h := range toc {
		entries = append(entries, TOCEntry{ID: h.ID, Title: h.Title, Level: h.Level})
	}

	out := PostDetail{
		PostSummary: a.summary(d),
		Body:        d.Body,
		TOC:         entries,
		Related:     a.summaries(FilterRelatedPosts(d, c.ListPosts())),
	}
	prev, next := c.Adjacent(d.Slug)
	if prev != nil {
		s := a.summary(*prev)
		out.Previous = &s
	}
	if next != nil {
		s := a.summary(*next)
		out.Next = &s
	}
	return out
}
