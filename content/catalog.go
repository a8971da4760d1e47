// Package content loads blog posts from a directory of front-matter files
// and answers read-only queries over them.
//
// A Catalog is built once from a Store and never mutated afterwards, so it can
// be shared between goroutines. Provider wraps catalog construction in a
// lazily-initialised, single-flight accessor with explicit reloads.
package content

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
)

// Mode decides whether draft documents are visible.
type Mode string

const (
	// ModeProduction hides drafts from every query.
	ModeProduction Mode = "production"
	// ModeDevelopment shows drafts alongside published documents.
	ModeDevelopment Mode = "development"
)

// ParseMode maps a configuration string onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prod", string(ModeProduction):
		return ModeProduction, nil
	case "dev", string(ModeDevelopment):
		return ModeDevelopment, nil
	}
	return "", fmt.Errorf("content: unknown mode %q", s)
}

// Catalog is an immutable, date-ordered view over the documents of a Store.
type Catalog struct {
	mode     Mode
	docs     []Document
	index    map[string]int
	tags     []string
	warnings []*MalformedError
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
}

// WithLoadLogger sets the logger that receives per-document warnings.
func WithLoadLogger(l *slog.Logger) LoadOption {
	return func(c *loadConfig) {
		c.logger = l
	}
}

// Load reads every document in store and builds a Catalog.
//
// Malformed documents are skipped and reported through Warnings. A missing
// store yields an empty catalog. Two files sharing a slug abort the load with
// a *DuplicateSlugError.
func Load(store Store, mode Mode, opts ...LoadOption) (*Catalog, error) {
	cfg := loadConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger.With("component", "catalog")

	names, err := store.List()
	if err != nil {
		if !errors.Is(err, ErrMissingStore) {
			return nil, fmt.Errorf("content: %w", err)
		}
		logger.Info("content directory not found, catalog is empty")
		names = nil
	}

	if err := checkSlugs(names); err != nil {
		return nil, err
	}

	c := &Catalog{mode: mode}
	docs := make([]Document, 0, len(names))
	for _, name := range names {
		data, err := store.Read(name)
		if err != nil {
			return nil, fmt.Errorf("content: %w", err)
		}
		doc, err := ParseDocument(name, data)
		if err != nil {
			w := &MalformedError{Path: name, Err: err}
			c.warnings = append(c.warnings, w)
			logger.Warn("skipping malformed document", "path", name, "error", err)
			continue
		}
		if doc.Meta.Draft && mode != ModeDevelopment {
			logger.Debug("hiding draft", "slug", doc.Slug)
			continue
		}
		docs = append(docs, doc)
	}

	// Stable so that documents sharing a date keep discovery order.
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Meta.Date.After(docs[j].Meta.Date)
	})

	c.docs = docs
	c.index = make(map[string]int, len(docs))
	for i, d := range docs {
		c.index[d.Slug] = i
	}
	c.tags = collectTags(docs)

	logger.Info("catalog loaded",
		"mode", mode,
		"documents", len(docs),
		"warnings", len(c.warnings),
	)
	return c, nil
}

// checkSlugs rejects file sets where two names derive the same slug. Names
// without a slug are left to ParseDocument, which reports them as malformed.
func checkSlugs(names []string) error {
	seen := make(map[string]string, len(names))
	for _, name := range names {
		slug := SlugFromFilename(name)
		if slug == "" {
			continue
		}
		if prev, ok := seen[slug]; ok {
			return &DuplicateSlugError{Slug: slug, Paths: []string{prev, name}}
		}
		seen[slug] = name
	}
	return nil
}

// collectTags returns the union of the documents' tags. Spellings that differ
// only in case count once, keeping the first spelling in catalog order.
func collectTags(docs []Document) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, d := range docs {
		for _, t := range d.Meta.Tags {
			key := normalizeTag(t)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		return normalizeTag(tags[i]) < normalizeTag(tags[j])
	})
	if tags == nil {
		tags = []string{}
	}
	return tags
}

// Mode returns the draft visibility the catalog was built with.
func (c *Catalog) Mode() Mode {
	return c.mode
}

// Len returns the number of visible documents.
func (c *Catalog) Len() int {
	return len(c.docs)
}

// Warnings returns the documents skipped during Load.
func (c *Catalog) Warnings() []*MalformedError {
	return slices.Clone(c.warnings)
}

// ListPosts returns every visible document, newest first.
func (c *Catalog) ListPosts() []Document {
	return slices.Clone(c.docs)
}

// GetPost returns the document with the given slug. Drafts are not found in
// production mode.
func (c *Catalog) GetPost(slug string) (Document, bool) {
	i, ok := c.index[slug]
	if !ok {
		return Document{}, false
	}
	return c.docs[i], true
}

// Adjacent returns the neighbours of slug in ListPosts order. Because the
// list is newest first, prev is the older document (the one after slug) and
// next is the newer one (the one before it). Both are nil when slug is unknown.
//
// prev always means "published earlier", never "listed earlier": for the
// newest post prev is the second entry of ListPosts and next is nil.
func (c *Catalog) Adjacent(slug string) (prev, next *Document) {
	i, ok := c.index[slug]
	if !ok {
		return nil, nil
	}
	if i+1 < len(c.docs) {
		d := c.docs[i+1]
		prev = &d
	}
	if i > 0 {
		d := c.docs[i-1]
		next = &d
	}
	return prev, next
}

// PostsByTag returns the documents tagged with tag, newest first. Tags are
// compared case-insensitively.
func (c *Catalog) PostsByTag(tag string) []Document {
	return c.filter(func(d Document) bool {
		return d.HasTag(tag)
	})
}

// Search returns the documents whose title, description or body contain
// query, ignoring case. A blank query matches everything.
func (c *Catalog) Search(query string) []Document {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.ListPosts()
	}
	return c.filter(func(d Document) bool {
		return strings.Contains(strings.ToLower(d.Meta.Title), q) ||
			strings.Contains(strings.ToLower(d.Meta.Description), q) ||
			strings.Contains(strings.ToLower(d.Body), q)
	})
}

// Recent returns the n newest documents.
func (c *Catalog) Recent(n int) []Document {
	if n <= 0 {
		return []Document{}
	}
	if n > len(c.docs) {
		n = len(c.docs)
	}
	return slices.Clone(c.docs[:n])
}

// Tags returns every tag in use as written in front-matter, sorted without
// regard to case.
func (c *Catalog) Tags() []string {
	return slices.Clone(c.tags)
}

func (c *Catalog) filter(keep func(Document) bool) []Document {
	out := []Document{}
	for _, d := range c.docs {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}
