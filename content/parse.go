package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"
)

// frontMatter mirrors the header block of a content file. YAML (---),
// TOML (+++) and JSON (;;;) headers are accepted.
type frontMatter struct {
	Title       string   `yaml:"title" toml:"title" json:"title"`
	Date        string   `yaml:"date" toml:"date" json:"date"`
	Description string   `yaml:"description" toml:"description" json:"description"`
	Tags        []string `yaml:"tags" toml:"tags" json:"tags"`
	Cover       string   `yaml:"cover" toml:"cover" json:"cover"`
	Draft       bool     `yaml:"draft" toml:"draft" json:"draft"`
	Author      string   `yaml:"author" toml:"author" json:"author"`
}

// ParseDocument parses a content file into a Document. The slug is derived
// from name. Errors wrap ErrNoFrontMatter, ErrMissingField or ErrInvalidDate,
// or ErrEmptySlug, or carry the header decoder's error.
func ParseDocument(name string, data []byte) (Document, error) {
	slug := SlugFromFilename(name)
	if slug == "" {
		return Document{}, ErrEmptySlug
	}

	var fm frontMatter
	body, err := frontmatter.MustParse(bytes.NewReader(data), &fm)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return Document{}, ErrNoFrontMatter
		}
		return Document{}, fmt.Errorf("decode front-matter: %w", err)
	}

	meta, err := fm.metadata()
	if err != nil {
		return Document{}, err
	}

	text := string(body)
	return Document{
		Slug:        slug,
		Path:        name,
		Meta:        meta,
		Body:        text,
		ReadingTime: ReadingTime(text),
	}, nil
}

func (fm frontMatter) metadata() (Metadata, error) {
	title := strings.TrimSpace(fm.Title)
	if title == "" {
		return Metadata{}, fmt.Errorf("%w: title", ErrMissingField)
	}
	rawDate := strings.TrimSpace(fm.Date)
	if rawDate == "" {
		return Metadata{}, fmt.Errorf("%w: date", ErrMissingField)
	}
	description := strings.TrimSpace(fm.Description)
	if description == "" {
		return Metadata{}, fmt.Errorf("%w: description", ErrMissingField)
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{
		Title:       title,
		Date:        date,
		Description: description,
		Tags:        cleanTags(fm.Tags),
		Cover:       strings.TrimSpace(fm.Cover),
		Draft:       fm.Draft,
		Author:      strings.TrimSpace(fm.Author),
	}, nil
}

// ParseDate parses a front-matter date and truncates it to the calendar day
// as written, in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := dateparse.ParseStrict(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// cleanTags trims tags, drops empties and removes case-insensitive
// duplicates while keeping the author's order and spelling.
func cleanTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		key := normalizeTag(t)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
