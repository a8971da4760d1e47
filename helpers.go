package folio

import (
	"net/url"
	"path"
	"strings"

	"github.com/eringen/folio/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterEmpty trims each value and drops the empty ones.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitTags splits a comma-separated tag list such as "go, web,,cli".
func SplitTags(s string) []string {
	return FilterEmpty(strings.Split(s, ","))
}

// FilterRelatedPosts finds posts that share at least one tag with current,
// keeping the order of posts.
func FilterRelatedPosts(current content.Document, posts []content.Document) []content.Document {
	var related []content.Document
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Meta.Tags {
			if current.HasTag(t) {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// JoinTags joins tags with ", ".
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
