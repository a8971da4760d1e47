package content

import "time"

// DateLayout is the wire format for document dates.
const DateLayout = "2006-01-02"

// Metadata is the parsed front-matter of a document.
type Metadata struct {
	Title       string
	Date        time.Time
	Description string
	Tags        []string
	Cover       string
	Draft       bool
	Author      string
}

// Document is a single post: metadata, raw body and derived fields.
type Document struct {
	Slug        string
	Path        string // file name inside the store
	Meta        Metadata
	Body        string
	ReadingTime int // minutes
}

// HasTag reports whether the document carries tag, ignoring case and
// surrounding whitespace.
func (d Document) HasTag(tag string) bool {
	want := normalizeTag(tag)
	if want == "" {
		return false
	}
	for _, t := range d.Meta.Tags {
		if normalizeTag(t) == want {
			return true
		}
	}
	return false
}

// Heading is one entry of a document's table of contents.
type Heading struct {
	ID    string
	Title string
	Level int
}
