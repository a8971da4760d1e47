package content

import (
	"path"
	"strings"
	"unicode"
)

// Slugify converts s to a slug: lower-case letters and digits of any script
// separated by single dashes. "리액트 훅" becomes "리액트-훅".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// SlugFromFilename derives a document slug from its file name, so that
// "Hello World.md", "hello-world.mdx" and "hello-world.md" all share one slug.
// A name with no letters or digits yields "".
func SlugFromFilename(name string) string {
	base := path.Base(name)
	return Slugify(strings.TrimSuffix(base, path.Ext(base)))
}

// isDocumentFile reports whether name has a content extension.
func isDocumentFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".mdx":
		return true
	}
	return false
}
