package content

import (
	"regexp"
	"strings"
)

// WordsPerMinute is the reading speed used by ReadingTime.
const WordsPerMinute = 200

// ReadingTime estimates minutes to read body: ceil(words / WordsPerMinute),
// where words are whitespace-separated fields. An empty or whitespace-only
// body reads in 0 minutes; any other body takes at least 1.
func ReadingTime(body string) int {
	words := len(strings.Fields(body))
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

var (
	reHeading   = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reHeadingID = regexp.MustCompile(`[^a-z0-9 -]`)
	reSpaces    = regexp.MustCompile(`\s+`)
	reDashes    = regexp.MustCompile(`-+`)
)

// TableOfContents lists the ATX headings of a markdown body in order.
// Lines inside fenced code blocks are ignored.
func TableOfContents(body string) []Heading {
	var toc []Heading
	inCode := false
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			continue
		}
		m := reHeading.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[2])
		toc = append(toc, Heading{
			ID:    HeadingID(title),
			Title: title,
			Level: len(m[1]),
		})
	}
	return toc
}

// HeadingID converts a heading title into an anchor id.
func HeadingID(title string) string {
	id := strings.ToLower(title)
	id = reHeadingID.ReplaceAllString(id, "")
	id = reSpaces.ReplaceAllString(id, "-")
	id = reDashes.ReplaceAllString(id, "-")
	return strings.TrimSpace(id)
}
