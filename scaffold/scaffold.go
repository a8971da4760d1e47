// Package scaffold provides the embedded template used by `folio new` to
// start a post.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"strconv"
	"text/template"
	"time"
)

// Templates contains all scaffold template files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// PostTemplate is the path of the new-post template inside Templates.
const PostTemplate = "templates/post.mdx.tmpl"

// Post holds the template variables for a new post.
type Post struct {
	Title       string
	Date        time.Time
	Description string
	Tags        []string
	Cover       string
	Draft       bool
}

var funcs = template.FuncMap{
	// quote renders s as a double-quoted YAML scalar.
	"quote": strconv.Quote,
	"date": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
}

// RenderPost executes the new-post template for p into w.
func RenderPost(w io.Writer, p Post) error {
	tmpl, err := template.New("post.mdx.tmpl").Funcs(funcs).ParseFS(Templates, PostTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", PostTemplate, err)
	}
	if err := tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("execute template %s: %w", PostTemplate, err)
	}
	return nil
}
