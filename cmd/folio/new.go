package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/scaffold"
)

// now is replaced in tests.
var now = time.Now

func newNewCmd(c *cli) *cobra.Command {
	var (
		description string
		tags        string
		cover       string
		draft       bool
		ext         string
	)
	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a post file from the scaffold template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := createPost(c.cfg.ContentDir, ext, scaffold.Post{
				Title:       strings.TrimSpace(args[0]),
				Date:        now(),
				Description: strings.TrimSpace(description),
				Tags:        folio.SplitTags(tags),
				Cover:       cover,
				Draft:       draft,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Post description")
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "Comma-separated tags")
	cmd.Flags().StringVar(&cover, "cover", "", "Cover image path")
	cmd.Flags().BoolVar(&draft, "draft", false, "Mark the post as a draft")
	cmd.Flags().StringVar(&ext, "ext", "mdx", "File extension: md or mdx")
	return cmd
}

// createPost writes a new post into dir and returns its path. It refuses to
// create a file whose slug is already taken by any extension.
func createPost(dir, ext string, p scaffold.Post) (string, error) {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext != "md" && ext != "mdx" {
		return "", fmt.Errorf("unsupported extension %q", ext)
	}
	if p.Title == "" {
		return "", errors.New("title is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return "", errors.New("description is required (--description)")
	}
	slug := content.Slugify(p.Title)
	if slug == "" {
		return "", fmt.Errorf("title %q has no characters usable in a slug", p.Title)
	}

	names, err := content.NewDirStore(dir).List()
	if err != nil && !errors.Is(err, content.ErrMissingStore) {
		return "", err
	}
	for _, name := range names {
		if content.SlugFromFilename(name) == slug {
			return "", fmt.Errorf("slug %q is already used by %s", slug, filepath.Join(dir, name))
		}
	}

	var buf bytes.Buffer
	if err := scaffold.RenderPost(&buf, p); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, slug+"."+ext)
	if err := atomic.WriteFile(path, &buf); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
