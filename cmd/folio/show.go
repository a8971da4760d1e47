package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
)

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show a post's metadata, neighbours and table of contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			post, ok := cat.GetPost(args[0])
			if !ok {
				return fmt.Errorf("post %q not found", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(post.Meta.Title))
			fmt.Fprintf(out, "slug:         %s\n", post.Slug)
			fmt.Fprintf(out, "file:         %s\n", post.Path)
			fmt.Fprintf(out, "date:         %s\n", post.Meta.Date.Format(content.DateLayout))
			fmt.Fprintf(out, "description:  %s\n", post.Meta.Description)
			if len(post.Meta.Tags) > 0 {
				fmt.Fprintf(out, "tags:         %s\n", tagStyle.Render(folio.JoinTags(post.Meta.Tags)))
			}
			if post.Meta.Author != "" {
				fmt.Fprintf(out, "author:       %s\n", post.Meta.Author)
			}
			if post.Meta.Cover != "" {
				fmt.Fprintf(out, "cover:        %s\n", post.Meta.Cover)
			}
			if post.Meta.Draft {
				fmt.Fprintf(out, "draft:        %s\n", warnStyle.Render("yes"))
			}
			fmt.Fprintf(out, "reading time: %d min\n", post.ReadingTime)
			fmt.Fprintf(out, "url:          %s\n", folio.BuildURL(c.cfg.URL, "blog", post.Slug))

			prev, next := cat.Adjacent(post.Slug)
			fmt.Fprintf(out, "previous:     %s\n", neighbour(prev))
			fmt.Fprintf(out, "next:         %s\n", neighbour(next))

			toc := content.TableOfContents(post.Body)
			if len(toc) > 0 {
				fmt.Fprintln(out, "\ncontents:")
				for _, h := range toc {
					fmt.Fprintf(out, "%s- %s (#%s)\n", strings.Repeat("  ", h.Level), h.Title, h.ID)
				}
			}
			return nil
		},
	}
}

func neighbour(d *content.Document) string {
	if d == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", d.Slug, d.Meta.Title)
}
