package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
)

func newListCmd(c *cli) *cobra.Command {
	var (
		tag    string
		search string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			posts := cat.Search(search)
			if tag != "" {
				tagged := posts[:0]
				for _, p := range posts {
					if p.HasTag(tag) {
						tagged = append(tagged, p)
					}
				}
				posts = tagged
			}
			if limit > 0 && limit < len(posts) {
				posts = posts[:limit]
			}

			out := cmd.OutOrStdout()
			if len(posts) == 0 {
				fmt.Fprintln(out, "no posts")
				return nil
			}
			for _, p := range posts {
				printSummary(cmd, p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only posts with this tag")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only posts whose title, description or body contain this text")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of posts (0 for all)")
	return cmd
}

func printSummary(cmd *cobra.Command, p content.Document) {
	line := fmt.Sprintf("%s  %-32s %s (%d min)",
		dateStyle.Render(p.Meta.Date.Format(content.DateLayout)),
		p.Slug,
		titleStyle.Render(p.Meta.Title),
		p.ReadingTime,
	)
	if p.Meta.Draft {
		line += " " + warnStyle.Render("[draft]")
	}
	if len(p.Meta.Tags) > 0 {
		line += " " + tagStyle.Render(folio.JoinTags(p.Meta.Tags))
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
