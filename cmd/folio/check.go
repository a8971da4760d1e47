package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/content"
)

func newCheckCmd(c *cli) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the content directory",
		Long: "Load every post and report malformed files. Duplicate slugs always fail;\n" +
			"with --strict any malformed file fails too.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cat, err := c.loadCatalog()
			if err != nil {
				var dup *content.DuplicateSlugError
				if errors.As(err, &dup) {
					fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("duplicate slug %q:", dup.Slug)))
					for _, p := range dup.Paths {
						fmt.Fprintf(out, "  %s\n", p)
					}
				}
				return err
			}

			warnings := cat.Warnings()
			for _, w := range warnings {
				fmt.Fprintf(out, "%s %s: %v\n", warnStyle.Render("warning"), w.Path, w.Err)
			}
			fmt.Fprintf(out, "%d posts (%s mode), %d warnings\n", cat.Len(), cat.Mode(), len(warnings))

			if strict && len(warnings) > 0 {
				return fmt.Errorf("%d malformed files", len(warnings))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any file is malformed")
	return cmd
}
