package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTagsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag with its post count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tag := range cat.Tags() {
				fmt.Fprintf(out, "%s %d\n", tagStyle.Render(tag), len(cat.PostsByTag(tag)))
			}
			return nil
		},
	}
}
