package main

import (
	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := folio.SetupLogger(c.cfg.LogLevel, c.cfg.LogFormat)
			app := folio.New(c.cfg, folio.WithLogger(logger))
			defer app.Close()
			return app.Start()
		},
	}
}
