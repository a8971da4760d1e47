package main

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/content"
)

// version is set at build time via ldflags.
var version = "dev"

// cli carries the global flags and the configuration resolved from them.
type cli struct {
	configPath string
	contentDir string
	mode       string

	cfg    folio.SiteConfig
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "folio",
		Short:        "folio - a content catalog and JSON API for a file-based blog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&c.contentDir, "content", "", "Content directory (overrides config)")
	root.PersistentFlags().StringVar(&c.mode, "mode", "", "production or development (overrides config)")

	root.AddCommand(
		newServeCmd(c),
		newListCmd(c),
		newShowCmd(c),
		newTagsCmd(c),
		newCheckCmd(c),
		newNewCmd(c),
		newVersionCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := folio.LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	if c.contentDir != "" {
		cfg.ContentDir = c.contentDir
	}
	if c.mode != "" {
		mode, err := content.ParseMode(c.mode)
		if err != nil {
			return err
		}
		cfg.Mode = mode
	}
	c.cfg = cfg
	c.logger = folio.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	return nil
}

// loadCatalog builds a catalog from the configured content directory.
func (c *cli) loadCatalog() (*content.Catalog, error) {
	cat, err := content.Load(content.NewDirStore(c.cfg.ContentDir), c.cfg.Mode, content.WithLoadLogger(c.logger))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.cfg.ContentDir, err)
	}
	return cat, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the folio version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
		},
	}
}
