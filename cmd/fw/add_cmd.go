package main

import (
	"github.com/spf13/cobra"

	"github.com/mriehl/fw/internal/config"
	"github.com/mriehl/fw/internal/log"
	"github.com/mriehl/fw/internal/output"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add <url> [name]",
		Short:   "Add a project to the catalog",
		GroupID: GroupCatalog,
		Args:    cobra.RangeArgs(1, 2),
		Long: `Add a project to the catalog. Without a name, the final path segment of
the URL is used, with a single trailing ".git" stripped.

The new project inherits default_after_clone, default_after_workon and
default_tags from settings.`,
		Example: `  fw add git@github.com:mriehl/fw.git          # name "fw"
  fw add https://github.com/mriehl/fw my-fw    # explicit name`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, cfg, err := loadCatalog(ctx)
			if err != nil {
				return err
			}

			url := args[0]
			name := ""
			if len(args) > 1 {
				name = args[1]
			}

			if err := cfg.AddEntry(l, name, url); err != nil {
				return err
			}
			if err := config.Save(env, l, cfg); err != nil {
				return err
			}

			output.FromContext(ctx).Printf("Added %s\n", url)
			return nil
		},
	}

	return cmd
}
