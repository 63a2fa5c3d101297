package main

import (
	"github.com/spf13/cobra"

	"github.com/mriehl/fw/internal/config"
	"github.com/mriehl/fw/internal/log"
	"github.com/mriehl/fw/internal/output"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <name>",
		Short:   "Remove a project from the catalog",
		Aliases: []string{"rm"},
		GroupID: GroupCatalog,
		Args:    cobra.ExactArgs(1),
		Long: `Remove a project entry from the catalog. The checkout on disk is left
untouched.`,
		ValidArgsFunction: completeProjectNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, cfg, err := loadCatalog(ctx)
			if err != nil {
				return err
			}

			if err := cfg.RemoveEntry(l, args[0]); err != nil {
				return err
			}
			if err := config.Save(env, l, cfg); err != nil {
				return err
			}

			output.FromContext(ctx).Printf("Removed %s\n", args[0])
			return nil
		},
	}

	return cmd
}

// completeProjectNames provides completion for project name arguments.
func completeProjectNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	env := config.DetectEnv(configOverride())
	cfg, err := config.Load(env, log.Discard())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return cfg.ProjectNames(), cobra.ShellCompDirectiveNoFileComp
}
