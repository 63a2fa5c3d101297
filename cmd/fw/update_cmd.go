package main

import (
	"github.com/spf13/cobra"

	"github.com/mriehl/fw/internal/config"
	"github.com/mriehl/fw/internal/log"
)

func newUpdateCmd() *cobra.Command {
	var (
		git          string
		afterWorkon  string
		afterClone   string
		overridePath string
	)

	cmd := &cobra.Command{
		Use:     "update <name>",
		Short:   "Update a project entry",
		GroupID: GroupCatalog,
		Args:    cobra.ExactArgs(1),
		Long: `Update fields of an existing project. Only the flags you pass are
replaced; everything else keeps its value. The tag assignment is always
cleared, since an explicit update supersedes tag-derived configuration.`,
		Example: `  fw update fw --git git@github.com:mriehl/fw.git
  fw update fw --after-clone "make install" --override-path ~/oss/fw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, cfg, err := loadCatalog(ctx)
			if err != nil {
				return err
			}

			// Only flags the user changed replace fields; a flag set to
			// the empty string clears the field.
			var opts config.UpdateOptions
			if cmd.Flags().Changed("git") {
				opts.Git = &git
			}
			if cmd.Flags().Changed("after-workon") {
				opts.AfterWorkon = &afterWorkon
			}
			if cmd.Flags().Changed("after-clone") {
				opts.AfterClone = &afterClone
			}
			if cmd.Flags().Changed("override-path") {
				opts.OverridePath = &overridePath
			}

			if err := cfg.UpdateEntry(l, args[0], opts); err != nil {
				return err
			}
			return config.Save(env, l, cfg)
		},
	}

	cmd.Flags().StringVar(&git, "git", "", "Repository URL")
	cmd.Flags().StringVar(&afterWorkon, "after-workon", "", "Command to chain after entering the project")
	cmd.Flags().StringVar(&afterClone, "after-clone", "", "Command to chain after cloning the project")
	cmd.Flags().StringVar(&overridePath, "override-path", "", "Checkout path overriding workspace resolution")

	return cmd
}
