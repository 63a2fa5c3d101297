package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/mriehl/fw/internal/log"
	"github.com/mriehl/fw/internal/output"
)

func newPathCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "path <name>",
		Short:   "Print a project's resolved checkout path",
		GroupID: GroupWorkflow,
		Args:    cobra.ExactArgs(1),
		Example: `  cd $(fw path fw)
  fw path fw --copy`,
		ValidArgsFunction: completeProjectNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, cfg, err := loadCatalog(ctx)
			if err != nil {
				return err
			}

			project, ok := cfg.Project(args[0])
			if !ok {
				return fmt.Errorf("project %s not found", args[0])
			}

			path, err := cfg.ActualPathToProject(env, l, project)
			if err != nil {
				return err
			}

			output.FromContext(ctx).Println(path)

			if copyToClipboard {
				if err := clipboard.WriteAll(path); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				l.WithFields(log.Fields{"path": path}).Debug("copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Also copy the path to the clipboard")

	return cmd
}
