package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mriehl/fw/internal/log"
	"github.com/mriehl/fw/internal/output"
	"github.com/mriehl/fw/internal/ui/prompt"
)

func newGenWorkonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-workon [name]",
		Short:   "Print the shell snippet that enters a project",
		GroupID: GroupWorkflow,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print a shell snippet that changes into the project's checkout and
chains its resolved post-workon command. Meant for eval:

  workon() { eval $(fw gen-workon "$@"); }

Without a name, an interactive picker is shown (on stderr, so stdout stays
clean for eval).`,
		Example: `  fw gen-workon fw     # prints: cd '/home/me/workspace/fw' && make env
  eval $(fw gen-workon fw)`,
		ValidArgsFunction: completeProjectNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, cfg, err := loadCatalog(ctx)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			} else {
				result, err := prompt.Select("Workon which project?", cfg.ProjectNames())
				if err != nil {
					return err
				}
				if result.Cancelled {
					l.Debug("selection cancelled")
					return nil
				}
				name = result.Value
			}

			project, ok := cfg.Project(name)
			if !ok {
				return fmt.Errorf("project %s not found", name)
			}

			path, err := cfg.ActualPathToProject(env, l, project)
			if err != nil {
				return err
			}

			output.FromContext(ctx).Println(workonScript(path, cfg.ResolveAfterWorkon(l, project)))
			return nil
		},
	}

	return cmd
}
