package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mriehl/fw/internal/log"
	"github.com/mriehl/fw/internal/output"
	"github.com/mriehl/fw/internal/ui/styles"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect <name>",
		Short:   "Show a project with its resolved configuration",
		GroupID: GroupWorkflow,
		Args:    cobra.ExactArgs(1),
		Long: `Show a project entry together with the values the resolution engine
derives for it: checkout path, post-clone command and post-workon command.`,
		ValidArgsFunction: completeProjectNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

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

			on := styles.Enabled(os.Stdout)
			field := func(label, value string) {
				out.Printf("  %s %s\n", styles.Render(on, styles.Label, label+":"), value)
			}

			out.Println(styles.Render(on, styles.Header, project.Name))
			field("git", project.Git)
			field("path", path)

			if clone, ok := cfg.ResolveAfterClone(l, project); ok {
				field("after clone", clone)
			} else {
				field("after clone", styles.Render(on, styles.MutedStyle, "(none)"))
			}

			workon := strings.TrimPrefix(cfg.ResolveAfterWorkon(l, project), " && ")
			if workon == "" {
				workon = styles.Render(on, styles.MutedStyle, "(none)")
			}
			field("after workon", workon)

			if len(project.Tags) > 0 {
				field("tags", styles.Render(on, styles.MutedStyle, strings.Join(project.Tags, ", ")))
			}
			if project.OverridePath != "" {
				field("override path", project.OverridePath)
			}

			return nil
		},
	}

	return cmd
}
