package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mriehl/fw/internal/config"
	"github.com/mriehl/fw/internal/log"
	"github.com/mriehl/fw/internal/output"
)

func newSetupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "setup <workspace-dir>",
		Short:   "Create an initial catalog",
		GroupID: GroupCatalog,
		Args:    cobra.ExactArgs(1),
		Long: `Create an initial catalog with the given workspace directory as the root
new project checkouts resolve under.`,
		Example: `  fw setup ~/workspace
  fw setup /data/projects --config /tmp/fw.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			env := config.DetectEnv(configOverride())

			if !force {
				if _, err := os.Stat(env.ConfigPath); err == nil {
					return fmt.Errorf("config already exists at %s (use --force to overwrite)", env.ConfigPath)
				}
			}

			workspace, err := env.Expand(args[0])
			if err != nil {
				return err
			}
			if !filepath.IsAbs(workspace) {
				if workspace, err = filepath.Abs(workspace); err != nil {
					return fmt.Errorf("resolve workspace dir: %w", err)
				}
			}

			if err := config.Save(env, l, config.Setup(workspace)); err != nil {
				return err
			}
			out.Printf("Created %s with workspace %s\n", env.ConfigPath, workspace)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing catalog")

	return cmd
}
