package main

import (
	"github.com/spf13/cobra"

	"github.com/mriehl/fw/internal/config"
	"github.com/mriehl/fw/internal/log"
	"github.com/mriehl/fw/internal/output"
)

func newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tag",
		Short:   "Manage tag references on projects",
		GroupID: GroupCatalog,
	}

	cmd.AddCommand(newTagLsCmd())
	cmd.AddCommand(newTagAddCmd())
	cmd.AddCommand(newTagRmCmd())

	return cmd
}

func newTagLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List defined tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			_, cfg, err := loadCatalog(ctx)
			if err != nil {
				return err
			}

			for _, name := range cfg.TagNames() {
				out.Println(name)
			}
			return nil
		},
	}
}

func newTagAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <tag> <project>",
		Short: "Attach a tag to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, cfg, err := loadCatalog(ctx)
			if err != nil {
				return err
			}

			if err := cfg.TagProject(l, args[1], args[0]); err != nil {
				return err
			}
			return config.Save(env, l, cfg)
		},
	}
}

func newTagRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <tag> <project>",
		Short: "Detach a tag from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			env, cfg, err := loadCatalog(ctx)
			if err != nil {
				return err
			}

			if err := cfg.UntagProject(l, args[1], args[0]); err != nil {
				return err
			}
			return config.Save(env, l, cfg)
		},
	}
}
