package main

import (
	"github.com/spf13/cobra"

	"github.com/mriehl/fw/internal/output"
)

func newLsCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:     "ls",
		Short:   "List project names",
		GroupID: GroupWorkflow,
		Args:    cobra.NoArgs,
		Long: `List project names, one per line, in ascending order. Intended for
shell completion and selection pipelines.`,
		Example: `  fw ls
  fw ls -s fw              # fuzzy filter, best match first
  fw gen-workon $(fw ls -s api | head -1)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			_, cfg, err := loadCatalog(ctx)
			if err != nil {
				return err
			}

			for _, name := range fuzzyFilter(query, cfg.ProjectNames()) {
				out.Println(name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "s", "", "Fuzzy filter for project names")

	return cmd
}
