package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mriehl/fw/internal/config"
	"github.com/mriehl/fw/internal/log"
	"github.com/mriehl/fw/internal/output"
)

var (
	// Global flags
	configPath string
	verbose    bool
	quiet      bool
)

// Command group IDs for organizing help output
const (
	GroupCatalog  = "catalog"
	GroupWorkflow = "workflow"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fw",
	Short: "Project workspace manager",
	Long: `fw manages a catalog of source-controlled projects: where each one is
checked out and which shell commands run after cloning or entering it.

fw never executes commands itself. Commands like gen-workon print shell
snippets meant to be eval'd:

  workon() { eval $(fw gen-workon "$@"); }`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Diagnostics on stderr, primary data on stdout
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// configOverride returns the explicit config file location, if any.
// The --config flag wins over the FW_CONFIG environment variable.
func configOverride() string {
	if configPath != "" {
		return configPath
	}
	return os.Getenv("FW_CONFIG")
}

// loadCatalog resolves the environment and loads the sanity-checked catalog.
func loadCatalog(ctx context.Context) (config.Env, *config.Config, error) {
	env := config.DetectEnv(configOverride())
	cfg, err := config.Load(env, log.FromContext(ctx))
	return env, cfg, err
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fw: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/"+config.ConfigFileName+", or $FW_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show trace output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output below errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCatalog, Title: "Catalog Commands:"},
		&cobra.Group{ID: GroupWorkflow, Title: "Workflow Commands:"},
	)

	// Catalog commands
	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newTagCmd())

	// Workflow commands
	rootCmd.AddCommand(newLsCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newGenWorkonCmd())
}
