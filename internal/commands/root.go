package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fakturo-dev/fakturo/internal/buildinfo"
	"github.com/fakturo-dev/fakturo/internal/logger"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fakturo",
		Short:   "No-nonsense invoice generation",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return logger.Setup()
		},
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newExampleCommand())
	rootCmd.AddCommand(newListCommand())

	return rootCmd
}
