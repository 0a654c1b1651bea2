package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tidydrive/namerule/cmd"
	"github.com/tidydrive/namerule/cmd/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "namerule",
		Short: "Build, store, and preview file naming conventions",
		Long: `namerule manages the naming conventions behind the file manager:
ordered patterns of literal text and variables that render into file and
folder names. Rules are stored locally and can be exported for other
installations to import.`,
		SilenceUsage: true,
	}

	config.AddGlobalFlags(rootCmd)
	cobra.OnInitialize(config.InitConfig)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewNewCmd())
	rootCmd.AddCommand(cmd.NewListCmd())
	rootCmd.AddCommand(cmd.NewShowCmd())
	rootCmd.AddCommand(cmd.NewPreviewCmd())
	rootCmd.AddCommand(cmd.NewVarsCmd())
	rootCmd.AddCommand(cmd.NewExportCmd())
	rootCmd.AddCommand(cmd.NewImportCmd())
	rootCmd.AddCommand(cmd.NewRmCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
