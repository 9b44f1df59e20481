package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leoventa/shelfmark/internal/ui"
)

var (
	version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"
	cfgFile string
	verbose bool
	dryRun  bool
	noColor bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shelfmark",
		Short: "Rename media-library folders into a tagged, tool-friendly convention",
		Long: `Shelfmark renames media-library folders (and optionally the files
inside them) into a canonical naming convention that embeds a unique
external identifier and, for files, a quality tag.

  "Inception (2010)"  ->  "Inception (2010) {tt1375666}"
  "Inception.2010.Bluray.1080p.mkv"  ->  "Inception (2010) - Bluray-1080p.mkv"

Folders are matched against a metadata lookup service by title and
year; every ambiguous step asks before touching anything.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				ui.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/shelfmark/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "preview changes without touching the filesystem")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newRenameCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shelfmark %s\n", version)
		},
	}
}
