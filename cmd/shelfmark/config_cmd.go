package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leoventa/shelfmark/internal/config"
	"github.com/leoventa/shelfmark/internal/paths"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage Shelfmark configuration",
		Long: `Commands for managing Shelfmark configuration.

The config file is stored at: ~/.config/shelfmark/config.toml

Examples:
  shelfmark config init    # Create default config file
  shelfmark config show    # Display current configuration
  shelfmark config path    # Show config file path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Exists() && !force {
				path, _ := paths.ConfigPath()
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := paths.ConfigPath()
			fmt.Printf("✓ Created config file: %s\n", path)
			fmt.Println("\nEdit the file to adjust lookup, batching and journal settings.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Print(cfg.ToTOML())
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := paths.ConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			if !config.Exists() {
				fmt.Println("(not created yet - run 'shelfmark config init')")
			}
			return nil
		},
	}
}
