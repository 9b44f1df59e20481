package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leoventa/shelfmark/internal/config"
	"github.com/leoventa/shelfmark/internal/journal"
	"github.com/leoventa/shelfmark/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent journaled operations",
		Long: `List the most recent renames, skips and deletions recorded in the
operations journal, newest first.

Examples:
  shelfmark history
  shelfmark history --limit 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Journal.Enabled {
				return fmt.Errorf("journal is disabled in config")
			}

			jrnl, err := openJournal(cfg)
			if err != nil {
				return err
			}
			defer jrnl.Close()

			entries, err := jrnl.Recent(limit)
			if err != nil {
				return fmt.Errorf("failed to read journal: %w", err)
			}
			if len(entries) == 0 {
				ui.Infof("No operations recorded yet")
				return nil
			}

			ui.Section("Operation History")
			for _, e := range entries {
				ts := e.RecordedAt.Format("2006-01-02 15:04")
				switch e.Op {
				case journal.OpRename, journal.OpRenameFile:
					ui.Successf("%s  %-11s %s -> %s", ts, e.Op, e.SourcePath, e.TargetPath)
				case journal.OpDelete:
					ui.Warnf("%s  %-11s %s (%s)", ts, e.Op, e.SourcePath, ui.FormatBytes(e.BytesFreed))
				case journal.OpError:
					ui.Errorf("%s  %-11s %s: %s", ts, e.Op, e.SourcePath, e.Detail)
				default:
					ui.Dimf("%s  %-11s %s %s", ts, e.Op, e.SourcePath, e.Detail)
				}
			}

			counts, bytesFreed, err := jrnl.Stats()
			if err != nil {
				return nil
			}
			ui.Section("Totals")
			for op, n := range counts {
				ui.Infof("%-11s %d", op, n)
			}
			if bytesFreed > 0 {
				ui.Infof("freed       %s", ui.FormatBytes(bytesFreed))
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "number of entries to show")

	return cmd
}

func openJournal(cfg *config.Config) (*journal.Journal, error) {
	if cfg.Journal.Path != "" {
		return journal.OpenPath(cfg.Journal.Path)
	}
	return journal.Open()
}
