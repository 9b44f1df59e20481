package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leoventa/shelfmark/internal/metadata"
	"github.com/leoventa/shelfmark/internal/renamer"
)

func newRenameCmd() *cobra.Command {
	var (
		mediaType   string
		batchSize   int
		renameFiles bool
	)

	cmd := &cobra.Command{
		Use:   "rename <library-root>",
		Short: "Rename untagged folders under a library root",
		Long: `Rename every direct subdirectory of the library root that matches
"<Title> (<YYYY>)" into the tagged convention "<Title> (<YYYY>) {tt<id>}".

Already-tagged folders are skipped; use "shelfmark verify" to re-check
those. With --rename-files, media and subtitle files inside each renamed
folder are renamed too, and leftover files are offered for deletion.

Examples:
  shelfmark rename /media/Movies
  shelfmark rename /media/TV --type tv --batch-size 10
  shelfmark rename /media/Movies --rename-files --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(mediaType)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// config supplies defaults for flags the operator left alone
			if !cmd.Flags().Changed("batch-size") {
				batchSize = cfg.Rename.BatchSize
			}
			if !cmd.Flags().Changed("rename-files") {
				renameFiles = cfg.Rename.RenameFiles
			}

			p, err := buildPipeline(cfg, renamer.Options{
				Kind:        kind,
				BatchSize:   batchSize,
				RenameFiles: renameFiles,
				DryRun:      dryRun,
			})
			if err != nil {
				return err
			}
			defer p.close()

			report, err := p.orch.Run(args[0])
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "t", "movie", "media kind: movie or tv")
	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", 0, "items per batch before asking to continue (0 = all)")
	cmd.Flags().BoolVarP(&renameFiles, "rename-files", "f", false, "also rename files inside each folder")

	return cmd
}

func parseKind(s string) (metadata.Kind, error) {
	switch s {
	case "movie":
		return metadata.KindMovie, nil
	case "tv":
		return metadata.KindTV, nil
	default:
		return "", fmt.Errorf("unknown media type %q (use movie or tv)", s)
	}
}
