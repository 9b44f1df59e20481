package main

import (
	"github.com/spf13/cobra"

	"github.com/leoventa/shelfmark/internal/renamer"
)

func newVerifyCmd() *cobra.Command {
	var mediaType string

	cmd := &cobra.Command{
		Use:   "verify <library-root>",
		Short: "Check tagged folders against current provider data",
		Long: `Re-examine already-tagged folders under the library root: each
embedded identifier is fetched from the lookup service and compared
against the folder's title and year. Mismatches are offered for
correction; untagged folders are left for "shelfmark rename".

Examples:
  shelfmark verify /media/Movies
  shelfmark verify /media/TV --type tv`,
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

			p, err := buildPipeline(cfg, renamer.Options{
				Kind:   kind,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}
			defer p.close()

			report, err := p.orch.Verify(args[0])
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "t", "movie", "media kind: movie or tv")

	return cmd
}
