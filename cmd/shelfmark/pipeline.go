package main

import (
	"fmt"
	"time"

	"github.com/leoventa/shelfmark/internal/config"
	"github.com/leoventa/shelfmark/internal/decision"
	"github.com/leoventa/shelfmark/internal/imdb"
	"github.com/leoventa/shelfmark/internal/journal"
	"github.com/leoventa/shelfmark/internal/logging"
	"github.com/leoventa/shelfmark/internal/metadata"
	"github.com/leoventa/shelfmark/internal/naming"
	"github.com/leoventa/shelfmark/internal/paths"
	"github.com/leoventa/shelfmark/internal/renamer"
	"github.com/leoventa/shelfmark/internal/ui"
)

// pipeline holds everything one run needs, built from config.
type pipeline struct {
	cfg  *config.Config
	log  *logging.Logger
	jrnl *journal.Journal // nil when journaling is disabled
	orch *renamer.Orchestrator
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadPath(cfgFile)
	}
	return config.Load()
}

// buildPipeline wires config -> logger -> journal -> lookup client ->
// matcher -> console decider -> orchestrator.
func buildPipeline(cfg *config.Config, opts renamer.Options) (*pipeline, error) {
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	if verbose {
		log.SetLevel(logging.LevelDebug)
	}
	log.Info("shelfmark", "session started",
		logging.F("user", paths.ActualUser()),
		logging.F("log", log.FilePath()))

	var jrnl *journal.Journal
	if cfg.Journal.Enabled && !opts.DryRun {
		jrnl, err = openJournal(cfg)
		if err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to open journal: %w", err)
		}
	}

	client := imdb.NewClient(imdb.Config{
		BaseURL: cfg.Lookup.BaseURL,
		Timeout: time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second,
	})
	matcher := metadata.NewMatcher(client, log)
	sanitizer := naming.NewSanitizer(cfg.SanitizeRules())

	return &pipeline{
		cfg:  cfg,
		log:  log,
		jrnl: jrnl,
		orch: renamer.New(matcher, decision.NewConsole(), sanitizer, log, jrnl, opts),
	}, nil
}

func (p *pipeline) close() {
	if p.jrnl != nil {
		p.jrnl.Close()
	}
	p.log.Close()
}

// printReport renders a run report to the terminal.
func printReport(report *renamer.Report) {
	ui.Section("Run Report")

	if report.Stopped {
		ui.Warnf("Run stopped early by operator")
	}
	ui.Infof("Processed: %d", report.Stats.Processed)
	ui.Successf("Renamed:   %d", report.Stats.Renamed)
	ui.Infof("Skipped:   %d", report.Stats.Skipped)
	if report.Stats.Errors > 0 {
		ui.Errorf("Errors:    %d", report.Stats.Errors)
	}
	if report.BytesFreed > 0 {
		ui.Infof("Freed:     %s", ui.FormatBytes(report.BytesFreed))
	}

	if len(report.Warnings) > 0 {
		ui.Section("Warnings")
		for _, w := range report.Warnings {
			ui.Warnf("%s", w)
		}
	}
	if len(report.Skipped) > 0 {
		ui.Section("Skipped")
		for _, s := range report.Skipped {
			ui.Dimf("%s", s)
		}
	}
}
