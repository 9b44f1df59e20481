// Package renamer drives the batch rename run: it walks the direct
// subdirectories of a library root, resolves each folder to an external
// identifier, renames folders (and optionally the files inside them)
// into the canonical convention, and accumulates a run report.
package renamer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leoventa/shelfmark/internal/decision"
	"github.com/leoventa/shelfmark/internal/journal"
	"github.com/leoventa/shelfmark/internal/logging"
	"github.com/leoventa/shelfmark/internal/metadata"
	"github.com/leoventa/shelfmark/internal/naming"
)

// Options configures one run.
type Options struct {
	// Kind selects the lookup category (movie or tv).
	Kind metadata.Kind
	// BatchSize chunks the item list into groups of this many, with a
	// continue prompt between groups. 0 or negative means one group.
	BatchSize int
	// RenameFiles enables the file-level pass after a folder rename.
	RenameFiles bool
	// DryRun reports what would change without touching the filesystem.
	DryRun bool
}

// Stats are the counters accumulated over one run.
type Stats struct {
	Processed int
	Renamed   int
	Skipped   int
	Errors    int
}

// Report is the outcome of one run: counters plus the skipped items and
// warnings collected along the way. It is available both at normal
// completion and when the operator stops the run early.
type Report struct {
	Stats      Stats
	Skipped    []string
	Warnings   []string
	Stopped    bool
	BytesFreed int64
}

func (r *Report) addSkip(item, reason string) {
	r.Stats.Skipped++
	r.Skipped = append(r.Skipped, fmt.Sprintf("%s: %s", item, reason))
}

func (r *Report) addWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Orchestrator ties the pipeline together. It is single-threaded: one
// item, one file, one filesystem mutation at a time.
type Orchestrator struct {
	matcher   *metadata.Matcher
	decider   decision.Decider
	sanitizer *naming.Sanitizer
	log       *logging.Logger
	journal   *journal.Journal // nil disables journaling
	opts      Options
}

// New builds an Orchestrator. A nil sanitizer gets the default rules; a
// nil logger is replaced with a no-op logger; a nil journal disables
// journaling.
func New(matcher *metadata.Matcher, decider decision.Decider, sanitizer *naming.Sanitizer, log *logging.Logger, j *journal.Journal, opts Options) *Orchestrator {
	if sanitizer == nil {
		sanitizer = naming.NewSanitizer(nil)
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Orchestrator{
		matcher:   matcher,
		decider:   decider,
		sanitizer: sanitizer,
		log:       log,
		journal:   j,
		opts:      opts,
	}
}

// Run processes every direct subdirectory of root. Only a failure
// listing root itself aborts the run; per-item failures are counted and
// the run continues.
func (o *Orchestrator) Run(root string) (*Report, error) {
	report := &Report{}

	entries, err := os.ReadDir(root)
	if err != nil {
		return report, fmt.Errorf("failed to list %q: %w", root, err)
	}

	o.log.Info("renamer", "run started",
		logging.F("root", root),
		logging.F("items", len(entries)),
		logging.F("kind", string(o.opts.Kind)),
		logging.F("dry_run", o.opts.DryRun))

	batchSize := o.opts.BatchSize
	if batchSize <= 0 {
		batchSize = len(entries)
	}

	for start := 0; start < len(entries); start += batchSize {
		end := start + batchSize
		if end > len(entries) {
			end = len(entries)
		}

		before := report.Stats
		for _, entry := range entries[start:end] {
			if stop := o.processItem(root, entry, report); stop {
				report.Stopped = true
				return report, nil
			}
		}

		if end >= len(entries) {
			break
		}

		local := diffStats(before, report.Stats)
		o.log.Info("renamer", "batch complete",
			logging.F("processed", local.Processed),
			logging.F("renamed", local.Renamed),
			logging.F("skipped", local.Skipped),
			logging.F("errors", local.Errors))

		choice := o.decider.Decide(decision.Request{
			Kind: decision.KindContinueBatch,
			Detail: fmt.Sprintf("%d of %d items processed (batch: %d renamed, %d skipped, %d errors)",
				end, len(entries), local.Renamed, local.Skipped, local.Errors),
		})
		if choice == decision.ChoiceStop {
			report.Stopped = true
			o.log.Info("renamer", "run stopped between batches", logging.F("visited", end))
			return report, nil
		}
	}

	o.log.Info("renamer", "run complete",
		logging.F("processed", report.Stats.Processed),
		logging.F("renamed", report.Stats.Renamed),
		logging.F("skipped", report.Stats.Skipped),
		logging.F("errors", report.Stats.Errors))

	return report, nil
}

// processItem runs one folder through the pipeline. The returned bool
// is true when the operator chose to stop the run.
func (o *Orchestrator) processItem(root string, entry os.DirEntry, report *Report) bool {
	name := entry.Name()
	report.Stats.Processed++

	if !entry.IsDir() {
		report.addSkip(name, "not a directory")
		o.record(journal.OpSkip, filepath.Join(root, name), "", "not a directory", 0)
		return false
	}
	if naming.IsAlreadyTagged(name) {
		report.addSkip(name, "already tagged")
		return false
	}

	title, year, err := naming.Parse(name)
	if err != nil {
		report.addSkip(name, "no parseable title/year")
		o.record(journal.OpSkip, filepath.Join(root, name), "", "no parseable title/year", 0)
		return false
	}

	cand, ok := o.matcher.Match(title, year, o.opts.Kind)
	if !ok {
		choice := o.decider.Decide(decision.Request{
			Kind:   decision.KindNotFound,
			Item:   name,
			Detail: fmt.Sprintf("no %s match for %q (%d)", o.opts.Kind, title, year),
		})
		if choice == decision.ChoiceStop {
			report.addWarning(fmt.Sprintf("run stopped: no match for %s", name))
			o.log.Warn("renamer", "run stopped on unmatched item", logging.F("item", name))
			return true
		}
		report.addSkip(name, "no match")
		o.record(journal.OpSkip, filepath.Join(root, name), "", "no match", 0)
		return false
	}

	cleanTitle := o.sanitizer.Sanitize(cand.Title)
	target := naming.FormatFolder(cleanTitle, year, cand.ID)

	oldPath := filepath.Join(root, name)
	newPath := filepath.Join(root, target)

	if err := o.renamePath(oldPath, newPath); err != nil {
		o.log.Error("renamer", "folder rename failed", err,
			logging.F("from", name), logging.F("to", target))
		report.Stats.Errors++
		o.record(journal.OpError, oldPath, newPath, err.Error(), 0)
		return false
	}

	o.log.Info("renamer", "folder renamed",
		logging.F("from", name),
		logging.F("to", target),
		logging.F("tier", cand.Tier.String()))
	o.record(journal.OpRename, oldPath, newPath, cand.Tier.String(), 0)

	if o.opts.RenameFiles {
		folderPath := newPath
		if o.opts.DryRun {
			folderPath = oldPath
		}
		if ok := o.renameContents(folderPath, cleanTitle, year, report); !ok {
			// folder already renamed, so a file-level failure leaves the
			// item partially renamed
			report.Stats.Errors++
			return false
		}
	}

	report.Stats.Renamed++
	return false
}

// renamePath performs the rename unless this is a dry run.
func (o *Orchestrator) renamePath(oldPath, newPath string) error {
	if o.opts.DryRun {
		o.log.Info("renamer", "dry-run rename",
			logging.F("from", oldPath), logging.F("to", newPath))
		return nil
	}
	return os.Rename(oldPath, newPath)
}

// record writes one journal entry, if journaling is enabled. Dry runs
// are never journaled.
func (o *Orchestrator) record(op journal.Op, source, target, detail string, bytes int64) {
	if o.journal == nil || o.opts.DryRun {
		return
	}
	if err := o.journal.Record(op, source, target, detail, bytes); err != nil {
		o.log.Warn("renamer", "journal write failed", logging.F("error", err.Error()))
	}
}

func diffStats(before, after Stats) Stats {
	return Stats{
		Processed: after.Processed - before.Processed,
		Renamed:   after.Renamed - before.Renamed,
		Skipped:   after.Skipped - before.Skipped,
		Errors:    after.Errors - before.Errors,
	}
}
