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

// Verify re-examines already-tagged folders under root: each embedded
// identifier is checked against current provider data and mismatches
// are offered for correction. Untagged folders are left for the rename
// pass.
func (o *Orchestrator) Verify(root string) (*Report, error) {
	report := &Report{}

	entries, err := os.ReadDir(root)
	if err != nil {
		return report, fmt.Errorf("failed to list %q: %w", root, err)
	}

	o.log.Info("renamer", "verify started",
		logging.F("root", root), logging.F("items", len(entries)))

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || !naming.IsAlreadyTagged(name) {
			continue
		}

		report.Stats.Processed++

		title, year, err := naming.Parse(name)
		if err != nil {
			report.addSkip(name, "no parseable title/year")
			continue
		}
		id, ok := naming.ExtractEmbeddedID(name)
		if !ok {
			report.addSkip(name, "tagged but no embedded identifier")
			continue
		}

		result, providerTitle := o.matcher.Verify(id, title, year)
		switch result {
		case metadata.VerifyMatch:
			o.log.Info("renamer", "identifier verified",
				logging.F("item", name), logging.F("id", naming.ExternalRef(id)))
			o.record(journal.OpVerify, filepath.Join(root, name), "", "match", 0)

		case metadata.VerifyMismatch:
			if stop := o.resolveMismatch(root, name, title, year, id, providerTitle, report); stop {
				report.Stopped = true
				return report, nil
			}

		case metadata.VerifyNotFound:
			choice := o.decider.Decide(decision.Request{
				Kind:   decision.KindNotFound,
				Item:   name,
				Detail: fmt.Sprintf("%s resolves to nothing", naming.ExternalRef(id)),
			})
			if choice == decision.ChoiceStop {
				report.addWarning(fmt.Sprintf("verify stopped: %s resolves to nothing", name))
				report.Stopped = true
				return report, nil
			}
			report.addSkip(name, "identifier resolves to nothing")
			o.record(journal.OpSkip, filepath.Join(root, name), "", "identifier resolves to nothing", 0)
		}
	}

	o.log.Info("renamer", "verify complete",
		logging.F("processed", report.Stats.Processed),
		logging.F("corrected", report.Stats.Renamed),
		logging.F("skipped", report.Stats.Skipped))

	return report, nil
}

// resolveMismatch handles one folder whose embedded identifier
// disagrees with provider data. The returned bool is true when the
// operator chose to stop.
func (o *Orchestrator) resolveMismatch(root, name, title string, year int, id, providerTitle string, report *Report) bool {
	choice := o.decider.Decide(decision.Request{
		Kind:   decision.KindMismatch,
		Item:   name,
		Detail: providerTitle,
	})

	switch choice {
	case decision.ChoiceAdopt:
		target := naming.FormatFolder(o.sanitizer.Sanitize(providerTitle), year, id)
		o.verifyRename(root, name, target, report)

	case decision.ChoiceContinue:
		cand, ok := o.matcher.Match(title, year, o.opts.Kind)
		if !ok {
			sub := o.decider.Decide(decision.Request{
				Kind:   decision.KindNotFound,
				Item:   name,
				Detail: fmt.Sprintf("no %s match for %q (%d)", o.opts.Kind, title, year),
			})
			if sub == decision.ChoiceStop {
				report.addWarning(fmt.Sprintf("verify stopped: no match for %s", name))
				return true
			}
			report.addSkip(name, "no match")
			return false
		}
		target := naming.FormatFolder(o.sanitizer.Sanitize(cand.Title), year, cand.ID)
		o.verifyRename(root, name, target, report)

	default:
		report.addSkip(name, "identifier mismatch left in place")
		o.record(journal.OpSkip, filepath.Join(root, name), "", "identifier mismatch left in place", 0)
	}
	return false
}

func (o *Orchestrator) verifyRename(root, name, target string, report *Report) {
	if name == target {
		return
	}
	oldPath := filepath.Join(root, name)
	newPath := filepath.Join(root, target)
	if err := o.renamePath(oldPath, newPath); err != nil {
		o.log.Error("renamer", "verify rename failed", err,
			logging.F("from", name), logging.F("to", target))
		report.Stats.Errors++
		o.record(journal.OpError, oldPath, newPath, err.Error(), 0)
		return
	}
	report.Stats.Renamed++
	o.log.Info("renamer", "folder corrected",
		logging.F("from", name), logging.F("to", target))
	o.record(journal.OpRename, oldPath, newPath, "verify", 0)
}
