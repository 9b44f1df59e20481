package renamer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/leoventa/shelfmark/internal/classify"
	"github.com/leoventa/shelfmark/internal/decision"
	"github.com/leoventa/shelfmark/internal/journal"
	"github.com/leoventa/shelfmark/internal/logging"
	"github.com/leoventa/shelfmark/internal/naming"
	"github.com/leoventa/shelfmark/internal/quality"
)

// renameContents runs the file-level pass inside an already-renamed
// folder: media files get the canonical "<title> (<year>) - <quality>"
// name, associated subtitles follow their media file, extras are
// offered for deletion, posters are left alone. The returned bool is
// false when a filesystem mutation failed, leaving the item partially
// renamed.
func (o *Orchestrator) renameContents(folderPath, title string, year int, report *Report) bool {
	set, err := classify.Folder(folderPath, classify.MultiMedia)
	if err != nil {
		o.log.Error("renamer", "classification failed", err, logging.F("folder", folderPath))
		o.record(journal.OpError, folderPath, "", err.Error(), 0)
		return false
	}

	if len(set.MediaFiles) == 0 {
		report.addWarning(fmt.Sprintf("%s: no media files", filepath.Base(folderPath)))
		o.log.Warn("renamer", "no media files in folder", logging.F("folder", folderPath))
	}

	clean := true
	renamedSubs := make(map[string]bool)

	// Target names claimed during this pass. Two media files with the
	// same extension and quality (a multi-part release) format to the
	// same target; renaming the second would silently overwrite the
	// first, so a claimed target skips the file instead.
	taken := make(map[string]bool)
	claimed := func(name string) bool {
		if taken[name] {
			return true
		}
		_, err := os.Lstat(filepath.Join(folderPath, name))
		return err == nil
	}

	for _, media := range set.MediaFiles {
		tag, detected := quality.Detect(media)
		if !detected {
			tag = o.elicitQuality(media)
			if tag.IsZero() {
				report.addSkip(media, "no quality tag")
				o.record(journal.OpSkip, filepath.Join(folderPath, media), "", "no quality tag", 0)
				continue
			}
		}

		origStem := classify.Stem(media)
		target := naming.FormatMediaFile(title, year, tag.String(), filepath.Ext(media))

		if media != target {
			if claimed(target) {
				report.addSkip(media, fmt.Sprintf("target %q already taken", target))
				o.log.Warn("renamer", "file rename collision",
					logging.F("from", media), logging.F("to", target))
				o.record(journal.OpSkip, filepath.Join(folderPath, media), filepath.Join(folderPath, target), "target already taken", 0)
				continue
			}
			if err := o.renamePath(filepath.Join(folderPath, media), filepath.Join(folderPath, target)); err != nil {
				o.log.Error("renamer", "file rename failed", err,
					logging.F("from", media), logging.F("to", target))
				o.record(journal.OpError, filepath.Join(folderPath, media), "", err.Error(), 0)
				clean = false
				continue
			}
			o.log.Info("renamer", "file renamed",
				logging.F("from", media), logging.F("to", target))
			o.record(journal.OpRenameFile, filepath.Join(folderPath, media), filepath.Join(folderPath, target), "", 0)
		}
		taken[target] = true

		// subtitles are associated by stem prefix, not listing order
		newStem := naming.MediaFileStem(title, year, tag.String())
		for _, sub := range set.SubtitleFiles {
			if renamedSubs[sub] || !strings.HasPrefix(origStem, classify.Stem(sub)) {
				continue
			}
			subTarget := newStem + filepath.Ext(sub)
			if sub == subTarget {
				renamedSubs[sub] = true
				taken[subTarget] = true
				continue
			}
			if claimed(subTarget) {
				renamedSubs[sub] = true
				report.addWarning(fmt.Sprintf("%s: target %q already taken, left in place", sub, subTarget))
				o.log.Warn("renamer", "subtitle rename collision",
					logging.F("from", sub), logging.F("to", subTarget))
				continue
			}
			if err := o.renamePath(filepath.Join(folderPath, sub), filepath.Join(folderPath, subTarget)); err != nil {
				o.log.Error("renamer", "subtitle rename failed", err,
					logging.F("from", sub), logging.F("to", subTarget))
				o.record(journal.OpError, filepath.Join(folderPath, sub), "", err.Error(), 0)
				clean = false
				continue
			}
			renamedSubs[sub] = true
			taken[subTarget] = true
			o.log.Info("renamer", "subtitle renamed",
				logging.F("from", sub), logging.F("to", subTarget))
			o.record(journal.OpRenameFile, filepath.Join(folderPath, sub), filepath.Join(folderPath, subTarget), "", 0)
		}
	}

	for _, poster := range set.PosterFiles {
		o.log.Info("renamer", "poster kept", logging.F("file", poster))
	}

	if len(set.OtherFiles) > 0 {
		if !o.deleteExtras(folderPath, set.OtherFiles, report) {
			clean = false
		}
	}

	return clean
}

// elicitQuality asks the operator what to do about a media file with no
// detectable quality tag. A zero tag means skip the file.
func (o *Orchestrator) elicitQuality(media string) quality.Tag {
	choice := o.decider.Decide(decision.Request{
		Kind:   decision.KindMissingQuality,
		Item:   media,
		Detail: "no quality tag detected",
	})
	if choice != decision.ChoiceManual {
		return quality.Tag{}
	}
	return o.decider.PromptQuality()
}

// deleteExtras raises one batched confirmation for everything outside
// the media/subtitle/poster buckets. On acceptance files are removed
// and subdirectories removed recursively; on decline nothing happens.
func (o *Orchestrator) deleteExtras(folderPath string, extras []string, report *Report) bool {
	choice := o.decider.Decide(decision.Request{
		Kind:   decision.KindDeleteExtras,
		Item:   filepath.Base(folderPath),
		Extras: extras,
	})
	if choice != decision.ChoiceAccept {
		o.log.Info("renamer", "extras kept", logging.F("count", len(extras)))
		return true
	}

	clean := true
	for _, extra := range extras {
		path := filepath.Join(folderPath, extra)
		size := pathSize(path)

		if err := o.removePath(path); err != nil {
			o.log.Error("renamer", "delete failed", err, logging.F("path", path))
			o.record(journal.OpError, path, "", err.Error(), 0)
			clean = false
			continue
		}

		report.BytesFreed += size
		o.log.Info("renamer", "extra deleted",
			logging.F("path", path), logging.F("bytes", size))
		o.record(journal.OpDelete, path, "", "extras cleanup", size)
	}
	return clean
}

// removePath deletes a file or directory tree unless this is a dry run.
func (o *Orchestrator) removePath(path string) error {
	if o.opts.DryRun {
		o.log.Info("renamer", "dry-run delete", logging.F("path", path))
		return nil
	}
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// pathSize returns the total size of a file or directory tree. Errors
// are ignored; the size only feeds the freed-space report.
func pathSize(path string) int64 {
	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return info.Size()
	}

	var total int64
	filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if fi, err := d.Info(); err == nil {
			total += fi.Size()
		}
		return nil
	})
	return total
}
