// Package classify partitions the direct entries of a media folder into
// media, subtitle, poster, and other buckets.
package classify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Policy selects how the media bucket treats multiple media files.
type Policy int

const (
	// SingleMedia treats more than one media file as a hard stop.
	SingleMedia Policy = iota
	// MultiMedia returns every qualifying media file; the caller decides.
	MultiMedia
)

// ErrMultipleMedia is returned under SingleMedia policy when a folder
// holds more than one media file.
var ErrMultipleMedia = errors.New("multiple media files in folder")

// FileSet partitions a folder's direct entries. Every entry lands in
// exactly one list; listing order is preserved within each list.
type FileSet struct {
	MediaFiles    []string
	SubtitleFiles []string
	PosterFiles   []string
	OtherFiles    []string
}

var mediaExtensions = map[string]bool{
	".mkv": true, ".mp4": true, ".avi": true, ".mov": true,
	".wmv": true, ".flv": true, ".webm": true, ".m4v": true,
	".mpg": true, ".mpeg": true, ".m2ts": true, ".ts": true,
	".vob": true, ".divx": true,
}

var subtitleExtensions = map[string]bool{
	".srt": true, ".sub": true, ".idx": true, ".ass": true,
	".ssa": true, ".vtt": true, ".smi": true,
}

var posterExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
}

// posterStems are the accepted base names for a poster image.
// The compare is case-sensitive.
var posterStems = []string{"poster", "Poster"}

// Folder classifies the direct (non-recursive) entries of folderPath.
// Subdirectories are always classified as other. Under SingleMedia
// policy a second media file aborts classification with
// ErrMultipleMedia.
func Folder(folderPath string, policy Policy) (*FileSet, error) {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, fmt.Errorf("reading folder %q: %w", folderPath, err)
	}

	set := &FileSet{}
	for _, entry := range entries {
		name := entry.Name()

		if entry.IsDir() {
			set.OtherFiles = append(set.OtherFiles, name)
			continue
		}

		switch {
		case isMediaFile(name):
			if policy == SingleMedia && len(set.MediaFiles) == 1 {
				return nil, fmt.Errorf("classifying %q: %w", folderPath, ErrMultipleMedia)
			}
			set.MediaFiles = append(set.MediaFiles, name)
		case isSubtitleFile(name):
			set.SubtitleFiles = append(set.SubtitleFiles, name)
		case isPosterFile(name):
			set.PosterFiles = append(set.PosterFiles, name)
		default:
			set.OtherFiles = append(set.OtherFiles, name)
		}
	}

	return set, nil
}

// Stem returns the filename without its extension.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func isMediaFile(name string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(name))]
}

func isSubtitleFile(name string) bool {
	return subtitleExtensions[strings.ToLower(filepath.Ext(name))]
}

func isPosterFile(name string) bool {
	if !posterExtensions[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	stem := Stem(name)
	for _, accepted := range posterStems {
		if stem == accepted {
			return true
		}
	}
	return false
}
