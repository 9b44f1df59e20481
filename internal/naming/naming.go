// Package naming parses and formats the canonical media-library naming
// convention: folders are "Title (Year)" optionally suffixed with an
// embedded identifier "{tt1234567}", media files are
// "Title (Year) - Quality.ext".
package naming

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// Title up to the first parenthesized 4-digit year. Prefix match:
	// trailing text (an embedded id tag) is allowed after the year.
	folderRegex = regexp.MustCompile(`^(.+?)\s*\((\d{4})\)`)

	embeddedIDRegex = regexp.MustCompile(`\{tt(\d+)\}`)
)

// ErrNoYear is returned when a folder name has no parenthesized 4-digit year.
var ErrNoYear = fmt.Errorf("no parenthesized year found")

// Parse extracts title and year from a folder name like "Inception (2010)".
// The title is trimmed of surrounding whitespace.
func Parse(name string) (string, int, error) {
	match := folderRegex.FindStringSubmatch(name)
	if match == nil {
		return "", 0, fmt.Errorf("parsing %q: %w", name, ErrNoYear)
	}

	title := strings.TrimSpace(match[1])
	year, err := strconv.Atoi(match[2])
	if err != nil {
		return "", 0, fmt.Errorf("parsing %q: %w", name, ErrNoYear)
	}

	return title, year, nil
}

// ExtractEmbeddedID finds a "{tt<digits>}" tag anywhere in the name and
// returns the digit string.
func ExtractEmbeddedID(name string) (string, bool) {
	match := embeddedIDRegex.FindStringSubmatch(name)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// IsAlreadyTagged reports whether the name already carries a tag.
// Any "{" counts; this is a cheap pre-filter, not a full parse.
func IsAlreadyTagged(name string) bool {
	return strings.Contains(name, "{")
}

// FormatFolder builds the canonical folder name "Title (Year) {ttID}".
// id is the bare digit string without the "tt" prefix.
func FormatFolder(title string, year int, id string) string {
	return fmt.Sprintf("%s (%d) {tt%s}", title, year, id)
}

// FormatMediaFile builds the canonical media filename
// "Title (Year) - Quality<ext>". ext must include the leading dot.
func FormatMediaFile(title string, year int, qualityTag, ext string) string {
	return fmt.Sprintf("%s (%d) - %s%s", title, year, qualityTag, ext)
}

// MediaFileStem builds the canonical stem without extension, shared by a
// media file and its associated subtitles.
func MediaFileStem(title string, year int, qualityTag string) string {
	return fmt.Sprintf("%s (%d) - %s", title, year, qualityTag)
}

// ExternalRef returns the canonical external reference form for a bare
// numeric identifier, e.g. "1375666" -> "tt1375666".
func ExternalRef(id string) string {
	return "tt" + id
}
