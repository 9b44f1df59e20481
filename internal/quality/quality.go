// Package quality detects release quality tags from media filenames.
// A tag is either a source-resolution pair like "Bluray-1080p" or one of
// the resolution-less literal tags "BR-DISK" and "Raw-HD".
package quality

import "strings"

// Tag is a detected or manually supplied quality tag.
// Literal tags carry an empty Resolution.
type Tag struct {
	Source     string
	Resolution string
}

// IsZero reports whether the tag is empty.
func (t Tag) IsZero() bool {
	return t.Source == "" && t.Resolution == ""
}

// IsLiteral reports whether the tag is one of the resolution-less
// literal tags.
func (t Tag) IsLiteral() bool {
	return t.Source != "" && t.Resolution == ""
}

func (t Tag) String() string {
	if t.IsLiteral() {
		return t.Source
	}
	return t.Source + "-" + t.Resolution
}

// resolutions is the resolution axis in priority order: the first entry
// found anywhere in the filename wins, regardless of position.
var resolutions = []string{"2160p", "1080p", "720p", "576p", "480p"}

// sourceEntry is one entry of the source axis. Needles are the spellings
// recognized for it; Literal marks the two tags that stand alone.
type sourceEntry struct {
	name    string
	needles []string
	literal bool
}

// sources is the source axis in priority order. The literal entries come
// first so a disc rip is never misread as its encoded counterpart.
var sources = []sourceEntry{
	{name: "BR-DISK", needles: []string{"br-disk", "brdisk", "bd25", "bd50"}, literal: true},
	{name: "Raw-HD", needles: []string{"raw-hd", "rawhd"}, literal: true},
	{name: "Remux", needles: []string{"remux"}},
	{name: "Bluray", needles: []string{"bluray", "blu-ray", "bdrip", "brrip"}},
	{name: "WEBDL", needles: []string{"webdl", "web-dl", "web.dl"}},
	{name: "WEBRip", needles: []string{"webrip", "web-rip"}},
	{name: "HDTV", needles: []string{"hdtv", "pdtv"}},
	{name: "DVD", needles: []string{"dvdrip", "dvd-rip", "dvd"}},
}

// Detect scans a filename case-insensitively, once per axis. A literal
// source alone is a complete result; otherwise both a source and a
// resolution must be present.
func Detect(filename string) (Tag, bool) {
	lower := strings.ToLower(filename)

	var source *sourceEntry
	for i := range sources {
		if containsAny(lower, sources[i].needles) {
			source = &sources[i]
			break
		}
	}

	if source != nil && source.literal {
		return Tag{Source: source.name}, true
	}

	var resolution string
	for _, r := range resolutions {
		if strings.Contains(lower, r) {
			resolution = r
			break
		}
	}

	if source == nil || resolution == "" {
		return Tag{}, false
	}

	return Tag{Source: source.name, Resolution: resolution}, true
}

// AllTags enumerates every legal source-resolution pair plus the literal
// tags, in axis order. Used to present choices for manual entry.
func AllTags() []Tag {
	var tags []Tag
	for _, s := range sources {
		if s.literal {
			tags = append(tags, Tag{Source: s.name})
			continue
		}
		for _, r := range resolutions {
			tags = append(tags, Tag{Source: s.name, Resolution: r})
		}
	}
	return tags
}

// ParseTag matches a manually entered string against the legal tags.
// The match is case-insensitive but otherwise exact.
func ParseTag(s string) (Tag, bool) {
	for _, t := range AllTags() {
		if strings.EqualFold(s, t.String()) {
			return t, true
		}
	}
	return Tag{}, false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
