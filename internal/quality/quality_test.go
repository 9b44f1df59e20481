package quality

import (
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		wantOK   bool
	}{
		{"Movie.Title.2021.Bluray.1080p.mkv", "Bluray-1080p", true},
		{"Movie.Title.2021.Blu-Ray.2160p.mkv", "Bluray-2160p", true},
		{"Movie.2020.BDRip.720p.mkv", "Bluray-720p", true},
		{"Show.S01.WEB-DL.1080p.mkv", "WEBDL-1080p", true},
		{"Show.S01.WEBRip.480p.mkv", "WEBRip-480p", true},
		{"Old.Show.1998.HDTV.576p.mkv", "HDTV-576p", true},
		{"Movie.2005.DVDRip.480p.avi", "DVD-480p", true},
		{"Movie.2021.REMUX.2160p.mkv", "Remux-2160p", true},
		{"Show.2020.BR-DISK.mkv", "BR-DISK", true},
		{"Show.2020.Raw-HD.ts", "Raw-HD", true},

		// literal tags ignore any resolution marker
		{"Show.2020.BR-DISK.1080p.mkv", "BR-DISK", true},

		// both axes required for a combo tag
		{"Movie.2021.1080p.mkv", "", false},
		{"Movie.2021.Bluray.mkv", "", false},
		{"Plain.mkv", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			tag, ok := Detect(tt.filename)
			if ok != tt.wantOK {
				t.Fatalf("Detect(%q) ok = %v, want %v", tt.filename, ok, tt.wantOK)
			}
			if ok && tag.String() != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.filename, tag.String(), tt.want)
			}
		})
	}
}

// List order is priority, not position of occurrence in the filename.
func TestDetectPriorityOrder(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		// 1080p appears first in the name but 2160p outranks it
		{"Movie.1080p.upscale.of.2160p.Bluray.mkv", "Bluray-2160p"},
		// Remux outranks Bluray even when Bluray appears first
		{"Movie.Bluray.REMUX.2160p.mkv", "Remux-2160p"},
	}

	for _, tt := range tests {
		tag, ok := Detect(tt.filename)
		if !ok {
			t.Fatalf("Detect(%q) ok = false", tt.filename)
		}
		if tag.String() != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.filename, tag.String(), tt.want)
		}
	}
}

func TestDetectCaseInsensitive(t *testing.T) {
	tag, ok := Detect("movie.2021.bluray.1080P.mkv")
	if !ok || tag.String() != "Bluray-1080p" {
		t.Errorf("Detect() = %q, %v; want Bluray-1080p, true", tag.String(), ok)
	}
}

func TestAllTags(t *testing.T) {
	tags := AllTags()

	// six combo sources x five resolutions, plus two literal tags
	wantLen := 6*5 + 2
	if len(tags) != wantLen {
		t.Fatalf("AllTags() returned %d tags, want %d", len(tags), wantLen)
	}

	seen := make(map[string]bool)
	for _, tag := range tags {
		s := tag.String()
		if seen[s] {
			t.Errorf("AllTags() contains duplicate %q", s)
		}
		seen[s] = true
	}

	for _, want := range []string{"BR-DISK", "Raw-HD", "Bluray-1080p", "DVD-480p"} {
		if !seen[want] {
			t.Errorf("AllTags() missing %q", want)
		}
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Bluray-1080p", "Bluray-1080p", true},
		{"bluray-1080p", "Bluray-1080p", true},
		{"BR-DISK", "BR-DISK", true},
		{"raw-hd", "Raw-HD", true},
		{"Bluray", "", false},
		{"Bluray-1081p", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		tag, ok := ParseTag(tt.in)
		if ok != tt.wantOK {
			t.Fatalf("ParseTag(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
		}
		if ok && tag.String() != tt.want {
			t.Errorf("ParseTag(%q) = %q, want %q", tt.in, tag.String(), tt.want)
		}
	}
}

func TestTagIsZero(t *testing.T) {
	if !(Tag{}).IsZero() {
		t.Error("zero Tag should report IsZero")
	}
	if (Tag{Source: "Bluray", Resolution: "1080p"}).IsZero() {
		t.Error("populated Tag should not report IsZero")
	}
}
