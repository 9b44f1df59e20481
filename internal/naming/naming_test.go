package naming

import (
	"errors"
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		wantTitle string
		wantYear  int
		wantErr   bool
	}{
		{"Inception (2010)", "Inception", 2010, false},
		{"The Matrix (1999)", "The Matrix", 1999, false},
		{"Blade Runner 2049 (2017)", "Blade Runner 2049", 2017, false},
		{"Spaced Out   (2005)", "Spaced Out", 2005, false},
		{"Interstellar (2014) {tt0816692}", "Interstellar", 2014, false},
		{"For All Mankind (2019) extra", "For All Mankind", 2019, false},
		{"No Year Here", "", 0, true},
		{"Almost (199)", "", 0, true},
		{"(2010)", "", 0, true},
		{"", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, year, err := Parse(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %q/%d", tt.name, title, year)
				}
				if !errors.Is(err, ErrNoYear) {
					t.Errorf("Parse(%q) error = %v, want ErrNoYear", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.name, err)
			}
			if title != tt.wantTitle || year != tt.wantYear {
				t.Errorf("Parse(%q) = (%q, %d), want (%q, %d)",
					tt.name, title, year, tt.wantTitle, tt.wantYear)
			}
		})
	}
}

// Parsing a canonical name and re-formatting it must round-trip.
func TestParseFormatRoundTrip(t *testing.T) {
	names := []string{
		"Inception (2010)",
		"The Lord of the Rings - The Two Towers (2002)",
		"1917 (2019)",
	}

	for _, name := range names {
		title, year, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", name, err)
		}
		if got := fmt.Sprintf("%s (%d)", title, year); got != name {
			t.Errorf("round trip of %q = %q", name, got)
		}
	}
}

func TestExtractEmbeddedID(t *testing.T) {
	tests := []struct {
		name   string
		wantID string
		wantOK bool
	}{
		{"Inception (2010) {tt1375666}", "1375666", true},
		{"Chernobyl (2019) {tt7366338}", "7366338", true},
		{"{tt42} leading tag", "42", true},
		{"Inception (2010)", "", false},
		{"Braces {but no id}", "", false},
	}

	for _, tt := range tests {
		id, ok := ExtractEmbeddedID(tt.name)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("ExtractEmbeddedID(%q) = (%q, %v), want (%q, %v)",
				tt.name, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestIsAlreadyTagged(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Inception (2010) {tt1375666}", true},
		{"Weird { folder", true},
		{"Inception (2010)", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAlreadyTagged(tt.name); got != tt.want {
			t.Errorf("IsAlreadyTagged(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFormatFolder(t *testing.T) {
	got := FormatFolder("Inception", 2010, "1375666")
	want := "Inception (2010) {tt1375666}"
	if got != want {
		t.Errorf("FormatFolder() = %q, want %q", got, want)
	}
}

func TestFormatMediaFile(t *testing.T) {
	got := FormatMediaFile("Inception", 2010, "Bluray-1080p", ".mkv")
	want := "Inception (2010) - Bluray-1080p.mkv"
	if got != want {
		t.Errorf("FormatMediaFile() = %q, want %q", got, want)
	}
}

func TestExternalRef(t *testing.T) {
	if got := ExternalRef("1375666"); got != "tt1375666" {
		t.Errorf("ExternalRef() = %q, want tt1375666", got)
	}
}
