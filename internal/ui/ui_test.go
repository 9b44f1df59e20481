package ui

import "testing"

func TestDisableColors(t *testing.T) {
	DisableColors()

	if IsTerminal() {
		t.Error("IsTerminal() = true after DisableColors()")
	}
	// styles must be rebuilt plain, not just flagged off
	if got := PromptStyle().Render("plain"); got != "plain" {
		t.Errorf("PromptStyle().Render(%q) = %q, want unstyled text", "plain", got)
	}
}
