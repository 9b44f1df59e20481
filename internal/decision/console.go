package decision

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leoventa/shelfmark/internal/quality"
	"github.com/leoventa/shelfmark/internal/ui"
)

// Console is the interactive Decider backed by stdin/stdout. When input
// reaches EOF every prompt resolves to its non-destructive answer.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	closed bool
}

// NewConsole builds a Console decider reading from stdin.
func NewConsole() *Console {
	return NewConsoleWith(os.Stdin, os.Stdout)
}

// NewConsoleWith builds a Console decider over explicit streams.
func NewConsoleWith(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) Decide(req Request) Choice {
	switch req.Kind {
	case KindNotFound:
		return c.decideNotFound(req)
	case KindMismatch:
		return c.decideMismatch(req)
	case KindMissingQuality:
		return c.decideMissingQuality(req)
	case KindDeleteExtras:
		return c.decideDeleteExtras(req)
	case KindContinueBatch:
		return c.decideContinueBatch(req)
	default:
		return ChoiceSkip
	}
}

func (c *Console) decideNotFound(req Request) Choice {
	fmt.Fprintf(c.out, "\n%s\n", ui.PromptStyle().Render("No match found for: "+req.Item))
	for {
		fmt.Fprint(c.out, "(s)kip this item or st(o)p the process? (s/o): ")
		switch c.readLine() {
		case "s":
			return ChoiceSkip
		case "o":
			return ChoiceStop
		}
		if c.closed {
			return ChoiceSkip
		}
		fmt.Fprintln(c.out, "Invalid choice. Enter 's' to skip or 'o' to stop.")
	}
}

func (c *Console) decideMismatch(req Request) Choice {
	fmt.Fprintf(c.out, "\n%s\n", ui.PromptStyle().Render("Identifier mismatch for: "+req.Item))
	fmt.Fprintf(c.out, "Provider title: %s\n", req.Detail)
	for {
		fmt.Fprint(c.out, "(a)dopt provider title, (c)ontinue matching, or (s)kip? (a/c/s): ")
		switch c.readLine() {
		case "a":
			return ChoiceAdopt
		case "c":
			return ChoiceContinue
		case "s":
			return ChoiceSkip
		}
		if c.closed {
			return ChoiceSkip
		}
		fmt.Fprintln(c.out, "Invalid choice. Enter 'a', 'c' or 's'.")
	}
}

func (c *Console) decideMissingQuality(req Request) Choice {
	fmt.Fprintf(c.out, "\n%s\n", ui.PromptStyle().Render("No quality detected in: "+req.Item))
	for {
		fmt.Fprint(c.out, "(s)kip this file or enter quality (m)anually? (s/m): ")
		switch c.readLine() {
		case "s":
			return ChoiceSkip
		case "m":
			return ChoiceManual
		}
		if c.closed {
			return ChoiceSkip
		}
		fmt.Fprintln(c.out, "Invalid choice. Enter 's' to skip or 'm' for manual entry.")
	}
}

func (c *Console) decideDeleteExtras(req Request) Choice {
	fmt.Fprintf(c.out, "\n%s\n", ui.PromptStyle().Render("Unrecognized files in: "+req.Item))
	for _, f := range req.Extras {
		fmt.Fprintf(c.out, "  %s\n", f)
	}
	for {
		fmt.Fprint(c.out, "Delete these files and folders? (y/n): ")
		switch c.readLine() {
		case "y", "yes":
			return ChoiceAccept
		case "n", "no":
			return ChoiceDecline
		}
		if c.closed {
			return ChoiceDecline
		}
		fmt.Fprintln(c.out, "Invalid choice. Enter 'y' or 'n'.")
	}
}

func (c *Console) decideContinueBatch(req Request) Choice {
	if req.Detail != "" {
		fmt.Fprintf(c.out, "\n%s\n", req.Detail)
	}
	for {
		fmt.Fprint(c.out, "Continue with the next batch? (y/n): ")
		switch c.readLine() {
		case "y", "yes":
			return ChoiceContinue
		case "n", "no":
			return ChoiceStop
		}
		if c.closed {
			return ChoiceStop
		}
		fmt.Fprintln(c.out, "Invalid choice. Enter 'y' or 'n'.")
	}
}

// PromptQuality lists every legal tag and loops until the operator
// enters one of them exactly. On EOF it returns the zero tag, which
// callers treat like a skipped file.
func (c *Console) PromptQuality() quality.Tag {
	fmt.Fprintln(c.out, "\nKnown quality tags:")
	for _, t := range quality.AllTags() {
		fmt.Fprintf(c.out, "  %s\n", t)
	}
	for {
		fmt.Fprint(c.out, "Quality: ")
		if tag, ok := quality.ParseTag(c.readLine()); ok {
			return tag
		}
		if c.closed {
			return quality.Tag{}
		}
		fmt.Fprintln(c.out, "Unknown tag, try again.")
	}
}

func (c *Console) readLine() string {
	if c.closed {
		return ""
	}
	if !c.in.Scan() {
		c.closed = true
		return ""
	}
	return strings.ToLower(strings.TrimSpace(c.in.Text()))
}
