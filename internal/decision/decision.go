// Package decision is the interactive-choice boundary between the rename
// pipeline and the operator. Every prompt the pipeline can raise goes
// through the Decider interface, so tests can script the answers.
package decision

import "github.com/leoventa/shelfmark/internal/quality"

// Kind identifies the decision being requested.
type Kind int

const (
	// KindNotFound: no identifier could be resolved for an item.
	// Answers: Skip or Stop.
	KindNotFound Kind = iota
	// KindMismatch: an embedded identifier disagrees with provider data.
	// Answers: Adopt, Continue (re-match normally), or Skip.
	KindMismatch
	// KindMissingQuality: no quality tag detected in a media filename.
	// Answers: Manual (operator supplies a tag) or Skip.
	KindMissingQuality
	// KindDeleteExtras: files outside the known buckets are slated for
	// removal. Answers: Accept or Decline.
	KindDeleteExtras
	// KindContinueBatch: a batch finished and items remain.
	// Answers: Continue or Stop.
	KindContinueBatch
)

// Choice is one operator answer.
type Choice int

const (
	ChoiceSkip Choice = iota
	ChoiceStop
	ChoiceAdopt
	ChoiceContinue
	ChoiceManual
	ChoiceAccept
	ChoiceDecline
)

// Request carries the decision kind and its context.
type Request struct {
	Kind   Kind
	Item   string   // folder or file the decision is about
	Detail string   // provider title on mismatch, quality hint, etc.
	Extras []string // files slated for deletion (KindDeleteExtras)
}

// Decider resolves decision points. Decide blocks until the operator
// answers; there is no timeout and no cancellation.
type Decider interface {
	Decide(req Request) Choice
	// PromptQuality elicits a quality tag, looping until the input is a
	// legal tag. It never gives up.
	PromptQuality() quality.Tag
}
