package decision

import "github.com/leoventa/shelfmark/internal/quality"

// Script is a non-interactive Decider that replays queued answers.
// It backs tests and dry runs; once the queue is exhausted it returns
// the fallback choice.
type Script struct {
	Choices  []Choice
	Tags     []quality.Tag
	Fallback Choice

	// Requests records every decision point raised, in order.
	Requests []Request
}

func (s *Script) Decide(req Request) Choice {
	s.Requests = append(s.Requests, req)
	if len(s.Choices) == 0 {
		return s.Fallback
	}
	choice := s.Choices[0]
	s.Choices = s.Choices[1:]
	return choice
}

func (s *Script) PromptQuality() quality.Tag {
	if len(s.Tags) == 0 {
		return quality.Tag{}
	}
	tag := s.Tags[0]
	s.Tags = s.Tags[1:]
	return tag
}
