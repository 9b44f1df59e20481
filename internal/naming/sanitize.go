package naming

import "strings"

// Rule maps one filesystem-reserved character to its replacement.
type Rule struct {
	Old string
	New string
}

// DefaultRules returns the replacement mapping for characters that are
// unsafe in folder and file names. Order matters: rules are applied
// sequentially, each operating on the output of the previous one.
func DefaultRules() []Rule {
	return []Rule{
		{":", " -"},
		{"/", "-"},
		{"\\", "-"},
		{"*", ""},
		{"?", ""},
		{`"`, "'"},
		{"<", ""},
		{">", ""},
		{"|", "-"},
	}
}

// Sanitizer replaces filesystem-reserved characters in names.
type Sanitizer struct {
	rules []Rule
}

// NewSanitizer builds a Sanitizer from an ordered rule list. A nil or
// empty list selects DefaultRules.
func NewSanitizer(rules []Rule) *Sanitizer {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Sanitizer{rules: rules}
}

// Sanitize applies the replacement rules in declared order. Once no
// reserved character remains the result is a fixed point: re-applying
// Sanitize returns the same string.
func (s *Sanitizer) Sanitize(name string) string {
	for _, r := range s.rules {
		name = strings.ReplaceAll(name, r.Old, r.New)
	}
	return name
}
