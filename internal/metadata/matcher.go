package metadata

import (
	"regexp"
	"strings"

	"github.com/leoventa/shelfmark/internal/logging"
)

// Tier records how a candidate's year relates to the requested year.
type Tier int

const (
	TierExactYear Tier = iota
	TierCloseYear
)

func (t Tier) String() string {
	switch t {
	case TierExactYear:
		return "exact-year"
	case TierCloseYear:
		return "close-year"
	default:
		return "unknown"
	}
}

// Candidate is one lookup result selected during matching.
type Candidate struct {
	Title string
	Year  int
	Kind  string
	ID    string
	Tier  Tier
}

// VerifyResult is the outcome of verifying an existing identifier.
type VerifyResult int

const (
	VerifyMatch VerifyResult = iota
	VerifyMismatch
	VerifyNotFound
)

// Matcher resolves titles against a lookup service. Service and
// transport failures never escape: they are logged and treated as
// not-found.
type Matcher struct {
	svc Service
	log *logging.Logger
}

// NewMatcher builds a Matcher. A nil logger is replaced with a no-op
// logger.
func NewMatcher(svc Service, log *logging.Logger) *Matcher {
	if log == nil {
		log = logging.Nop()
	}
	return &Matcher{svc: svc, log: log}
}

// Match searches the service for title, filters to the requested kind,
// and scans the results in provider order: the first exact-year match
// wins; failing that, the first candidate within one year. Returns
// (nil, false) when nothing qualifies or the service fails.
func (m *Matcher) Match(title string, year int, kind Kind) (*Candidate, bool) {
	results, err := m.svc.SearchByTitle(title)
	if err != nil {
		m.log.Error("matcher", "lookup failed, treating as not found", err,
			logging.F("title", title))
		return nil, false
	}

	var filtered []SearchResult
	for _, r := range results {
		if matchesKind(r.Kind, kind) {
			filtered = append(filtered, r)
		}
	}

	m.log.Debug("matcher", "search results",
		logging.F("title", title),
		logging.F("total", len(results)),
		logging.F("kind_matches", len(filtered)))

	for _, r := range filtered {
		if r.Year == year {
			m.log.Info("matcher", "exact year match",
				logging.F("title", r.Title),
				logging.F("year", r.Year),
				logging.F("id", "tt"+r.ID))
			return &Candidate{Title: r.Title, Year: r.Year, Kind: r.Kind, ID: r.ID, Tier: TierExactYear}, true
		}
	}

	for _, r := range filtered {
		if absInt(r.Year-year) <= 1 {
			m.log.Info("matcher", "close year match",
				logging.F("title", r.Title),
				logging.F("year", r.Year),
				logging.F("id", "tt"+r.ID))
			return &Candidate{Title: r.Title, Year: r.Year, Kind: r.Kind, ID: r.ID, Tier: TierCloseYear}, true
		}
	}

	m.log.Warn("matcher", "no match",
		logging.F("title", title),
		logging.F("year", year),
		logging.F("kind", string(kind)))
	return nil, false
}

// Verify fetches the record behind id and compares it against the
// supplied title and year. Titles are compared in normalized form;
// years match when equal or within one. On mismatch the provider's raw
// title is returned for operator review. Service failures are reported
// as VerifyNotFound, never raised.
func (m *Matcher) Verify(id, title string, year int) (VerifyResult, string) {
	details, err := m.svc.FetchByID(id)
	if err != nil || details == nil {
		if err != nil {
			m.log.Error("matcher", "fetch by id failed, treating as not found", err,
				logging.F("id", "tt"+id))
		}
		return VerifyNotFound, ""
	}

	titlesEqual := normalizeTitle(title) == normalizeTitle(details.Title)
	yearsClose := absInt(details.Year-year) <= 1

	if titlesEqual && yearsClose {
		return VerifyMatch, ""
	}
	return VerifyMismatch, details.Title
}

var colonSpacingRegex = regexp.MustCompile(`\s*:\s*`)

// normalizeTitle lower-cases a title and collapses any colon-surrounded
// spacing to a single space, so "Title: Subtitle", "Title : Subtitle"
// and "title subtitle" compare equal.
func normalizeTitle(title string) string {
	title = strings.ToLower(title)
	title = colonSpacingRegex.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
