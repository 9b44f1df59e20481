// Package metadata resolves a parsed title/year pair to a unique external
// identifier through a lookup service, and verifies existing identifiers
// against current provider data.
package metadata

import "errors"

// Kind is the media kind requested by the operator.
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// Provider kind strings as reported by the lookup service.
const (
	ProviderKindMovie        = "movie"
	ProviderKindTVSeries     = "tv series"
	ProviderKindTVMiniSeries = "tv mini series"
)

// SearchResult is one entry of a title search, in provider order.
// ID is the bare numeric identifier without the "tt" prefix.
type SearchResult struct {
	ID    string
	Title string
	Year  int
	Kind  string
}

// Details is the full record behind one identifier.
type Details struct {
	ID    string
	Title string
	Year  int
	Kind  string
}

// ErrNotFound is returned by FetchByID when an identifier resolves to
// nothing.
var ErrNotFound = errors.New("metadata: not found")

// Service is the lookup-service contract. Result ranking is the
// provider's own and is trusted as-is; both calls are synchronous and
// blocking.
type Service interface {
	SearchByTitle(title string) ([]SearchResult, error)
	FetchByID(id string) (*Details, error)
}

// matchesKind reports whether a provider kind satisfies the requested
// kind. TV series and TV mini series are grouped together.
func matchesKind(providerKind string, want Kind) bool {
	switch want {
	case KindMovie:
		return providerKind == ProviderKindMovie
	case KindTV:
		return providerKind == ProviderKindTVSeries || providerKind == ProviderKindTVMiniSeries
	default:
		return false
	}
}
