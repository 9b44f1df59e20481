package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService returns scripted results in a fixed order.
type fakeService struct {
	results   []SearchResult
	searchErr error
	details   map[string]*Details
	fetchErr  error
}

func (f *fakeService) SearchByTitle(title string) ([]SearchResult, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results, nil
}

func (f *fakeService) FetchByID(id string) (*Details, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	d, ok := f.details[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func TestMatch_ExactYear(t *testing.T) {
	svc := &fakeService{results: []SearchResult{
		{ID: "1375666", Title: "Inception", Year: 2010, Kind: ProviderKindMovie},
	}}
	m := NewMatcher(svc, nil)

	c, ok := m.Match("Inception", 2010, KindMovie)
	require.True(t, ok)
	assert.Equal(t, "1375666", c.ID)
	assert.Equal(t, TierExactYear, c.Tier)
}

// An exact-year candidate wins even when a close-year candidate appears
// earlier in provider order.
func TestMatch_ExactYearBeatsEarlierCloseYear(t *testing.T) {
	svc := &fakeService{results: []SearchResult{
		{ID: "111", Title: "Remake", Year: 2011, Kind: ProviderKindMovie},
		{ID: "222", Title: "Original", Year: 2010, Kind: ProviderKindMovie},
	}}
	m := NewMatcher(svc, nil)

	c, ok := m.Match("Original", 2010, KindMovie)
	require.True(t, ok)
	assert.Equal(t, "222", c.ID)
	assert.Equal(t, TierExactYear, c.Tier)
}

func TestMatch_CloseYearFallback(t *testing.T) {
	svc := &fakeService{results: []SearchResult{
		{ID: "333", Title: "Early Cut", Year: 2009, Kind: ProviderKindMovie},
		{ID: "444", Title: "Late Cut", Year: 2011, Kind: ProviderKindMovie},
	}}
	m := NewMatcher(svc, nil)

	// no exact 2010 match; first close-year result in provider order wins
	c, ok := m.Match("Cut", 2010, KindMovie)
	require.True(t, ok)
	assert.Equal(t, "333", c.ID)
	assert.Equal(t, TierCloseYear, c.Tier)
}

func TestMatch_YearTooFar(t *testing.T) {
	svc := &fakeService{results: []SearchResult{
		{ID: "555", Title: "Old", Year: 2005, Kind: ProviderKindMovie},
	}}
	m := NewMatcher(svc, nil)

	_, ok := m.Match("Old", 2010, KindMovie)
	assert.False(t, ok)
}

func TestMatch_KindFilter(t *testing.T) {
	svc := &fakeService{results: []SearchResult{
		{ID: "666", Title: "Fargo", Year: 2014, Kind: ProviderKindMovie},
		{ID: "777", Title: "Fargo", Year: 2014, Kind: ProviderKindTVSeries},
	}}
	m := NewMatcher(svc, nil)

	c, ok := m.Match("Fargo", 2014, KindTV)
	require.True(t, ok)
	assert.Equal(t, "777", c.ID)

	c, ok = m.Match("Fargo", 2014, KindMovie)
	require.True(t, ok)
	assert.Equal(t, "666", c.ID)
}

func TestMatch_MiniSeriesGroupedAsTV(t *testing.T) {
	svc := &fakeService{results: []SearchResult{
		{ID: "888", Title: "Chernobyl", Year: 2019, Kind: ProviderKindTVMiniSeries},
	}}
	m := NewMatcher(svc, nil)

	c, ok := m.Match("Chernobyl", 2019, KindTV)
	require.True(t, ok)
	assert.Equal(t, "888", c.ID)
}

// Service errors are downgraded to not-found, never surfaced.
func TestMatch_ServiceErrorIsNotFound(t *testing.T) {
	svc := &fakeService{searchErr: errors.New("connection refused")}
	m := NewMatcher(svc, nil)

	_, ok := m.Match("Anything", 2020, KindMovie)
	assert.False(t, ok)
}

func TestMatch_NoResults(t *testing.T) {
	m := NewMatcher(&fakeService{}, nil)

	_, ok := m.Match("Show", 2019, KindTV)
	assert.False(t, ok)
}

func TestVerify_Match(t *testing.T) {
	svc := &fakeService{details: map[string]*Details{
		"1375666": {ID: "1375666", Title: "Inception", Year: 2010, Kind: ProviderKindMovie},
	}}
	m := NewMatcher(svc, nil)

	res, _ := m.Verify("1375666", "inception", 2010)
	assert.Equal(t, VerifyMatch, res)
}

func TestVerify_YearWithinOne(t *testing.T) {
	svc := &fakeService{details: map[string]*Details{
		"42": {ID: "42", Title: "Slow Release", Year: 2011, Kind: ProviderKindMovie},
	}}
	m := NewMatcher(svc, nil)

	res, _ := m.Verify("42", "Slow Release", 2010)
	assert.Equal(t, VerifyMatch, res)
}

func TestVerify_ColonSpacingNormalized(t *testing.T) {
	svc := &fakeService{details: map[string]*Details{
		"99": {ID: "99", Title: "Blade Runner : The Final Cut", Year: 2007, Kind: ProviderKindMovie},
	}}
	m := NewMatcher(svc, nil)

	res, _ := m.Verify("99", "Blade Runner: The Final Cut", 2007)
	assert.Equal(t, VerifyMatch, res)
}

func TestVerify_MismatchCarriesProviderTitle(t *testing.T) {
	svc := &fakeService{details: map[string]*Details{
		"7": {ID: "7", Title: "Completely Different", Year: 2010, Kind: ProviderKindMovie},
	}}
	m := NewMatcher(svc, nil)

	res, providerTitle := m.Verify("7", "Inception", 2010)
	assert.Equal(t, VerifyMismatch, res)
	assert.Equal(t, "Completely Different", providerTitle)
}

func TestVerify_NotFound(t *testing.T) {
	m := NewMatcher(&fakeService{details: map[string]*Details{}}, nil)

	res, _ := m.Verify("0000000", "Ghost", 2000)
	assert.Equal(t, VerifyNotFound, res)
}

func TestVerify_FetchErrorIsNotFound(t *testing.T) {
	m := NewMatcher(&fakeService{fetchErr: errors.New("timeout")}, nil)

	res, _ := m.Verify("1", "Anything", 2020)
	assert.Equal(t, VerifyNotFound, res)
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Inception", "inception"},
		{"Title: Subtitle", "title subtitle"},
		{"Title : Subtitle", "title subtitle"},
		{"Title:Subtitle", "title subtitle"},
		{"  Padded  ", "padded"},
	}

	for _, tt := range tests {
		if got := normalizeTitle(tt.in); got != tt.want {
			t.Errorf("normalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
