// Package aggregate derives filtered views and summary statistics from an
// in-memory snapshot of keywords. Every function is pure and read-only.
package aggregate

import (
	"strings"

	"keyword-dashboard/internal/core/domain"
)

// All is the criterion value that disables a filter. An empty value has the
// same effect.
const All = "all"

// Criteria selects keywords. Supplied criteria are combined with logical AND.
type Criteria struct {
	// SearchText is matched as a case-insensitive substring of the term.
	SearchText string
	Status     string
	Campaign   string
	AdGroup    string
	MatchType  string
	// IncludeRemoved keeps Removed keywords, which are otherwise dropped
	// regardless of the other criteria.
	IncludeRemoved bool
}

// Filter returns the keywords satisfying c, preserving snapshot order.
// Status and match type criteria accept any label the domain parsers
// recognise; an unrecognised label matches nothing.
func Filter(keywords []domain.Keyword, c Criteria) []domain.Keyword {
	c.Status = canonical(c.Status, domain.ParseStatus)
	c.MatchType = canonical(c.MatchType, domain.ParseMatchType)
	search := strings.ToLower(c.SearchText)
	out := make([]domain.Keyword, 0, len(keywords))
	for _, kw := range keywords {
		if !c.IncludeRemoved && kw.Status == domain.StatusRemoved {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(kw.Term), search) {
			continue
		}
		if !matches(c.Status, string(kw.Status)) ||
			!matches(c.Campaign, kw.Campaign) ||
			!matches(c.AdGroup, kw.AdGroup) ||
			!matches(c.MatchType, string(kw.MatchType)) {
			continue
		}
		out = append(out, kw)
	}
	return out
}

func matches(criterion, value string) bool {
	return IsAll(criterion) || criterion == value
}

// IsAll reports whether criterion disables its filter.
func IsAll(criterion string) bool {
	return criterion == "" || strings.EqualFold(criterion, All)
}

func canonical[T ~string](criterion string, parse func(string) (T, error)) string {
	if IsAll(criterion) {
		return criterion
	}
	if v, err := parse(criterion); err == nil {
		return string(v)
	}
	return criterion
}
