package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Keyword represents one targeting term within a campaign. Campaign and
// AdGroup are denormalised names matched by value, not foreign keys.
type Keyword struct {
	ID        uuid.UUID `json:"id"`
	Term      string    `json:"term"`
	MatchType MatchType `json:"matchType"`
	Campaign  string    `json:"campaign"`
	AdGroup   string    `json:"adGroup,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// MatchType is the matching strategy that decides which search queries a
// keyword targets.
type MatchType string

const (
	MatchExact  MatchType = "Exact"
	MatchPhrase MatchType = "Phrase"
	MatchBroad  MatchType = "Broad"
)

// MatchTypes lists the recognised match types in display order.
var MatchTypes = []MatchType{MatchExact, MatchPhrase, MatchBroad}

var matchTypeAliases = map[string]MatchType{
	"exact":          MatchExact,
	"exakt":          MatchExact,
	"exaktmatchning": MatchExact,
	"phrase":         MatchPhrase,
	"fras":           MatchPhrase,
	"frasmatchning":  MatchPhrase,
	"broad":          MatchBroad,
	"bred":           MatchBroad,
	"bredmatchning":  MatchBroad,
}

// ParseMatchType converts a canonical or localised label to a MatchType.
func ParseMatchType(s string) (MatchType, error) {
	if mt, ok := matchTypeAliases[normalizeLabel(s)]; ok {
		return mt, nil
	}
	return "", fmt.Errorf("unknown match type %q", s)
}

// Status is the lifecycle state of a keyword. Removed is terminal.
type Status string

const (
	StatusDraft       Status = "Draft"
	StatusUnderReview Status = "UnderReview"
	StatusActive      Status = "Active"
	StatusPaused      Status = "Paused"
	StatusRemoved     Status = "Removed"
)

// Statuses lists the recognised statuses in display order.
var Statuses = []Status{StatusDraft, StatusUnderReview, StatusActive, StatusPaused, StatusRemoved}

var statusAliases = map[string]Status{
	"draft":           StatusDraft,
	"underreview":     StatusUnderReview,
	"undergranskning": StatusUnderReview,
	"active":          StatusActive,
	"aktiv":           StatusActive,
	"aktiverad":       StatusActive,
	"paused":          StatusPaused,
	"pausad":          StatusPaused,
	"removed":         StatusRemoved,
	"borttagen":       StatusRemoved,
}

// ParseStatus converts a canonical or localised label to a Status.
func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[normalizeLabel(s)]; ok {
		return st, nil
	}
	return "", fmt.Errorf("unknown keyword status %q", s)
}

// IsTerminal reports whether no further transitions may leave s.
func (s Status) IsTerminal() bool { return s == StatusRemoved }

// IsTransitionTarget reports whether s may be requested through a status
// change. Draft and UnderReview are only reachable at creation.
func (s Status) IsTransitionTarget() bool {
	switch s {
	case StatusActive, StatusPaused, StatusRemoved:
		return true
	}
	return false
}

// IsTransitionAllowed returns true when a keyword in status from may be
// moved to status to.
func IsTransitionAllowed(from, to Status) bool {
	return !from.IsTerminal() && to.IsTransitionTarget()
}

func normalizeLabel(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
