package domain_test

import (
	"errors"
	"testing"

	"keyword-dashboard/internal/core/domain"
)

func TestParseMatchType(t *testing.T) {
	cases := []struct {
		in   string
		want domain.MatchType
	}{
		{"Exact", domain.MatchExact},
		{"exact", domain.MatchExact},
		{"Exakt matchning", domain.MatchExact},
		{"Phrase", domain.MatchPhrase},
		{"Frasmatchning", domain.MatchPhrase},
		{"Broad", domain.MatchBroad},
		{" bred_matchning ", domain.MatchBroad},
	}
	for _, c := range cases {
		got, err := domain.ParseMatchType(c.in)
		if err != nil {
			t.Errorf("ParseMatchType(%q) returned unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMatchType(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseMatchType_Invalid(t *testing.T) {
	for _, in := range []string{"", "fuzzy", "exactly"} {
		if _, err := domain.ParseMatchType(in); err == nil {
			t.Errorf("ParseMatchType(%q) expected error, got nil", in)
		}
	}
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Status
	}{
		{"Draft", domain.StatusDraft},
		{"Under Review", domain.StatusUnderReview},
		{"UnderReview", domain.StatusUnderReview},
		{"Aktiverad", domain.StatusActive},
		{"active", domain.StatusActive},
		{"Pausad", domain.StatusPaused},
		{"Removed", domain.StatusRemoved},
	}
	for _, c := range cases {
		got, err := domain.ParseStatus(c.in)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	for _, in := range []string{"", "all", "deleted"} {
		if _, err := domain.ParseStatus(in); err == nil {
			t.Errorf("ParseStatus(%q) expected error, got nil", in)
		}
	}
}

func TestIsTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to domain.Status
		want     bool
	}{
		{domain.StatusActive, domain.StatusPaused, true},
		{domain.StatusPaused, domain.StatusActive, true},
		{domain.StatusDraft, domain.StatusActive, true},
		{domain.StatusUnderReview, domain.StatusRemoved, true},
		{domain.StatusActive, domain.StatusRemoved, true},
		{domain.StatusActive, domain.StatusDraft, false},
		{domain.StatusPaused, domain.StatusUnderReview, false},
		{domain.StatusRemoved, domain.StatusActive, false},
		{domain.StatusRemoved, domain.StatusRemoved, false},
	}
	for _, c := range cases {
		if got := domain.IsTransitionAllowed(c.from, c.to); got != c.want {
			t.Errorf("IsTransitionAllowed(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestErrorsUnwrap(t *testing.T) {
	inner := errors.New("boom")

	verr := &domain.ValidationError{Err: domain.ErrTerminalStatus}
	if !errors.Is(verr, domain.ErrTerminalStatus) {
		t.Error("ValidationError should unwrap to its cause")
	}

	perr := &domain.PersistenceError{Op: "update keyword status", Err: inner}
	if !errors.Is(perr, inner) {
		t.Error("PersistenceError should unwrap to its cause")
	}
	if got := (&domain.PersistenceError{Op: "update keyword status"}).Error(); got != "update keyword status: no rows affected" {
		t.Errorf("unexpected message %q", got)
	}
}
