package port

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"keyword-dashboard/internal/core/aggregate"
	"keyword-dashboard/internal/core/domain"
)

// KeywordUseCase defines the business operations exposed by the keyword
// dashboard. This interface represents the primary port into the
// application domain. Mock implementations are generated for testing.
type KeywordUseCase interface {
	// ListKeywords returns the full keyword snapshot, newest first.
	ListKeywords(ctx context.Context) ([]domain.Keyword, error)

	// CreateKeyword validates req and stores a new keyword. Status
	// defaults to Draft. No change log entry is written. Invalid input
	// yields a *domain.ValidationError and no storage write.
	CreateKeyword(ctx context.Context, req CreateKeywordReq) (*domain.Keyword, error)

	// SetStatus moves a keyword to a new status and records the
	// transition in the change log within the same transaction.
	SetStatus(ctx context.Context, req SetStatusReq) error

	// ChangeLog returns the recorded transitions of one keyword.
	ChangeLog(ctx context.Context, keywordID string) ([]domain.ChangeLogEntry, error)

	// Browse filters the snapshot and returns one page of the result.
	Browse(ctx context.Context, req BrowseReq) (*BrowseResp, error)

	// Summarize computes status, campaign and match-type statistics over
	// the snapshot.
	Summarize(ctx context.Context) (*aggregate.Summary, error)

	// ListDirectory returns the campaign/ad-group pairings.
	ListDirectory(ctx context.Context) ([]domain.DirectoryEntry, error)

	// AdGroupsForCampaign returns the distinct ad groups of a campaign.
	AdGroupsForCampaign(ctx context.Context, campaign string) ([]string, error)

	// StoreStatus reports per-collection document counts.
	StoreStatus(ctx context.Context) (*StoreCounts, error)
}

// CreateKeywordReq is the request schema of keyword creation. Enumerated
// values accept canonical or localised labels.
type CreateKeywordReq struct {
	Term      string `json:"term"`
	MatchType string `json:"matchType"`
	Campaign  string `json:"campaign"`
	AdGroup   string `json:"adGroup,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Validate implements validation.Validatable.
func (r CreateKeywordReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Term,
			validation.By(notBlank("term_required")),
		),
		validation.Field(&r.MatchType,
			validation.Required.Error("match_type_required"),
			validation.By(parses(domain.ParseMatchType, "invalid_match_type")),
		),
		validation.Field(&r.Campaign,
			validation.By(notBlank("campaign_required")),
		),
		validation.Field(&r.Status,
			validation.By(parses(domain.ParseStatus, "invalid_status")),
		),
	)
}

// SetStatusReq is the request schema of a status change. OldStatus is the
// status the caller believes the keyword has.
type SetStatusReq struct {
	KeywordID string `json:"keywordId"`
	NewStatus string `json:"newStatus"`
	OldStatus string `json:"oldStatus"`
}

// Validate implements validation.Validatable.
func (r SetStatusReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.KeywordID,
			validation.Required.Error("keyword_id_required"),
			is.UUID.Error("invalid_keyword_id"),
		),
		validation.Field(&r.NewStatus,
			validation.Required.Error("new_status_required"),
			validation.By(transitionTarget),
		),
		validation.Field(&r.OldStatus,
			validation.Required.Error("old_status_required"),
			validation.By(parses(domain.ParseStatus, "invalid_status")),
		),
	)
}

// BrowseReq carries filter criteria and the requested page.
type BrowseReq struct {
	Criteria aggregate.Criteria
	Page     int
	PageSize int
}

// Validate implements validation.Validatable. Status and match type
// criteria must be "all" or a recognised label.
func (r BrowseReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Criteria, validation.By(criteriaLabels)),
		validation.Field(&r.PageSize, validation.Max(1000).Error("page_size_too_large")),
	)
}

func criteriaLabels(value interface{}) error {
	c, _ := value.(aggregate.Criteria)
	errs := validation.Errors{}
	if !aggregate.IsAll(c.Status) {
		errs["status"] = parses(domain.ParseStatus, "invalid_status")(c.Status)
	}
	if !aggregate.IsAll(c.MatchType) {
		errs["matchType"] = parses(domain.ParseMatchType, "invalid_match_type")(c.MatchType)
	}
	return errs.Filter()
}

// BrowseResp is one page of filtered keywords.
type BrowseResp = aggregate.Page[domain.Keyword]

func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		if s, _ := value.(string); strings.TrimSpace(s) == "" {
			return validation.NewError(code, "cannot be blank")
		}
		return nil
	}
}

func parses[T any](parse func(string) (T, error), code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if _, err := parse(s); err != nil {
			return validation.NewError(code, err.Error())
		}
		return nil
	}
}

func transitionTarget(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	st, err := domain.ParseStatus(s)
	if err != nil {
		return validation.NewError("invalid_status", err.Error())
	}
	if !st.IsTransitionTarget() {
		return validation.NewError("invalid_transition_target",
			"must be one of Active, Paused, Removed")
	}
	return nil
}

// AsValidationError wraps a failed Validate result in a
// *domain.ValidationError. A nil error stays nil.
func AsValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return err
	}
	return &domain.ValidationError{Err: err}
}
