package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"keyword-dashboard/internal/core/aggregate"
	"keyword-dashboard/internal/core/domain"
	"keyword-dashboard/internal/core/port"
	"keyword-dashboard/internal/metrics"
)

var _ port.KeywordUseCase = (*KeywordUseCase)(nil)

// KeywordUseCase provides the keyword lifecycle and the read-side views.
// It orchestrates the repositories to implement port.KeywordUseCase.
type KeywordUseCase struct {
	keywords  port.KeywordRepository
	directory port.DirectoryRepository
	// notifier may be nil, in which case transitions are not announced.
	notifier port.ChangeNotifier
	logger   *slog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// NewKeywordUseCase creates a new usecase with the provided repositories.
// notifier is optional.
func NewKeywordUseCase(
	keywords port.KeywordRepository,
	directory port.DirectoryRepository,
	notifier port.ChangeNotifier,
	logger *slog.Logger,
) *KeywordUseCase {
	return &KeywordUseCase{
		keywords:  keywords,
		directory: directory,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.New,
	}
}

// ListKeywords returns the full keyword snapshot, newest first.
func (u *KeywordUseCase) ListKeywords(ctx context.Context) ([]domain.Keyword, error) {
	return u.keywords.ListKeywords(ctx)
}

// CreateKeyword validates the request and inserts a new keyword with a
// fresh id. Nothing is written when validation fails.
func (u *KeywordUseCase) CreateKeyword(ctx context.Context, req port.CreateKeywordReq) (*domain.Keyword, error) {
	if err := req.Validate(); err != nil {
		return nil, port.AsValidationError(err)
	}
	matchType, _ := domain.ParseMatchType(req.MatchType)
	status := domain.StatusDraft
	if req.Status != "" {
		status, _ = domain.ParseStatus(req.Status)
	}

	kw := &domain.Keyword{
		ID:        u.newID(),
		Term:      req.Term,
		MatchType: matchType,
		Campaign:  req.Campaign,
		AdGroup:   req.AdGroup,
		Status:    status,
		CreatedAt: u.now().UTC(),
	}
	if err := u.keywords.InsertKeyword(ctx, kw); err != nil {
		return nil, err
	}
	metrics.KeywordsCreatedTotal.WithLabelValues(string(kw.MatchType), string(kw.Status)).Inc()
	u.logger.Info("keyword created",
		slog.String("keyword_id", kw.ID.String()),
		slog.String("campaign", kw.Campaign),
		slog.String("status", string(kw.Status)),
	)
	return kw, nil
}

// SetStatus applies a status transition. Toggling between Active and
// Paused and removing a keyword all go through here. The stored status
// and the change log entry are written in one transaction by the
// repository; the notifier is called afterwards and its failure is only
// logged.
func (u *KeywordUseCase) SetStatus(ctx context.Context, req port.SetStatusReq) error {
	if err := req.Validate(); err != nil {
		return port.AsValidationError(err)
	}
	id, _ := uuid.Parse(req.KeywordID)
	newStatus, _ := domain.ParseStatus(req.NewStatus)
	claimedOld, _ := domain.ParseStatus(req.OldStatus)

	entry, err := u.keywords.SetStatus(ctx, id, newStatus, u.now().UTC())
	if err != nil {
		metrics.StatusTransitionFailuresTotal.WithLabelValues(string(newStatus)).Inc()
		return err
	}

	if entry.OldStatus != claimedOld {
		u.logger.Warn("status change with stale old status",
			slog.String("keyword_id", id.String()),
			slog.String("claimed_old_status", string(claimedOld)),
			slog.String("stored_old_status", string(entry.OldStatus)),
		)
	}
	metrics.StatusTransitionsTotal.WithLabelValues(string(entry.OldStatus), string(entry.NewStatus)).Inc()
	u.logger.Info("keyword status changed",
		slog.String("keyword_id", id.String()),
		slog.String("old_status", string(entry.OldStatus)),
		slog.String("new_status", string(entry.NewStatus)),
	)

	if u.notifier != nil {
		if err = u.notifier.NotifyStatusChange(ctx, *entry); err != nil {
			u.logger.Warn("publish status change failed",
				slog.String("keyword_id", id.String()),
				slog.Any("error", err),
			)
		}
	}
	return nil
}

// ChangeLog returns the transitions recorded for one keyword.
func (u *KeywordUseCase) ChangeLog(ctx context.Context, keywordID string) ([]domain.ChangeLogEntry, error) {
	id, err := uuid.Parse(keywordID)
	if err != nil {
		return nil, &domain.ValidationError{Err: fmt.Errorf("keyword id: %w", err)}
	}
	return u.keywords.ListChangeLog(ctx, id)
}

// Browse filters the current snapshot and returns the requested page.
func (u *KeywordUseCase) Browse(ctx context.Context, req port.BrowseReq) (*port.BrowseResp, error) {
	if err := req.Validate(); err != nil {
		return nil, port.AsValidationError(err)
	}
	snapshot, err := u.keywords.ListKeywords(ctx)
	if err != nil {
		return nil, err
	}
	page := aggregate.Paginate(aggregate.Filter(snapshot, req.Criteria), req.PageSize, req.Page)
	return &page, nil
}

// Summarize returns statistics over the current snapshot.
func (u *KeywordUseCase) Summarize(ctx context.Context) (*aggregate.Summary, error) {
	snapshot, err := u.keywords.ListKeywords(ctx)
	if err != nil {
		return nil, err
	}
	summary := aggregate.Summarize(snapshot)
	return &summary, nil
}

// ListDirectory returns the campaign/ad-group pairings.
func (u *KeywordUseCase) ListDirectory(ctx context.Context) ([]domain.DirectoryEntry, error) {
	return u.directory.ListEntries(ctx)
}

// AdGroupsForCampaign returns the distinct ad groups of a campaign. The
// campaign name is required.
func (u *KeywordUseCase) AdGroupsForCampaign(ctx context.Context, campaign string) ([]string, error) {
	if err := validation.Validate(campaign, validation.Required.Error("campaign name is required")); err != nil {
		return nil, &domain.ValidationError{Err: err}
	}
	return u.directory.AdGroupsByCampaign(ctx, campaign)
}

// StoreStatus reports per-collection document counts.
func (u *KeywordUseCase) StoreStatus(ctx context.Context) (*port.StoreCounts, error) {
	return u.keywords.Counts(ctx)
}
