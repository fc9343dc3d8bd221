package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"keyword-dashboard/internal/core/domain"
)

// KeywordRepository defines the persistence layer for keywords and their
// change log. It is an outbound port in hexagonal architecture.
type KeywordRepository interface {
	// ListKeywords returns every keyword, newest first.
	ListKeywords(ctx context.Context) ([]domain.Keyword, error)
	// InsertKeyword stores a new keyword. ID and CreatedAt must be set.
	InsertKeyword(ctx context.Context, kw *domain.Keyword) error
	// SetStatus atomically updates the status of a keyword and appends the
	// matching change log entry. The keyword row is locked for the duration
	// so concurrent transitions serialise. It returns domain.ErrNotFound for
	// an unknown id and domain.ErrTerminalStatus when the keyword is
	// already removed. Requesting the current status fails with a
	// *domain.PersistenceError wrapping domain.ErrStatusUnchanged. The
	// returned entry carries the stored previous status.
	SetStatus(ctx context.Context, id uuid.UUID, status domain.Status, at time.Time) (*domain.ChangeLogEntry, error)
	// ListChangeLog returns the change log of one keyword, oldest first.
	ListChangeLog(ctx context.Context, keywordID uuid.UUID) ([]domain.ChangeLogEntry, error)
	// Counts returns the number of stored documents per collection.
	Counts(ctx context.Context) (*StoreCounts, error)
}

// DirectoryRepository reads the campaign/ad-group directory.
type DirectoryRepository interface {
	// ListEntries returns every (campaign, ad group) pairing ordered by
	// campaign then ad group.
	ListEntries(ctx context.Context) ([]domain.DirectoryEntry, error)
	// AdGroupsByCampaign returns the distinct ad groups of a campaign.
	AdGroupsByCampaign(ctx context.Context, campaign string) ([]string, error)
}

// ChangeNotifier announces committed status transitions to other
// processes.
type ChangeNotifier interface {
	NotifyStatusChange(ctx context.Context, entry domain.ChangeLogEntry) error
}

// StoreCounts is the number of stored rows per collection.
type StoreCounts struct {
	Keywords   int64 `json:"keywords"`
	Directory  int64 `json:"campaignAdGroups"`
	ChangeLogs int64 `json:"changeLogs"`
}
