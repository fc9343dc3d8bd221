package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"keyword-dashboard/internal/core/domain"
	"keyword-dashboard/internal/core/port"
)

var _ port.DirectoryRepository = (*DirectoryRepository)(nil)

// DirectoryRepository implements port.DirectoryRepository on the
// campaign_ad_groups table.
type DirectoryRepository struct {
	pool *pgxpool.Pool
}

// NewDirectoryRepository returns a new repository instance.
func NewDirectoryRepository(pool *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{pool: pool}
}

// ListEntries returns every directory row ordered by campaign, ad group.
func (r *DirectoryRepository) ListEntries(ctx context.Context) ([]domain.DirectoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign, ad_group
        FROM campaign_ad_groups
        ORDER BY campaign, ad_group, id`)
	if err != nil {
		return nil, wrapErr("list directory", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DirectoryEntry, error) {
		var e domain.DirectoryEntry
		err := row.Scan(&e.ID, &e.Campaign, &e.AdGroup)
		return e, err
	})
	if err != nil {
		return nil, wrapErr("scan directory", err)
	}
	return entries, nil
}

// AdGroupsByCampaign returns the distinct ad groups of a campaign in
// lexicographic order.
func (r *DirectoryRepository) AdGroupsByCampaign(ctx context.Context, campaign string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT DISTINCT ad_group
        FROM campaign_ad_groups
        WHERE campaign = $1
        ORDER BY ad_group`, campaign)
	if err != nil {
		return nil, wrapErr("list ad groups", err)
	}
	groups, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrapErr("scan ad groups", err)
	}
	return groups, nil
}
