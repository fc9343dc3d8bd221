package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"keyword-dashboard/internal/core/domain"
	"keyword-dashboard/internal/core/port"
)

var _ port.KeywordRepository = (*KeywordRepository)(nil)

// KeywordRepository implements port.KeywordRepository using pgxpool for
// PostgreSQL.
type KeywordRepository struct {
	pool *pgxpool.Pool
}

// NewKeywordRepository returns a new repository instance.
func NewKeywordRepository(pool *pgxpool.Pool) *KeywordRepository {
	return &KeywordRepository{pool: pool}
}

// ListKeywords returns every keyword, newest first.
func (r *KeywordRepository) ListKeywords(ctx context.Context) ([]domain.Keyword, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, term, match_type, campaign, ad_group, status, created_at
        FROM keywords
        ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, wrapErr("list keywords", err)
	}
	keywords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Keyword, error) {
		var kw domain.Keyword
		err := row.Scan(&kw.ID, &kw.Term, &kw.MatchType, &kw.Campaign, &kw.AdGroup, &kw.Status, &kw.CreatedAt)
		return kw, err
	})
	if err != nil {
		return nil, wrapErr("scan keywords", err)
	}
	return keywords, nil
}

// InsertKeyword stores a new keyword.
func (r *KeywordRepository) InsertKeyword(ctx context.Context, kw *domain.Keyword) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO keywords (id, term, match_type, campaign, ad_group, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		kw.ID, kw.Term, kw.MatchType, kw.Campaign, kw.AdGroup, kw.Status, kw.CreatedAt)
	if err != nil {
		return wrapErr("insert keyword", err)
	}
	return nil
}

// SetStatus updates the status and appends the change log entry in one
// transaction, holding a row lock on the keyword.
func (r *KeywordRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.Status, at time.Time) (entry *domain.ChangeLogEntry, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, wrapErr("begin status transaction", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			entry, err = nil, wrapErr("commit status transaction", cerr)
		}
	}()

	// lock keyword
	var current domain.Status
	err = tx.QueryRow(ctx, `SELECT status FROM keywords WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, wrapErr("lock keyword", err)
	}
	if current.IsTerminal() {
		return nil, domain.ErrTerminalStatus
	}
	if current == status {
		return nil, &domain.PersistenceError{Op: "update keyword status", Err: domain.ErrStatusUnchanged}
	}

	tag, err := tx.Exec(ctx, `UPDATE keywords SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, wrapErr("update keyword status", err)
	}
	if tag.RowsAffected() == 0 {
		err = &domain.PersistenceError{Op: "update keyword status"}
		return nil, err
	}

	entry = &domain.ChangeLogEntry{
		KeywordID: id,
		OldStatus: current,
		NewStatus: status,
		Timestamp: at,
	}
	err = tx.QueryRow(ctx, `
        INSERT INTO change_logs (keyword_id, old_status, new_status, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id`,
		entry.KeywordID, entry.OldStatus, entry.NewStatus, entry.Timestamp).Scan(&entry.ID)
	if err != nil {
		return nil, wrapErr("append change log", err)
	}
	return entry, nil
}

// ListChangeLog returns the change log of one keyword, oldest first.
func (r *KeywordRepository) ListChangeLog(ctx context.Context, keywordID uuid.UUID) ([]domain.ChangeLogEntry, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, keyword_id, old_status, new_status, created_at
        FROM change_logs
        WHERE keyword_id = $1
        ORDER BY created_at, id`, keywordID)
	if err != nil {
		return nil, wrapErr("list change log", err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChangeLogEntry, error) {
		var e domain.ChangeLogEntry
		err := row.Scan(&e.ID, &e.KeywordID, &e.OldStatus, &e.NewStatus, &e.Timestamp)
		return e, err
	})
	if err != nil {
		return nil, wrapErr("scan change log", err)
	}
	return entries, nil
}

// Counts returns the number of rows in each collection.
func (r *KeywordRepository) Counts(ctx context.Context) (*port.StoreCounts, error) {
	var c port.StoreCounts
	err := r.pool.QueryRow(ctx, `
        SELECT
            (SELECT count(*) FROM keywords),
            (SELECT count(*) FROM campaign_ad_groups),
            (SELECT count(*) FROM change_logs)`).
		Scan(&c.Keywords, &c.Directory, &c.ChangeLogs)
	if err != nil {
		return nil, wrapErr("count documents", err)
	}
	return &c, nil
}

// wrapErr classifies a pgx error. Connection failures become
// domain.ErrUpstreamUnavailable, everything else a *domain.PersistenceError.
func wrapErr(op string, err error) error {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return errors.Join(domain.ErrUpstreamUnavailable, &domain.PersistenceError{Op: op, Err: err})
	}
	return &domain.PersistenceError{Op: op, Err: err}
}
