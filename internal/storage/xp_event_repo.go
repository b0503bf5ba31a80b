package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// XPEventRepo is the append-only ledger of XP awards. Rows are written in
// the same transaction as the state blob change they describe.
type XPEventRepo struct {
	db DBTX
}

func NewXPEventRepo(db DBTX) *XPEventRepo {
	return &XPEventRepo{db: db}
}

func (r *XPEventRepo) Insert(ctx context.Context, e XPEvent) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO xp_events (occurred_at, reason, amount, xp_total, level)
		VALUES (?, ?, ?, ?, ?)
	`, e.OccurredAt.UTC(), e.Reason, e.Amount, e.XPTotal, e.Level)
	if err != nil {
		return 0, fmt.Errorf("xp event insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("xp event last insert id: %w", err)
	}
	return id, nil
}

// List returns the newest events first. limit <= 0 means no limit.
func (r *XPEventRepo) List(ctx context.Context, limit int) ([]XPEvent, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, occurred_at, reason, amount, xp_total, level
		FROM xp_events
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("xp event list: %w", err)
	}
	defer rows.Close()

	var out []XPEvent
	for rows.Next() {
		var e XPEvent
		if err := rows.Scan(&e.ID, &e.OccurredAt, &e.Reason, &e.Amount, &e.XPTotal, &e.Level); err != nil {
			return nil, fmt.Errorf("xp event scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("xp event rows: %w", err)
	}
	return out, nil
}

func (r *XPEventRepo) Last(ctx context.Context) (*XPEvent, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, occurred_at, reason, amount, xp_total, level
		FROM xp_events
		ORDER BY id DESC
		LIMIT 1
	`)
	var e XPEvent
	if err := row.Scan(&e.ID, &e.OccurredAt, &e.Reason, &e.Amount, &e.XPTotal, &e.Level); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("xp event last: %w", err)
	}
	return &e, nil
}

// DeleteAll clears the ledger; used by a full reset.
func (r *XPEventRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM xp_events`); err != nil {
		return fmt.Errorf("xp event delete: %w", err)
	}
	return nil
}
