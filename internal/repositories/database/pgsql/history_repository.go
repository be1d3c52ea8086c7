package pgsql

import (
	"context"
	"fmt"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxHistoryRepository implements the append-only price history over pgxpool.
type PgxHistoryRepository struct {
	BaseRepository
}

// NewPgxHistoryRepository creates a new PgxHistoryRepository.
func NewPgxHistoryRepository(db *pgxpool.Pool) *PgxHistoryRepository {
	return &PgxHistoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

func (r *PgxHistoryRepository) InsertHistoryBatch(ctx context.Context, entries []domain.HistoryLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin history insert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO history_logs (history_id, item_type, item_name, old_buy, new_buy, old_sell, new_sell,
            old_value, new_value, actor_name, actor_role, group_tag, source, batch_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
    `
	for _, e := range entries {
		if _, err := tx.Exec(ctx, query,
			e.HistoryID, e.ItemType, e.ItemName, e.OldBuy, e.NewBuy, e.OldSell, e.NewSell,
			e.OldValue, e.NewValue, e.ActorName, e.ActorRole, e.GroupTag, e.Source, e.BatchID, e.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert history entry for %q: %w", e.ItemName, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit history insert: %w", err)
	}
	return nil
}

func (r *PgxHistoryRepository) ListHistory(ctx context.Context, limit, offset int) ([]domain.HistoryLog, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT history_id, item_type, item_name, old_buy, new_buy, old_sell, new_sell,
            old_value, new_value, actor_name, actor_role, group_tag, source, batch_id, created_at
        FROM history_logs
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryLog{}
	for rows.Next() {
		var e domain.HistoryLog
		if err := rows.Scan(&e.HistoryID, &e.ItemType, &e.ItemName, &e.OldBuy, &e.NewBuy, &e.OldSell, &e.NewSell,
			&e.OldValue, &e.NewValue, &e.ActorName, &e.ActorRole, &e.GroupTag, &e.Source, &e.BatchID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxHistoryRepository) ClearHistory(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM history_logs;`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
