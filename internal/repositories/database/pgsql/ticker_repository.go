package pgsql

import (
	"context"
	"fmt"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTickerRepository implements the ticker repository over pgxpool.
type PgxTickerRepository struct {
	BaseRepository
}

// NewPgxTickerRepository creates a new PgxTickerRepository.
func NewPgxTickerRepository(db *pgxpool.Pool) *PgxTickerRepository {
	return &PgxTickerRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TickerRepositoryFacade = (*PgxTickerRepository)(nil)

func (r *PgxTickerRepository) ListTickerItems(ctx context.Context) ([]domain.TickerItem, error) {
	query := `
        SELECT item_id, name, value, change, up, visible, position
        FROM ticker_items
        ORDER BY position ASC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ticker items: %w", err)
	}
	defer rows.Close()

	items := []domain.TickerItem{}
	for rows.Next() {
		var item domain.TickerItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Value, &item.Change, &item.Up, &item.Visible, &item.Position); err != nil {
			return nil, fmt.Errorf("failed to scan ticker row: %w", err)
		}
		items = append(items, item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ticker rows: %w", rows.Err())
	}
	return items, nil
}

func (r *PgxTickerRepository) UpsertTickerItems(ctx context.Context, items []domain.TickerItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin ticker upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO ticker_items (item_id, name, value, change, up, visible, position)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (item_id) DO UPDATE SET
            name = EXCLUDED.name,
            value = EXCLUDED.value,
            change = EXCLUDED.change,
            up = EXCLUDED.up,
            visible = EXCLUDED.visible,
            position = EXCLUDED.position;
    `
	for _, item := range items {
		if _, err := tx.Exec(ctx, query,
			item.ItemID, item.Name, item.Value, item.Change, item.Up, item.Visible, item.Position,
		); err != nil {
			return fmt.Errorf("failed to upsert ticker item %q: %w", item.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ticker upsert: %w", err)
	}
	return nil
}

func (r *PgxTickerRepository) DeleteTickerItemsNotIn(ctx context.Context, keepIDs []string) error {
	query := `DELETE FROM ticker_items WHERE NOT (item_id = ANY($1));`
	if _, err := r.Pool.Exec(ctx, query, keepIDs); err != nil {
		return fmt.Errorf("failed to delete removed ticker items: %w", err)
	}
	return nil
}
