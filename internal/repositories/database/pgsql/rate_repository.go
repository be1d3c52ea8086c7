package pgsql

import (
	"context"
	"fmt"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRateRepository implements the rate repository over pgxpool.
type PgxRateRepository struct {
	BaseRepository
}

// NewPgxRateRepository creates a new PgxRateRepository.
func NewPgxRateRepository(db *pgxpool.Pool) *PgxRateRepository {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

func (r *PgxRateRepository) ListRates(ctx context.Context) ([]domain.Rate, error) {
	query := `
        SELECT rate_id, name, buy, sell, category, change, visible, position
        FROM rates
        ORDER BY position ASC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.Rate{}
	for rows.Next() {
		var rate domain.Rate
		if err := rows.Scan(&rate.RateID, &rate.Name, &rate.Buy, &rate.Sell, &rate.Category, &rate.Change, &rate.Visible, &rate.Position); err != nil {
			return nil, fmt.Errorf("failed to scan rate row: %w", err)
		}
		rates = append(rates, rate)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating rate rows: %w", rows.Err())
	}
	return rates, nil
}

// UpsertRates writes the full submitted set in one transaction so a mid-save
// failure cannot leave the board half updated.
func (r *PgxRateRepository) UpsertRates(ctx context.Context, rates []domain.Rate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rate upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO rates (rate_id, name, buy, sell, category, change, visible, position)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (rate_id) DO UPDATE SET
            name = EXCLUDED.name,
            buy = EXCLUDED.buy,
            sell = EXCLUDED.sell,
            category = EXCLUDED.category,
            change = EXCLUDED.change,
            visible = EXCLUDED.visible,
            position = EXCLUDED.position;
    `
	for _, rate := range rates {
		if _, err := tx.Exec(ctx, query,
			rate.RateID, rate.Name, rate.Buy, rate.Sell, rate.Category, rate.Change, rate.Visible, rate.Position,
		); err != nil {
			return fmt.Errorf("failed to upsert rate %q: %w", rate.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rate upsert: %w", err)
	}
	return nil
}

// DeleteRatesNotIn removes rows whose ids vanished from the submitted set.
// An empty keep list clears the table, matching the wholesale-save semantics.
func (r *PgxRateRepository) DeleteRatesNotIn(ctx context.Context, keepIDs []string) error {
	query := `DELETE FROM rates WHERE NOT (rate_id = ANY($1));`
	if _, err := r.Pool.Exec(ctx, query, keepIDs); err != nil {
		return fmt.Errorf("failed to delete removed rates: %w", err)
	}
	return nil
}
