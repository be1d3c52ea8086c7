package pgsql

import (
	"context"
	"fmt"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSettingsRepository implements board-wide settings persistence over pgxpool.
type PgxSettingsRepository struct {
	BaseRepository
}

// NewPgxSettingsRepository creates a new PgxSettingsRepository.
func NewPgxSettingsRepository(db *pgxpool.Pool) *PgxSettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	query := `SELECT key, value, updated_at, updated_by FROM settings ORDER BY key;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := []domain.Setting{}
	for rows.Next() {
		var s domain.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt, &s.UpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan setting row: %w", err)
		}
		settings = append(settings, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating setting rows: %w", rows.Err())
	}
	return settings, nil
}

func (r *PgxSettingsRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	query := `
        INSERT INTO settings (key, value, updated_at, updated_by)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (key) DO UPDATE SET
            value = EXCLUDED.value,
            updated_at = EXCLUDED.updated_at,
            updated_by = EXCLUDED.updated_by;
    `
	if _, err := r.Pool.Exec(ctx, query, setting.Key, setting.Value, setting.UpdatedAt, setting.UpdatedBy); err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", setting.Key, err)
	}
	return nil
}
