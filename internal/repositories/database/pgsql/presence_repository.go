package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPresenceRepository implements the online/last-seen flags over pgxpool.
type PgxPresenceRepository struct {
	BaseRepository
}

// NewPgxPresenceRepository creates a new PgxPresenceRepository.
func NewPgxPresenceRepository(db *pgxpool.Pool) *PgxPresenceRepository {
	return &PgxPresenceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PresenceRepositoryFacade = (*PgxPresenceRepository)(nil)

func (r *PgxPresenceRepository) UpsertPresence(ctx context.Context, presence domain.Presence) error {
	query := `
        INSERT INTO user_presence (member_id, online, last_seen)
        VALUES ($1, $2, $3)
        ON CONFLICT (member_id) DO UPDATE SET
            online = EXCLUDED.online,
            last_seen = EXCLUDED.last_seen;
    `
	if _, err := r.Pool.Exec(ctx, query, presence.MemberID, presence.Online, presence.LastSeen); err != nil {
		return fmt.Errorf("failed to upsert presence: %w", err)
	}
	return nil
}

func (r *PgxPresenceRepository) SetOffline(ctx context.Context, memberID string, at time.Time) error {
	query := `
        INSERT INTO user_presence (member_id, online, last_seen)
        VALUES ($1, FALSE, $2)
        ON CONFLICT (member_id) DO UPDATE SET
            online = FALSE,
            last_seen = EXCLUDED.last_seen;
    `
	if _, err := r.Pool.Exec(ctx, query, memberID, at); err != nil {
		return fmt.Errorf("failed to set presence offline: %w", err)
	}
	return nil
}

func (r *PgxPresenceRepository) ListPresence(ctx context.Context) ([]domain.Presence, error) {
	query := `SELECT member_id, online, last_seen FROM user_presence ORDER BY last_seen DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query presence: %w", err)
	}
	defer rows.Close()

	presence := []domain.Presence{}
	for rows.Next() {
		var p domain.Presence
		if err := rows.Scan(&p.MemberID, &p.Online, &p.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan presence row: %w", err)
		}
		presence = append(presence, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating presence rows: %w", rows.Err())
	}
	return presence, nil
}
