package pgsql

import (
	"context"
	"fmt"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxActivityRepository implements the audit activity feed over pgxpool.
type PgxActivityRepository struct {
	BaseRepository
}

// NewPgxActivityRepository creates a new PgxActivityRepository.
func NewPgxActivityRepository(db *pgxpool.Pool) *PgxActivityRepository {
	return &PgxActivityRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ActivityRepositoryFacade = (*PgxActivityRepository)(nil)

const insertActivityQuery = `
        INSERT INTO activities (activity_id, member_id, actor_name, actor_role, action, detail, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `

func (r *PgxActivityRepository) InsertActivity(ctx context.Context, a domain.Activity) error {
	_, err := r.Pool.Exec(ctx, insertActivityQuery,
		a.ActivityID, a.MemberID, a.ActorName, a.ActorRole, a.Action, a.Detail, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

func (r *PgxActivityRepository) InsertActivityBatch(ctx context.Context, activities []domain.Activity) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin activity insert: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range activities {
		if _, err := tx.Exec(ctx, insertActivityQuery,
			a.ActivityID, a.MemberID, a.ActorName, a.ActorRole, a.Action, a.Detail, a.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert activity %q: %w", a.Action, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit activity insert: %w", err)
	}
	return nil
}

func (r *PgxActivityRepository) ListActivities(ctx context.Context, limit, offset int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT activity_id, member_id, actor_name, actor_role, action, detail, created_at
        FROM activities
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ActivityID, &a.MemberID, &a.ActorName, &a.ActorRole, &a.Action, &a.Detail, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", rows.Err())
	}
	return activities, nil
}
