package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/apperrors"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAnnouncementRepository implements the announcement repository over pgxpool.
type PgxAnnouncementRepository struct {
	BaseRepository
}

// NewPgxAnnouncementRepository creates a new PgxAnnouncementRepository.
func NewPgxAnnouncementRepository(db *pgxpool.Pool) *PgxAnnouncementRepository {
	return &PgxAnnouncementRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AnnouncementRepositoryFacade = (*PgxAnnouncementRepository)(nil)

func (r *PgxAnnouncementRepository) ListAnnouncementsByGroups(ctx context.Context, groups []domain.TargetGroup) ([]domain.Announcement, error) {
	if len(groups) == 0 {
		return []domain.Announcement{}, nil
	}
	groupStrings := make([]string, 0, len(groups))
	for _, g := range groups {
		groupStrings = append(groupStrings, string(g))
	}

	query := `
        SELECT announcement_id, title, message, type, target_group, flash, toast, bell, created_at, created_by
        FROM announcements
        WHERE target_group = ANY($1)
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, groupStrings)
	if err != nil {
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	announcements := []domain.Announcement{}
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.AnnouncementID, &a.Title, &a.Message, &a.Type, &a.TargetGroup,
			&a.Options.Flash, &a.Options.Toast, &a.Options.Bell, &a.CreatedAt, &a.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", rows.Err())
	}
	return announcements, nil
}

func (r *PgxAnnouncementRepository) FindAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	query := `
        SELECT announcement_id, title, message, type, target_group, flash, toast, bell, created_at, created_by
        FROM announcements
        WHERE announcement_id = $1;
    `
	var a domain.Announcement
	err := r.Pool.QueryRow(ctx, query, announcementID).Scan(&a.AnnouncementID, &a.Title, &a.Message, &a.Type,
		&a.TargetGroup, &a.Options.Flash, &a.Options.Toast, &a.Options.Bell, &a.CreatedAt, &a.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find announcement by id: %w", err)
	}
	return &a, nil
}

func (r *PgxAnnouncementRepository) InsertAnnouncement(ctx context.Context, a domain.Announcement) error {
	query := `
        INSERT INTO announcements (announcement_id, title, message, type, target_group, flash, toast, bell, created_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		a.AnnouncementID, a.Title, a.Message, a.Type, a.TargetGroup,
		a.Options.Flash, a.Options.Toast, a.Options.Bell, a.CreatedAt, a.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert announcement: %w", err)
	}
	return nil
}

func (r *PgxAnnouncementRepository) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	query := `DELETE FROM announcements WHERE announcement_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, announcementID)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("announcement not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
