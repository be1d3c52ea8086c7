package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSessionRepository implements login session persistence over pgxpool.
type PgxSessionRepository struct {
	BaseRepository
}

// NewPgxSessionRepository creates a new PgxSessionRepository.
func NewPgxSessionRepository(db *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

func (r *PgxSessionRepository) InsertSession(ctx context.Context, session domain.Session) error {
	query := `
        INSERT INTO user_sessions (session_id, member_id, device, login_at, active)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query, session.SessionID, session.MemberID, session.Device, session.LoginAt, session.Active)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) CloseSession(ctx context.Context, sessionID string, logoutAt time.Time) error {
	query := `UPDATE user_sessions SET active = FALSE, logout_at = $1 WHERE session_id = $2;`
	if _, err := r.Pool.Exec(ctx, query, logoutAt, sessionID); err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) ListActiveSessions(ctx context.Context) ([]domain.Session, error) {
	query := `
        SELECT session_id, member_id, device, login_at, logout_at, active
        FROM user_sessions
        WHERE active
        ORDER BY login_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.SessionID, &s.MemberID, &s.Device, &s.LoginAt, &s.LogoutAt, &s.Active); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", rows.Err())
	}
	return sessions, nil
}
