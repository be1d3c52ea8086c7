package pgsql

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxIdentityMirror keeps the auth_credentials table in step with the members
// table after a password change. Callers treat failures as non-fatal.
type PgxIdentityMirror struct {
	BaseRepository
}

// NewPgxIdentityMirror creates a new PgxIdentityMirror.
func NewPgxIdentityMirror(db *pgxpool.Pool) *PgxIdentityMirror {
	return &PgxIdentityMirror{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.IdentityMirrorFacade = (*PgxIdentityMirror)(nil)

func (r *PgxIdentityMirror) MirrorPassword(ctx context.Context, memberID string, passwordHash string) error {
	query := `
        INSERT INTO auth_credentials (member_id, password_hash, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (member_id) DO UPDATE SET
            password_hash = EXCLUDED.password_hash,
            updated_at = EXCLUDED.updated_at;
    `
	if _, err := r.Pool.Exec(ctx, query, memberID, passwordHash, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to mirror password for member %q: %w", memberID, err)
	}
	return nil
}
