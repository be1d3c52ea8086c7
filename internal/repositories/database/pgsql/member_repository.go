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

// PgxMemberRepository implements the member repository over pgxpool.
type PgxMemberRepository struct {
	BaseRepository
}

// NewPgxMemberRepository creates a new PgxMemberRepository.
func NewPgxMemberRepository(db *pgxpool.Pool) *PgxMemberRepository {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

const memberColumns = `member_id, name, username, password_hash, role, status, shop_name, email, created_at`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.MemberID, &m.Name, &m.Username, &m.PasswordHash, &m.Role, &m.Status, &m.ShopName, &m.Email, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.MemberID, &m.Name, &m.Username, &m.PasswordHash, &m.Role, &m.Status, &m.ShopName, &m.Email, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", rows.Err())
	}
	return members, nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1;`
	member, err := scanMember(r.Pool.QueryRow(ctx, query, memberID))
	if err != nil {
		return nil, fmt.Errorf("failed to find member by id: %w", err)
	}
	return member, nil
}

func (r *PgxMemberRepository) FindMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE username = $1;`
	member, err := scanMember(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		return nil, fmt.Errorf("failed to find member by username: %w", err)
	}
	return member, nil
}

func (r *PgxMemberRepository) UpsertMembers(ctx context.Context, members []domain.Member) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin member upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO members (member_id, name, username, password_hash, role, status, shop_name, email, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (member_id) DO UPDATE SET
            name = EXCLUDED.name,
            username = EXCLUDED.username,
            password_hash = EXCLUDED.password_hash,
            role = EXCLUDED.role,
            status = EXCLUDED.status,
            shop_name = EXCLUDED.shop_name,
            email = EXCLUDED.email;
    `
	for _, m := range members {
		if _, err := tx.Exec(ctx, query,
			m.MemberID, m.Name, m.Username, m.PasswordHash, m.Role, m.Status, m.ShopName, m.Email, m.CreatedAt,
		); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("username %q is already taken: %w", m.Username, apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to upsert member %q: %w", m.Username, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit member upsert: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMembersNotIn(ctx context.Context, keepIDs []string) error {
	query := `DELETE FROM members WHERE NOT (member_id = ANY($1));`
	if _, err := r.Pool.Exec(ctx, query, keepIDs); err != nil {
		return fmt.Errorf("failed to delete removed members: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) UpdatePasswordHash(ctx context.Context, memberID string, passwordHash string) error {
	query := `UPDATE members SET password_hash = $1 WHERE member_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, passwordHash, memberID)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxMemberRepository) UpdateProfile(ctx context.Context, memberID string, name, shopName, email string) error {
	query := `UPDATE members SET name = $1, shop_name = $2, email = $3 WHERE member_id = $4;`
	cmdTag, err := r.Pool.Exec(ctx, query, name, shopName, email, memberID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("member not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
