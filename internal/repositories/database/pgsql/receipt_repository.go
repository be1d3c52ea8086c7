package pgsql

import (
	"context"
	"fmt"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReadReceiptRepository implements per-member read state over pgxpool.
type PgxReadReceiptRepository struct {
	BaseRepository
}

// NewPgxReadReceiptRepository creates a new PgxReadReceiptRepository.
func NewPgxReadReceiptRepository(db *pgxpool.Pool) *PgxReadReceiptRepository {
	return &PgxReadReceiptRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ReadReceiptRepositoryFacade = (*PgxReadReceiptRepository)(nil)

func (r *PgxReadReceiptRepository) ListReceiptsForMember(ctx context.Context, memberID string) ([]domain.ReadReceipt, error) {
	query := `
        SELECT member_id, announcement_id, is_read, read_at
        FROM user_notifications
        WHERE member_id = $1;
    `
	rows, err := r.Pool.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to query read receipts: %w", err)
	}
	defer rows.Close()

	receipts := []domain.ReadReceipt{}
	for rows.Next() {
		var receipt domain.ReadReceipt
		if err := rows.Scan(&receipt.MemberID, &receipt.AnnouncementID, &receipt.IsRead, &receipt.ReadAt); err != nil {
			return nil, fmt.Errorf("failed to scan read receipt row: %w", err)
		}
		receipts = append(receipts, receipt)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating read receipt rows: %w", rows.Err())
	}
	return receipts, nil
}

const upsertReceiptQuery = `
        INSERT INTO user_notifications (member_id, announcement_id, is_read, read_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (member_id, announcement_id) DO UPDATE SET
            is_read = EXCLUDED.is_read,
            read_at = EXCLUDED.read_at;
    `

func (r *PgxReadReceiptRepository) UpsertReceipt(ctx context.Context, receipt domain.ReadReceipt) error {
	_, err := r.Pool.Exec(ctx, upsertReceiptQuery, receipt.MemberID, receipt.AnnouncementID, receipt.IsRead, receipt.ReadAt)
	if err != nil {
		return fmt.Errorf("failed to upsert read receipt: %w", err)
	}
	return nil
}

func (r *PgxReadReceiptRepository) UpsertReceipts(ctx context.Context, receipts []domain.ReadReceipt) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin receipt upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, receipt := range receipts {
		if _, err := tx.Exec(ctx, upsertReceiptQuery, receipt.MemberID, receipt.AnnouncementID, receipt.IsRead, receipt.ReadAt); err != nil {
			return fmt.Errorf("failed to upsert read receipt for %q: %w", receipt.AnnouncementID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit receipt upsert: %w", err)
	}
	return nil
}
