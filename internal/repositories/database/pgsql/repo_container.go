package pgsql

import (
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository over one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateRepo:         NewPgxRateRepository(pool),
		TickerRepo:       NewPgxTickerRepository(pool),
		MemberRepo:       NewPgxMemberRepository(pool),
		AnnouncementRepo: NewPgxAnnouncementRepository(pool),
		ReceiptRepo:      NewPgxReadReceiptRepository(pool),
		HistoryRepo:      NewPgxHistoryRepository(pool),
		ActivityRepo:     NewPgxActivityRepository(pool),
		SessionRepo:      NewPgxSessionRepository(pool),
		PresenceRepo:     NewPgxPresenceRepository(pool),
		SettingsRepo:     NewPgxSettingsRepository(pool),
		IdentityMirror:   NewPgxIdentityMirror(pool),
	}
}
