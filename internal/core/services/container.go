package services

import (
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized
// dependencies. liveRates is created by the caller because its poll loop has
// to be started alongside the other background goroutines.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, liveRates portssvc.LiveRatesSvcFacade) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.MemberRepo, repos.SessionRepo, repos.PresenceRepo, repos.ActivityRepo)
	container.Exchange = NewExchangeService(repos.RateRepo, repos.TickerRepo, repos.HistoryRepo, repos.ActivityRepo, repos.SettingsRepo)
	container.Member = NewMemberService(repos.MemberRepo, repos.IdentityMirror)
	container.Announcement = NewAnnouncementService(repos.AnnouncementRepo, repos.ReceiptRepo)
	container.Presence = NewPresenceService(repos.PresenceRepo)
	container.History = NewHistoryService(repos.HistoryRepo, repos.ActivityRepo)
	container.LiveRates = liveRates

	return container
}
