package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	RateRepo         RateRepositoryFacade
	TickerRepo       TickerRepositoryFacade
	MemberRepo       MemberRepositoryFacade
	AnnouncementRepo AnnouncementRepositoryFacade
	ReceiptRepo      ReadReceiptRepositoryFacade
	HistoryRepo      HistoryRepositoryFacade
	ActivityRepo     ActivityRepositoryFacade
	SessionRepo      SessionRepositoryFacade
	PresenceRepo     PresenceRepositoryFacade
	SettingsRepo     SettingsRepositoryFacade
	IdentityMirror   IdentityMirrorFacade
}
