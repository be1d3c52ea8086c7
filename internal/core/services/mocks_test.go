package services_test

import (
	"context"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
)

// Fn-override mocks: each method delegates to an overridable func field, so a
// test sets only what it cares about. Unset list funcs return empty slices.

type mockRateRepo struct {
	ListRatesFn        func(ctx context.Context) ([]domain.Rate, error)
	UpsertRatesFn      func(ctx context.Context, rates []domain.Rate) error
	DeleteRatesNotInFn func(ctx context.Context, keepIDs []string) error
}

func (m *mockRateRepo) ListRates(ctx context.Context) ([]domain.Rate, error) {
	if m.ListRatesFn != nil {
		return m.ListRatesFn(ctx)
	}
	return []domain.Rate{}, nil
}

func (m *mockRateRepo) UpsertRates(ctx context.Context, rates []domain.Rate) error {
	if m.UpsertRatesFn != nil {
		return m.UpsertRatesFn(ctx, rates)
	}
	return nil
}

func (m *mockRateRepo) DeleteRatesNotIn(ctx context.Context, keepIDs []string) error {
	if m.DeleteRatesNotInFn != nil {
		return m.DeleteRatesNotInFn(ctx, keepIDs)
	}
	return nil
}

type mockTickerRepo struct {
	ListTickerItemsFn        func(ctx context.Context) ([]domain.TickerItem, error)
	UpsertTickerItemsFn      func(ctx context.Context, items []domain.TickerItem) error
	DeleteTickerItemsNotInFn func(ctx context.Context, keepIDs []string) error
}

func (m *mockTickerRepo) ListTickerItems(ctx context.Context) ([]domain.TickerItem, error) {
	if m.ListTickerItemsFn != nil {
		return m.ListTickerItemsFn(ctx)
	}
	return []domain.TickerItem{}, nil
}

func (m *mockTickerRepo) UpsertTickerItems(ctx context.Context, items []domain.TickerItem) error {
	if m.UpsertTickerItemsFn != nil {
		return m.UpsertTickerItemsFn(ctx, items)
	}
	return nil
}

func (m *mockTickerRepo) DeleteTickerItemsNotIn(ctx context.Context, keepIDs []string) error {
	if m.DeleteTickerItemsNotInFn != nil {
		return m.DeleteTickerItemsNotInFn(ctx, keepIDs)
	}
	return nil
}

type mockMemberRepo struct {
	ListMembersFn          func(ctx context.Context) ([]domain.Member, error)
	FindMemberByIDFn       func(ctx context.Context, memberID string) (*domain.Member, error)
	FindMemberByUsernameFn func(ctx context.Context, username string) (*domain.Member, error)
	UpsertMembersFn        func(ctx context.Context, members []domain.Member) error
	DeleteMembersNotInFn   func(ctx context.Context, keepIDs []string) error
	UpdatePasswordHashFn   func(ctx context.Context, memberID string, passwordHash string) error
	UpdateProfileFn        func(ctx context.Context, memberID string, name, shopName, email string) error
}

func (m *mockMemberRepo) ListMembers(ctx context.Context) ([]domain.Member, error) {
	if m.ListMembersFn != nil {
		return m.ListMembersFn(ctx)
	}
	return []domain.Member{}, nil
}

func (m *mockMemberRepo) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.FindMemberByIDFn != nil {
		return m.FindMemberByIDFn(ctx, memberID)
	}
	return nil, nil
}

func (m *mockMemberRepo) FindMemberByUsername(ctx context.Context, username string) (*domain.Member, error) {
	if m.FindMemberByUsernameFn != nil {
		return m.FindMemberByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockMemberRepo) UpsertMembers(ctx context.Context, members []domain.Member) error {
	if m.UpsertMembersFn != nil {
		return m.UpsertMembersFn(ctx, members)
	}
	return nil
}

func (m *mockMemberRepo) DeleteMembersNotIn(ctx context.Context, keepIDs []string) error {
	if m.DeleteMembersNotInFn != nil {
		return m.DeleteMembersNotInFn(ctx, keepIDs)
	}
	return nil
}

func (m *mockMemberRepo) UpdatePasswordHash(ctx context.Context, memberID string, passwordHash string) error {
	if m.UpdatePasswordHashFn != nil {
		return m.UpdatePasswordHashFn(ctx, memberID, passwordHash)
	}
	return nil
}

func (m *mockMemberRepo) UpdateProfile(ctx context.Context, memberID string, name, shopName, email string) error {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, memberID, name, shopName, email)
	}
	return nil
}

type mockIdentityMirror struct {
	MirrorPasswordFn func(ctx context.Context, memberID string, passwordHash string) error
}

func (m *mockIdentityMirror) MirrorPassword(ctx context.Context, memberID string, passwordHash string) error {
	if m.MirrorPasswordFn != nil {
		return m.MirrorPasswordFn(ctx, memberID, passwordHash)
	}
	return nil
}

type mockAnnouncementRepo struct {
	ListAnnouncementsByGroupsFn func(ctx context.Context, groups []domain.TargetGroup) ([]domain.Announcement, error)
	FindAnnouncementByIDFn      func(ctx context.Context, announcementID string) (*domain.Announcement, error)
	InsertAnnouncementFn        func(ctx context.Context, a domain.Announcement) error
	DeleteAnnouncementFn        func(ctx context.Context, announcementID string) error
}

func (m *mockAnnouncementRepo) ListAnnouncementsByGroups(ctx context.Context, groups []domain.TargetGroup) ([]domain.Announcement, error) {
	if m.ListAnnouncementsByGroupsFn != nil {
		return m.ListAnnouncementsByGroupsFn(ctx, groups)
	}
	return []domain.Announcement{}, nil
}

func (m *mockAnnouncementRepo) FindAnnouncementByID(ctx context.Context, announcementID string) (*domain.Announcement, error) {
	if m.FindAnnouncementByIDFn != nil {
		return m.FindAnnouncementByIDFn(ctx, announcementID)
	}
	return nil, nil
}

func (m *mockAnnouncementRepo) InsertAnnouncement(ctx context.Context, a domain.Announcement) error {
	if m.InsertAnnouncementFn != nil {
		return m.InsertAnnouncementFn(ctx, a)
	}
	return nil
}

func (m *mockAnnouncementRepo) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	if m.DeleteAnnouncementFn != nil {
		return m.DeleteAnnouncementFn(ctx, announcementID)
	}
	return nil
}

type mockReceiptRepo struct {
	ListReceiptsForMemberFn func(ctx context.Context, memberID string) ([]domain.ReadReceipt, error)
	UpsertReceiptFn         func(ctx context.Context, receipt domain.ReadReceipt) error
	UpsertReceiptsFn        func(ctx context.Context, receipts []domain.ReadReceipt) error
}

func (m *mockReceiptRepo) ListReceiptsForMember(ctx context.Context, memberID string) ([]domain.ReadReceipt, error) {
	if m.ListReceiptsForMemberFn != nil {
		return m.ListReceiptsForMemberFn(ctx, memberID)
	}
	return []domain.ReadReceipt{}, nil
}

func (m *mockReceiptRepo) UpsertReceipt(ctx context.Context, receipt domain.ReadReceipt) error {
	if m.UpsertReceiptFn != nil {
		return m.UpsertReceiptFn(ctx, receipt)
	}
	return nil
}

func (m *mockReceiptRepo) UpsertReceipts(ctx context.Context, receipts []domain.ReadReceipt) error {
	if m.UpsertReceiptsFn != nil {
		return m.UpsertReceiptsFn(ctx, receipts)
	}
	return nil
}

type mockHistoryRepo struct {
	InsertHistoryBatchFn func(ctx context.Context, entries []domain.HistoryLog) error
	ListHistoryFn        func(ctx context.Context, limit, offset int) ([]domain.HistoryLog, error)
	ClearHistoryFn       func(ctx context.Context) error
}

func (m *mockHistoryRepo) InsertHistoryBatch(ctx context.Context, entries []domain.HistoryLog) error {
	if m.InsertHistoryBatchFn != nil {
		return m.InsertHistoryBatchFn(ctx, entries)
	}
	return nil
}

func (m *mockHistoryRepo) ListHistory(ctx context.Context, limit, offset int) ([]domain.HistoryLog, error) {
	if m.ListHistoryFn != nil {
		return m.ListHistoryFn(ctx, limit, offset)
	}
	return []domain.HistoryLog{}, nil
}

func (m *mockHistoryRepo) ClearHistory(ctx context.Context) error {
	if m.ClearHistoryFn != nil {
		return m.ClearHistoryFn(ctx)
	}
	return nil
}

type mockActivityRepo struct {
	InsertActivityFn      func(ctx context.Context, activity domain.Activity) error
	InsertActivityBatchFn func(ctx context.Context, activities []domain.Activity) error
	ListActivitiesFn      func(ctx context.Context, limit, offset int) ([]domain.Activity, error)
}

func (m *mockActivityRepo) InsertActivity(ctx context.Context, activity domain.Activity) error {
	if m.InsertActivityFn != nil {
		return m.InsertActivityFn(ctx, activity)
	}
	return nil
}

func (m *mockActivityRepo) InsertActivityBatch(ctx context.Context, activities []domain.Activity) error {
	if m.InsertActivityBatchFn != nil {
		return m.InsertActivityBatchFn(ctx, activities)
	}
	return nil
}

func (m *mockActivityRepo) ListActivities(ctx context.Context, limit, offset int) ([]domain.Activity, error) {
	if m.ListActivitiesFn != nil {
		return m.ListActivitiesFn(ctx, limit, offset)
	}
	return []domain.Activity{}, nil
}

type mockSessionRepo struct {
	InsertSessionFn      func(ctx context.Context, session domain.Session) error
	CloseSessionFn       func(ctx context.Context, sessionID string, logoutAt time.Time) error
	ListActiveSessionsFn func(ctx context.Context) ([]domain.Session, error)
}

func (m *mockSessionRepo) InsertSession(ctx context.Context, session domain.Session) error {
	if m.InsertSessionFn != nil {
		return m.InsertSessionFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) CloseSession(ctx context.Context, sessionID string, logoutAt time.Time) error {
	if m.CloseSessionFn != nil {
		return m.CloseSessionFn(ctx, sessionID, logoutAt)
	}
	return nil
}

func (m *mockSessionRepo) ListActiveSessions(ctx context.Context) ([]domain.Session, error) {
	if m.ListActiveSessionsFn != nil {
		return m.ListActiveSessionsFn(ctx)
	}
	return []domain.Session{}, nil
}

type mockPresenceRepo struct {
	UpsertPresenceFn func(ctx context.Context, presence domain.Presence) error
	SetOfflineFn     func(ctx context.Context, memberID string, at time.Time) error
	ListPresenceFn   func(ctx context.Context) ([]domain.Presence, error)
}

func (m *mockPresenceRepo) UpsertPresence(ctx context.Context, presence domain.Presence) error {
	if m.UpsertPresenceFn != nil {
		return m.UpsertPresenceFn(ctx, presence)
	}
	return nil
}

func (m *mockPresenceRepo) SetOffline(ctx context.Context, memberID string, at time.Time) error {
	if m.SetOfflineFn != nil {
		return m.SetOfflineFn(ctx, memberID, at)
	}
	return nil
}

func (m *mockPresenceRepo) ListPresence(ctx context.Context) ([]domain.Presence, error) {
	if m.ListPresenceFn != nil {
		return m.ListPresenceFn(ctx)
	}
	return []domain.Presence{}, nil
}

type mockSettingsRepo struct {
	ListSettingsFn  func(ctx context.Context) ([]domain.Setting, error)
	UpsertSettingFn func(ctx context.Context, setting domain.Setting) error
}

func (m *mockSettingsRepo) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	if m.ListSettingsFn != nil {
		return m.ListSettingsFn(ctx)
	}
	return []domain.Setting{}, nil
}

func (m *mockSettingsRepo) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	if m.UpsertSettingFn != nil {
		return m.UpsertSettingFn(ctx, setting)
	}
	return nil
}
