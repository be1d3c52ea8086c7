package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExchangeFixture(prev []domain.Rate) (*mockRateRepo, *mockHistoryRepo, *mockActivityRepo) {
	rateRepo := &mockRateRepo{
		ListRatesFn: func(ctx context.Context) ([]domain.Rate, error) {
			return prev, nil
		},
	}
	return rateRepo, &mockHistoryRepo{}, &mockActivityRepo{}
}

func TestUpdateRates_OneHistoryEntryPerPriceChange(t *testing.T) {
	prev := []domain.Rate{
		{RateID: "r1", Name: "Gram Altın", Buy: "100", Sell: "110", Category: domain.RateCategoryGold},
		{RateID: "r2", Name: "USD", Buy: "32", Sell: "33", Category: domain.RateCategoryCurrency},
	}
	rateRepo, historyRepo, activityRepo := newExchangeFixture(prev)

	var history []domain.HistoryLog
	historyRepo.InsertHistoryBatchFn = func(ctx context.Context, entries []domain.HistoryLog) error {
		history = entries
		return nil
	}
	var activities []domain.Activity
	activityRepo.InsertActivityBatchFn = func(ctx context.Context, a []domain.Activity) error {
		activities = a
		return nil
	}

	svc := services.NewExchangeService(rateRepo, &mockTickerRepo{}, historyRepo, activityRepo, &mockSettingsRepo{})
	actor := &domain.Member{MemberID: "m1", Name: "Ayşe", Role: domain.RoleAdmin}

	next := []domain.Rate{
		{RateID: "r1", Name: "Gram Altın", Buy: "105", Sell: "110", Category: domain.RateCategoryGold},
		{RateID: "r2", Name: "USD", Buy: "32", Sell: "33", Category: domain.RateCategoryCurrency},
	}
	batchID, err := svc.UpdateRates(context.Background(), actor, next, domain.SourceManual)

	require.NoError(t, err)
	assert.NotEmpty(t, batchID)

	// Only the gold row moved, so exactly one history entry.
	require.Len(t, history, 1)
	entry := history[0]
	assert.Equal(t, domain.HistoryItemRate, entry.ItemType)
	assert.Equal(t, "Gram Altın", entry.ItemName)
	assert.Equal(t, "100", entry.OldBuy)
	assert.Equal(t, "105", entry.NewBuy)
	assert.Equal(t, "110", entry.OldSell)
	assert.Equal(t, "110", entry.NewSell)
	assert.Equal(t, batchID, entry.BatchID)
	assert.Equal(t, "Ayşe", entry.ActorName)
	assert.Equal(t, domain.SourceManual, entry.Source)

	require.Len(t, activities, 1)
	assert.Equal(t, "kur_guncelleme", activities[0].Action)
}

func TestUpdateRates_SharedBatchID(t *testing.T) {
	prev := []domain.Rate{
		{RateID: "r1", Name: "Gram Altın", Buy: "100", Sell: "110"},
		{RateID: "r2", Name: "USD", Buy: "32", Sell: "33"},
	}
	rateRepo, historyRepo, activityRepo := newExchangeFixture(prev)

	var history []domain.HistoryLog
	historyRepo.InsertHistoryBatchFn = func(ctx context.Context, entries []domain.HistoryLog) error {
		history = entries
		return nil
	}
	svc := services.NewExchangeService(rateRepo, &mockTickerRepo{}, historyRepo, activityRepo, &mockSettingsRepo{})

	next := []domain.Rate{
		{RateID: "r1", Name: "Gram Altın", Buy: "101", Sell: "111"},
		{RateID: "r2", Name: "USD", Buy: "32.5", Sell: "33.5"},
	}
	batchID, err := svc.UpdateRates(context.Background(), nil, next, domain.SourceAPI)

	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, e := range history {
		assert.Equal(t, batchID, e.BatchID)
		assert.Equal(t, "Sistem", e.ActorName)
		assert.Equal(t, domain.SourceAPI, e.Source)
	}
}

func TestUpdateRates_NumericallyEqualPricesAreNotChanges(t *testing.T) {
	prev := []domain.Rate{{RateID: "r1", Name: "Gram Altın", Buy: "100", Sell: "110.0"}}
	rateRepo, historyRepo, activityRepo := newExchangeFixture(prev)

	called := false
	historyRepo.InsertHistoryBatchFn = func(ctx context.Context, entries []domain.HistoryLog) error {
		called = true
		return nil
	}
	svc := services.NewExchangeService(rateRepo, &mockTickerRepo{}, historyRepo, activityRepo, &mockSettingsRepo{})

	next := []domain.Rate{{RateID: "r1", Name: "Gram Altın", Buy: "100.00", Sell: "110"}}
	_, err := svc.UpdateRates(context.Background(), nil, next, domain.SourceManual)

	require.NoError(t, err)
	assert.False(t, called, "reformatting a price must not produce history")
}

func TestUpdateRates_MatchesByNameWhenIDMissing(t *testing.T) {
	prev := []domain.Rate{{RateID: "r1", Name: "Gram Altın", Buy: "100", Sell: "110"}}
	rateRepo, historyRepo, activityRepo := newExchangeFixture(prev)

	var upserted []domain.Rate
	rateRepo.UpsertRatesFn = func(ctx context.Context, rates []domain.Rate) error {
		upserted = rates
		return nil
	}
	var keep []string
	rateRepo.DeleteRatesNotInFn = func(ctx context.Context, keepIDs []string) error {
		keep = keepIDs
		return nil
	}
	var history []domain.HistoryLog
	historyRepo.InsertHistoryBatchFn = func(ctx context.Context, entries []domain.HistoryLog) error {
		history = entries
		return nil
	}
	svc := services.NewExchangeService(rateRepo, &mockTickerRepo{}, historyRepo, activityRepo, &mockSettingsRepo{})

	// Resubmitted without an id: the row keeps its stored identity.
	next := []domain.Rate{{Name: "Gram Altın", Buy: "105", Sell: "110"}}
	_, err := svc.UpdateRates(context.Background(), nil, next, domain.SourceManual)

	require.NoError(t, err)
	require.Len(t, upserted, 1)
	assert.Equal(t, "r1", upserted[0].RateID)
	assert.Equal(t, []string{"r1"}, keep)
	require.Len(t, history, 1)
	assert.Equal(t, "100", history[0].OldBuy)
}

func TestUpdateRates_AssignsPositionsFromPayloadOrder(t *testing.T) {
	rateRepo, historyRepo, activityRepo := newExchangeFixture(nil)

	var upserted []domain.Rate
	rateRepo.UpsertRatesFn = func(ctx context.Context, rates []domain.Rate) error {
		upserted = rates
		return nil
	}
	svc := services.NewExchangeService(rateRepo, &mockTickerRepo{}, historyRepo, activityRepo, &mockSettingsRepo{})

	next := []domain.Rate{
		{Name: "Gram Altın", Buy: "100", Sell: "110"},
		{Name: "Çeyrek", Buy: "1700", Sell: "1750"},
	}
	_, err := svc.UpdateRates(context.Background(), nil, next, domain.SourceManual)

	require.NoError(t, err)
	require.Len(t, upserted, 2)
	assert.Equal(t, 0, upserted[0].Position)
	assert.Equal(t, 1, upserted[1].Position)
	assert.NotEmpty(t, upserted[0].RateID)
}

func TestUpdateRates_HistoryInsertFailureSurfaces(t *testing.T) {
	prev := []domain.Rate{{RateID: "r1", Name: "Gram Altın", Buy: "100", Sell: "110"}}
	rateRepo, historyRepo, activityRepo := newExchangeFixture(prev)

	historyRepo.InsertHistoryBatchFn = func(ctx context.Context, entries []domain.HistoryLog) error {
		return errors.New("insert failed")
	}
	svc := services.NewExchangeService(rateRepo, &mockTickerRepo{}, historyRepo, activityRepo, &mockSettingsRepo{})

	next := []domain.Rate{{RateID: "r1", Name: "Gram Altın", Buy: "200", Sell: "210"}}
	_, err := svc.UpdateRates(context.Background(), nil, next, domain.SourceManual)

	assert.Error(t, err)
}

func TestUpdateRates_ActivityInsertFailureIsLoggedOnly(t *testing.T) {
	prev := []domain.Rate{{RateID: "r1", Name: "Gram Altın", Buy: "100", Sell: "110"}}
	rateRepo, historyRepo, activityRepo := newExchangeFixture(prev)

	activityRepo.InsertActivityBatchFn = func(ctx context.Context, activities []domain.Activity) error {
		return errors.New("insert failed")
	}
	svc := services.NewExchangeService(rateRepo, &mockTickerRepo{}, historyRepo, activityRepo, &mockSettingsRepo{})
	actor := &domain.Member{MemberID: "m1", Name: "Ayşe", Role: domain.RoleAdmin}

	next := []domain.Rate{{RateID: "r1", Name: "Gram Altın", Buy: "200", Sell: "210"}}
	_, err := svc.UpdateRates(context.Background(), actor, next, domain.SourceManual)

	assert.NoError(t, err)
}

func TestUpdateTickerItems_ValueOnlyHistory(t *testing.T) {
	tickerRepo := &mockTickerRepo{
		ListTickerItemsFn: func(ctx context.Context) ([]domain.TickerItem, error) {
			return []domain.TickerItem{{ItemID: "t1", Name: "EUR/USD", Value: "1.08"}}, nil
		},
	}
	historyRepo := &mockHistoryRepo{}
	var history []domain.HistoryLog
	historyRepo.InsertHistoryBatchFn = func(ctx context.Context, entries []domain.HistoryLog) error {
		history = entries
		return nil
	}
	svc := services.NewExchangeService(&mockRateRepo{}, tickerRepo, historyRepo, &mockActivityRepo{}, &mockSettingsRepo{})

	next := []domain.TickerItem{{ItemID: "t1", Name: "EUR/USD", Value: "1.09"}}
	batchID, err := svc.UpdateTickerItems(context.Background(), nil, next, domain.SourceAPI)

	require.NoError(t, err)
	require.Len(t, history, 1)
	entry := history[0]
	assert.Equal(t, domain.HistoryItemTicker, entry.ItemType)
	assert.Equal(t, "1.08", entry.OldValue)
	assert.Equal(t, "1.09", entry.NewValue)
	assert.Empty(t, entry.OldBuy)
	assert.Equal(t, batchID, entry.BatchID)
}

func TestSaveSetting_RecordsActor(t *testing.T) {
	var saved domain.Setting
	settingsRepo := &mockSettingsRepo{
		UpsertSettingFn: func(ctx context.Context, setting domain.Setting) error {
			saved = setting
			return nil
		},
	}
	svc := services.NewExchangeService(&mockRateRepo{}, &mockTickerRepo{}, &mockHistoryRepo{}, &mockActivityRepo{}, settingsRepo)

	err := svc.SaveSetting(context.Background(), &domain.Member{MemberID: "m1"}, "board_title", "Kapalıçarşı")

	require.NoError(t, err)
	assert.Equal(t, "board_title", saved.Key)
	assert.Equal(t, "Kapalıçarşı", saved.Value)
	assert.Equal(t, "m1", saved.UpdatedBy)
}
