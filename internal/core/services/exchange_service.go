package services

import (
	"context"
	"fmt"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portsrepo "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/repositories"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type exchangeService struct {
	BaseService
	rateRepo     portsrepo.RateRepositoryFacade
	tickerRepo   portsrepo.TickerRepositoryFacade
	historyRepo  portsrepo.HistoryRepositoryFacade
	activityRepo portsrepo.ActivityRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewExchangeService creates the board state service.
func NewExchangeService(
	rateRepo portsrepo.RateRepositoryFacade,
	tickerRepo portsrepo.TickerRepositoryFacade,
	historyRepo portsrepo.HistoryRepositoryFacade,
	activityRepo portsrepo.ActivityRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
) portssvc.ExchangeSvcFacade {
	return &exchangeService{
		rateRepo:     rateRepo,
		tickerRepo:   tickerRepo,
		historyRepo:  historyRepo,
		activityRepo: activityRepo,
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)

func (s *exchangeService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	return rates, nil
}

// UpdateRates replaces the stored rate set with newRates. Each row is diffed
// against the previous row (matched by id, falling back to name when the
// submitted row has no id yet) and every buy/sell movement becomes one history
// entry. All entries of one save share one batch id. With an authenticated
// actor each movement also becomes a readable activity line; activity writes
// are best effort.
func (s *exchangeService) UpdateRates(ctx context.Context, actor *domain.Member, newRates []domain.Rate, source domain.ChangeSource) (string, error) {
	prev, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load current rates for diff: %w", err)
	}

	prevByID := make(map[string]domain.Rate, len(prev))
	prevByName := make(map[string]domain.Rate, len(prev))
	for _, r := range prev {
		prevByID[r.RateID] = r
		prevByName[r.Name] = r
	}

	batchID := uuid.NewString()
	now := time.Now()
	actorName, actorRole := actorIdentity(actor)

	var history []domain.HistoryLog
	var activities []domain.Activity
	keepIDs := make([]string, 0, len(newRates))

	for i := range newRates {
		rate := &newRates[i]
		rate.Position = i

		old, matched := prevByID[rate.RateID]
		if !matched {
			old, matched = prevByName[rate.Name]
			if matched {
				// Panel resubmitted a known row without its id; keep the row's identity.
				rate.RateID = old.RateID
			}
		}
		if rate.RateID == "" {
			rate.RateID = uuid.NewString()
		}
		keepIDs = append(keepIDs, rate.RateID)

		if !matched || (!pricesDiffer(old.Buy, rate.Buy) && !pricesDiffer(old.Sell, rate.Sell)) {
			continue
		}

		history = append(history, domain.HistoryLog{
			HistoryID: uuid.NewString(),
			ItemType:  domain.HistoryItemRate,
			ItemName:  rate.Name,
			OldBuy:    old.Buy,
			NewBuy:    rate.Buy,
			OldSell:   old.Sell,
			NewSell:   rate.Sell,
			ActorName: actorName,
			ActorRole: actorRole,
			GroupTag:  string(rate.Category),
			Source:    source,
			BatchID:   batchID,
			CreatedAt: now,
		})
		if actor != nil {
			activities = append(activities, domain.Activity{
				ActivityID: uuid.NewString(),
				MemberID:   actor.MemberID,
				ActorName:  actor.Name,
				ActorRole:  string(actor.Role),
				Action:     "kur_guncelleme",
				Detail: fmt.Sprintf("%s %s kurunu güncelledi: alış %s → %s, satış %s → %s",
					actor.Name, rate.Name, old.Buy, rate.Buy, old.Sell, rate.Sell),
				CreatedAt: now,
			})
		}
	}

	if err := s.rateRepo.DeleteRatesNotIn(ctx, keepIDs); err != nil {
		return "", fmt.Errorf("failed to reconcile removed rates: %w", err)
	}
	if err := s.rateRepo.UpsertRates(ctx, newRates); err != nil {
		return "", fmt.Errorf("failed to upsert rates: %w", err)
	}
	if len(history) > 0 {
		if err := s.historyRepo.InsertHistoryBatch(ctx, history); err != nil {
			return "", fmt.Errorf("failed to insert rate history batch: %w", err)
		}
	}
	if len(activities) > 0 {
		if err := s.activityRepo.InsertActivityBatch(ctx, activities); err != nil {
			s.LogError(ctx, err, "Failed to insert rate activity batch", "batch_id", batchID)
		}
	}

	s.LogInfo(ctx, "Rates updated", "batch_id", batchID, "rows", len(newRates), "changes", len(history))
	return batchID, nil
}

func (s *exchangeService) ListTickerItems(ctx context.Context) ([]domain.TickerItem, error) {
	items, err := s.tickerRepo.ListTickerItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticker items: %w", err)
	}
	return items, nil
}

// UpdateTickerItems follows the same diff/delete/upsert pattern as
// UpdateRates with a value-only history payload.
func (s *exchangeService) UpdateTickerItems(ctx context.Context, actor *domain.Member, newItems []domain.TickerItem, source domain.ChangeSource) (string, error) {
	prev, err := s.tickerRepo.ListTickerItems(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load current ticker items for diff: %w", err)
	}

	prevByID := make(map[string]domain.TickerItem, len(prev))
	prevByName := make(map[string]domain.TickerItem, len(prev))
	for _, item := range prev {
		prevByID[item.ItemID] = item
		prevByName[item.Name] = item
	}

	batchID := uuid.NewString()
	now := time.Now()
	actorName, actorRole := actorIdentity(actor)

	var history []domain.HistoryLog
	var activities []domain.Activity
	keepIDs := make([]string, 0, len(newItems))

	for i := range newItems {
		item := &newItems[i]
		item.Position = i

		old, matched := prevByID[item.ItemID]
		if !matched {
			old, matched = prevByName[item.Name]
			if matched {
				item.ItemID = old.ItemID
			}
		}
		if item.ItemID == "" {
			item.ItemID = uuid.NewString()
		}
		keepIDs = append(keepIDs, item.ItemID)

		if !matched || !pricesDiffer(old.Value, item.Value) {
			continue
		}

		history = append(history, domain.HistoryLog{
			HistoryID: uuid.NewString(),
			ItemType:  domain.HistoryItemTicker,
			ItemName:  item.Name,
			OldValue:  old.Value,
			NewValue:  item.Value,
			ActorName: actorName,
			ActorRole: actorRole,
			GroupTag:  "ticker",
			Source:    source,
			BatchID:   batchID,
			CreatedAt: now,
		})
		if actor != nil {
			activities = append(activities, domain.Activity{
				ActivityID: uuid.NewString(),
				MemberID:   actor.MemberID,
				ActorName:  actor.Name,
				ActorRole:  string(actor.Role),
				Action:     "bant_guncelleme",
				Detail: fmt.Sprintf("%s %s bant değerini güncelledi: %s → %s",
					actor.Name, item.Name, old.Value, item.Value),
				CreatedAt: now,
			})
		}
	}

	if err := s.tickerRepo.DeleteTickerItemsNotIn(ctx, keepIDs); err != nil {
		return "", fmt.Errorf("failed to reconcile removed ticker items: %w", err)
	}
	if err := s.tickerRepo.UpsertTickerItems(ctx, newItems); err != nil {
		return "", fmt.Errorf("failed to upsert ticker items: %w", err)
	}
	if len(history) > 0 {
		if err := s.historyRepo.InsertHistoryBatch(ctx, history); err != nil {
			return "", fmt.Errorf("failed to insert ticker history batch: %w", err)
		}
	}
	if len(activities) > 0 {
		if err := s.activityRepo.InsertActivityBatch(ctx, activities); err != nil {
			s.LogError(ctx, err, "Failed to insert ticker activity batch", "batch_id", batchID)
		}
	}

	s.LogInfo(ctx, "Ticker items updated", "batch_id", batchID, "rows", len(newItems), "changes", len(history))
	return batchID, nil
}

func (s *exchangeService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.settingsRepo.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (s *exchangeService) SaveSetting(ctx context.Context, actor *domain.Member, key, value string) error {
	updatedBy := ""
	if actor != nil {
		updatedBy = actor.MemberID
	}
	err := s.settingsRepo.UpsertSetting(ctx, domain.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
		UpdatedBy: updatedBy,
	})
	if err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}
	return nil
}

// pricesDiffer compares two operator-entered price strings. When both parse
// as decimals the comparison is numeric, so "100" and "100.0" are the same
// price; otherwise it falls back to exact text comparison.
func pricesDiffer(oldPrice, newPrice string) bool {
	oldDec, errOld := decimal.NewFromString(oldPrice)
	newDec, errNew := decimal.NewFromString(newPrice)
	if errOld == nil && errNew == nil {
		return !oldDec.Equal(newDec)
	}
	return oldPrice != newPrice
}

func actorIdentity(actor *domain.Member) (name, role string) {
	if actor == nil {
		return "Sistem", ""
	}
	return actor.Name, string(actor.Role)
}
