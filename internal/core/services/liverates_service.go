package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	portssvc "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/ports/services"
	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/platform/config"
	"github.com/shopspring/decimal"
)

// LiveRatesService polls the local proxy for gold/ounce spot values, falling
// back to the public finance feed when the proxy is unreachable. The latest
// good snapshot is cached and served; poll failures keep the stale snapshot.
type LiveRatesService struct {
	proxyURL    string
	fallbackURL string
	interval    time.Duration
	client      *http.Client
	logger      *slog.Logger

	mu     sync.RWMutex
	latest domain.LiveRates
	ok     bool
}

// NewLiveRatesService creates the poller. Run must be started by the caller.
func NewLiveRatesService(cfg *config.Config, logger *slog.Logger) *LiveRatesService {
	return &LiveRatesService{
		proxyURL:    cfg.LiveRatesProxyURL,
		fallbackURL: cfg.LiveRatesFallbackURL,
		interval:    cfg.LiveRatesInterval,
		client:      &http.Client{Timeout: 8 * time.Second},
		logger:      logger,
	}
}

var _ portssvc.LiveRatesSvcFacade = (*LiveRatesService)(nil)

// Latest returns the cached snapshot; ok is false before the first successful poll.
func (s *LiveRatesService) Latest() (domain.LiveRates, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.ok
}

// Run polls until ctx is cancelled.
func (s *LiveRatesService) Run(ctx context.Context) {
	s.poll(ctx)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *LiveRatesService) poll(ctx context.Context) {
	snapshot, err := s.fetch(ctx, s.proxyURL, false)
	if err != nil {
		s.logger.Warn("Live rates proxy failed, trying fallback", slog.String("error", err.Error()))
		snapshot, err = s.fetch(ctx, s.fallbackURL, true)
		if err != nil {
			s.logger.Error("Live rates fallback failed, keeping stale snapshot", slog.String("error", err.Error()))
			return
		}
	}

	s.mu.Lock()
	s.latest = snapshot
	s.ok = true
	s.mu.Unlock()
}

// spotQuote is the shape both the proxy and the public feed use per instrument.
type spotQuote struct {
	Price  decimal.Decimal `json:"price"`
	Change decimal.Decimal `json:"change"`
}

type spotResponse struct {
	Gold  spotQuote `json:"gold"`
	Ounce spotQuote `json:"ounce"`
}

func (s *LiveRatesService) fetch(ctx context.Context, url string, fromFallback bool) (domain.LiveRates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.LiveRates{}, fmt.Errorf("failed to build live rates request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return domain.LiveRates{}, fmt.Errorf("live rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.LiveRates{}, fmt.Errorf("live rates endpoint returned status %d", resp.StatusCode)
	}

	var body spotResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.LiveRates{}, fmt.Errorf("failed to decode live rates body: %w", err)
	}

	return domain.LiveRates{
		Gold:         body.Gold.Price,
		GoldChange:   body.Gold.Change,
		Ounce:        body.Ounce.Price,
		OunceChange:  body.Ounce.Change,
		FetchedAt:    time.Now(),
		FromFallback: fromFallback,
	}, nil
}
