package services

import "github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"

// LiveRatesSvcFacade exposes the latest polled spot snapshot.
type LiveRatesSvcFacade interface {
	// Latest returns the cached snapshot; ok is false before the first
	// successful poll.
	Latest() (domain.LiveRates, bool)
}
