package price

import (
	"context"
	"log"
	"time"

	"IcebergScore/internal/repositories"
)

// Recorder syncs daily candles from the market data API into the price
// store. Fetches are rate-limited to stay under the free-tier quota.
type Recorder struct {
	fetcher   *Fetcher
	priceRepo *repositories.PriceRepository
	tickers   []string
}

const requestGap = 1100 * time.Millisecond // ~60 req/min free tier

// NewRecorder creates a new instance of Recorder
func NewRecorder(fetcher *Fetcher, priceRepo *repositories.PriceRepository, tickers []string) *Recorder {
	return &Recorder{
		fetcher:   fetcher,
		priceRepo: priceRepo,
		tickers:   tickers,
	}
}

// Refresh backfills up to historyDays of daily candles for every watched
// ticker. Per-ticker failures are logged and skipped so one bad symbol
// does not block the rest.
func (r *Recorder) Refresh(ctx context.Context, historyDays int) error {
	for i, ticker := range r.tickers {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(requestGap):
			}
		}

		if err := r.refreshTicker(ctx, ticker, historyDays); err != nil {
			log.Printf("Error refreshing prices for %s: %v", ticker, err)
			continue
		}
	}
	return nil
}

func (r *Recorder) refreshTicker(ctx context.Context, ticker string, historyDays int) error {
	// Only fetch the gap since the last stored row.
	days := historyDays
	latest, err := r.priceRepo.GetLatestPrice(ticker)
	if err != nil {
		return err
	}
	if latest != nil {
		gap := int(time.Since(latest.TradeDate).Hours()/24) + 2
		if gap < days {
			days = gap
		}
	}

	prices, err := r.fetcher.GetHistoricalPrices(ctx, ticker, days)
	if err != nil {
		return err
	}

	for i := range prices {
		if err := r.priceRepo.UpsertDailyPrice(&prices[i]); err != nil {
			return err
		}
	}

	// Patch today's row from the live quote; the candle for the current
	// session isn't final yet.
	if quote, err := r.fetcher.GetQuote(ctx, ticker); err == nil {
		if err := r.priceRepo.UpsertDailyPrice(quote); err != nil {
			return err
		}
	}

	log.Printf("Recorded %d daily prices for %s", len(prices), ticker)
	return nil
}
