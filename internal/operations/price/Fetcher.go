package price

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"IcebergScore/config"
	"IcebergScore/internal/models"
)

// Fetcher pulls daily candles from the Finnhub REST API.
type Fetcher struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewFetcher creates a new instance of Fetcher
func NewFetcher(cfg config.MarketDataConfig) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: 15 * time.Second},
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
	}
}

type candleResponse struct {
	Close  []float64 `json:"c"`
	High   []float64 `json:"h"`
	Low    []float64 `json:"l"`
	Open   []float64 `json:"o"`
	Time   []int64   `json:"t"`
	Volume []float64 `json:"v"`
	Status string    `json:"s"`
}

type quoteResponse struct {
	Current   float64 `json:"c"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Open      float64 `json:"o"`
	PrevClose float64 `json:"pc"`
	Timestamp int64   `json:"t"`
}

// GetHistoricalPrices retrieves daily candles for the last N days,
// oldest to newest.
func (f *Fetcher) GetHistoricalPrices(ctx context.Context, ticker string, days int) ([]models.DailyPrice, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	params := url.Values{}
	params.Set("symbol", ticker)
	params.Set("resolution", "D")
	params.Set("from", fmt.Sprintf("%d", start.Unix()))
	params.Set("to", fmt.Sprintf("%d", end.Unix()))

	var resp candleResponse
	if err := f.get(ctx, "/stock/candle", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("candle request for %s returned status %q", ticker, resp.Status)
	}

	now := time.Now()
	prices := make([]models.DailyPrice, 0, len(resp.Time))
	for i, ts := range resp.Time {
		if i >= len(resp.Close) {
			break
		}
		prices = append(prices, models.DailyPrice{
			Ticker:    ticker,
			TradeDate: time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
			Open:      at(resp.Open, i),
			High:      at(resp.High, i),
			Low:       at(resp.Low, i),
			Close:     resp.Close[i],
			Volume:    int64(at(resp.Volume, i)),
			Source:    "finnhub",
			FetchedAt: now,
		})
	}
	return prices, nil
}

// GetQuote retrieves the current quote, used to patch today's row before
// the daily candle closes.
func (f *Fetcher) GetQuote(ctx context.Context, ticker string) (*models.DailyPrice, error) {
	params := url.Values{}
	params.Set("symbol", ticker)

	var resp quoteResponse
	if err := f.get(ctx, "/quote", params, &resp); err != nil {
		return nil, err
	}
	if resp.Current == 0 && resp.Timestamp == 0 {
		return nil, fmt.Errorf("no quote available for %s", ticker)
	}

	return &models.DailyPrice{
		Ticker:    ticker,
		TradeDate: time.Unix(resp.Timestamp, 0).UTC().Truncate(24 * time.Hour),
		Open:      resp.Open,
		High:      resp.High,
		Low:       resp.Low,
		Close:     resp.Current,
		Source:    "finnhub",
		FetchedAt: time.Now(),
	}, nil
}

func (f *Fetcher) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("token", f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("market data request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("market data request returned %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
